package libdiff

import (
	"strconv"

	"github.com/yamlet-format/go-yamlet/ir"
)

// DiffFunc computes the difference between two nodes, returning nil
// when they are equal.
type DiffFunc func(from, to *ir.Node) *ir.Node

// Change markers used as object keys in diff trees.
const (
	DeleteKey = "-"
	InsertKey = "+"
)

// Diff returns a tree describing the changes between from and to, or
// nil when the two are equal. Changed leaves become objects holding the
// old value under "-" and the new value under "+"; object fields and
// array elements recurse.
func Diff(from, to *ir.Node) *ir.Node {
	if from == nil && to == nil {
		return nil
	}
	if from == nil || to == nil || from.Type != to.Type {
		return MakeDiff(from, to)
	}
	switch from.Type {
	case ir.ObjectType:
		// field order is not significant, so canonicalize before the
		// sequence diff or reordered keys show up as changes
		return DiffObject(canon(from), canon(to), Diff)
	case ir.ArrayType:
		return diffArray(from, to)
	default:
		if ir.Compare(from, to) == 0 {
			return nil
		}
		return MakeDiff(from, to)
	}
}

// MakeDiff builds the leaf change record for a replaced, deleted or
// inserted value.
func MakeDiff(from, to *ir.Node) *ir.Node {
	kvs := make([]ir.KeyVal, 0, 2)
	if from != nil {
		kvs = append(kvs, ir.KeyVal{Key: DeleteKey, Val: from.Clone()})
	}
	if to != nil {
		kvs = append(kvs, ir.KeyVal{Key: InsertKey, Val: to.Clone()})
	}
	return ir.FromKeyVals(kvs)
}

func canon(y *ir.Node) *ir.Node {
	return ir.FromMap(ir.ToMap(y.Clone()))
}

// diffArray compares arrays positionally. The result is an object keyed
// by element index, holding only the indices that changed.
func diffArray(from, to *ir.Node) *ir.Node {
	resMap := map[string]*ir.Node{}
	n := min(len(from.Values), len(to.Values))
	for i := range n {
		if d := Diff(from.Values[i], to.Values[i]); d != nil {
			resMap[strconv.Itoa(i)] = d
		}
	}
	for i := n; i < len(from.Values); i++ {
		resMap[strconv.Itoa(i)] = MakeDiff(from.Values[i], nil)
	}
	for i := n; i < len(to.Values); i++ {
		resMap[strconv.Itoa(i)] = MakeDiff(nil, to.Values[i])
	}
	if len(resMap) == 0 {
		return nil
	}
	return ir.FromMap(resMap)
}
