package ir

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Node is a single value in a yamlet document. The Type field selects
// which of the remaining fields carry the value: Fields and Values for
// objects (parallel slices, insertion ordered, unique string keys),
// Values alone for arrays, and the scalar fields otherwise.
//
// An empty object and an empty array are distinct values: the
// distinction lives in Type, never in the shape of the slices.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Values = make([]*Node, len(y.Values))
	dst.Fields = make([]*Node, len(y.Fields))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yf.String
		dst.Fields[i] = dstI
	}
	dst.String = y.String
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Bool = y.Bool
	return dst
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = StringType
	p.String = v
	return p
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// NumberString returns the literal form a Number node prints as. Int64
// takes precedence; float forms that would read back as integers get a
// ".0" suffix so the value keeps its floating point shape on reparse.
func (y *Node) NumberString() string {
	if y.Int64 != nil {
		return strconv.FormatInt(*y.Int64, 10)
	}
	if y.Float64 != nil {
		v := strconv.FormatFloat(*y.Float64, 'f', -1, 64)
		if !strings.ContainsAny(v, ".eE") {
			v += ".0"
		}
		return v
	}
	return "0"
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

func FromMap(yMap map[string]*Node) *Node {
	return FromMapAt(&Node{}, yMap)
}

func FromMapAt(res *Node, yMap map[string]*Node) *Node {
	res.Type = ObjectType
	res.Fields = make([]*Node, len(yMap))
	res.Values = make([]*Node, len(yMap))
	keys := slices.Sorted(maps.Keys(yMap))
	for i, key := range keys {
		y := yMap[key]
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = key
		res.Fields[i] = &Node{
			Parent:      res,
			ParentIndex: i,
			ParentField: key,
			Type:        StringType,
			String:      key,
		}
		res.Values[i] = y
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	return FromKeyValsAt(&Node{}, kvs)
}

func FromKeyValsAt(res *Node, kvs []KeyVal) *Node {
	res.Type = ObjectType
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Val.ParentField = kv.Key
		res.Fields[i] = &Node{
			Parent:      res,
			ParentIndex: i,
			ParentField: kv.Key,
			Type:        StringType,
			String:      kv.Key,
		}
		res.Values[i] = kv.Val
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
	}
	return res
}

// EmptyObject returns a new object with no fields.
func EmptyObject() *Node {
	return &Node{Type: ObjectType}
}

// EmptyArray returns a new array with no elements.
func EmptyArray() *Node {
	return &Node{Type: ArrayType}
}

func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// FieldIndex returns the index of field in y, or -1.
func (y *Node) FieldIndex(field string) int {
	for i := range y.Fields {
		if y.Fields[i].String == field {
			return i
		}
	}
	return -1
}

// Put sets field to val on an object node, replacing an existing value
// or appending a new field in insertion position.
func (y *Node) Put(field string, val *Node) {
	val.Parent = y
	val.ParentField = field
	if i := y.FieldIndex(field); i >= 0 {
		val.ParentIndex = i
		y.Values[i] = val
		return
	}
	i := len(y.Fields)
	val.ParentIndex = i
	y.Fields = append(y.Fields, &Node{
		Parent:      y,
		ParentIndex: i,
		ParentField: field,
		Type:        StringType,
		String:      field,
	})
	y.Values = append(y.Values, val)
}

// Append adds val to the end of an array node.
func (y *Node) Append(val *Node) {
	val.Parent = y
	val.ParentIndex = len(y.Values)
	y.Values = append(y.Values, val)
}

// RemoveField deletes field from an object node, reporting whether it
// was present.
func (y *Node) RemoveField(field string) bool {
	i := y.FieldIndex(field)
	if i < 0 {
		return false
	}
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	for j := i; j < len(y.Fields); j++ {
		y.Fields[j].ParentIndex = j
		y.Values[j].ParentIndex = j
	}
	return true
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
