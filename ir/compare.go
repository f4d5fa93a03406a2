package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Objects compare as sorted sets of key/value pairs, so two objects
// holding the same pairs in different insertion order compare equal.
// This matches the encoder, which sorts keys before emission.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NullType:
		return 0
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case NumberType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ArrayType:
		n := min(len(a.Values), len(b.Values))
		for i := range n {
			if c := Compare(a.Values[i], b.Values[i]); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(a.Values), len(b.Values))
	case ObjectType:
		return compareObjects(a, b)
	default:
		panic("type")
	}
}

// Equal reports whether a and b hold the same value.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case StringType:
		return 3
	case ArrayType:
		return 4
	case ObjectType:
		return 5
	default:
		panic("type")
	}
}

func compareNumbers(a, b *Node) int {
	if a.Int64 != nil && b.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	return cmp.Compare(floatOf(a), floatOf(b))
}

func floatOf(y *Node) float64 {
	if y.Float64 != nil {
		return *y.Float64
	}
	if y.Int64 != nil {
		return float64(*y.Int64)
	}
	return 0
}

func compareObjects(a, b *Node) int {
	aKeys := sortedKeys(a)
	bKeys := sortedKeys(b)
	n := min(len(aKeys), len(bKeys))
	for i := range n {
		if c := strings.Compare(aKeys[i], bKeys[i]); c != 0 {
			return c
		}
		if c := Compare(Get(a, aKeys[i]), Get(b, bKeys[i])); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(aKeys), len(bKeys))
}

func sortedKeys(y *Node) []string {
	keys := make([]string, len(y.Fields))
	for i := range y.Fields {
		keys[i] = y.Fields[i].String
	}
	slices.Sort(keys)
	return keys
}
