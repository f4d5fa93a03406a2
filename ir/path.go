package ir

import "strings"

// GetPath navigates an object tree along a dot separated key path and
// returns the node at the end of it. A nil result is the only signal
// that the path is absent: any intermediate node that is not an object,
// or any missing key, yields nil rather than an error.
//
// Example:
//
//	root.GetPath("database.host")
func (y *Node) GetPath(path string) *Node {
	res := y
	for _, seg := range strings.Split(path, ".") {
		if res.Type != ObjectType {
			return nil
		}
		res = Get(res, seg)
		if res == nil {
			return nil
		}
	}
	return res
}

// SetPath assigns val at the end of a dot separated key path, creating
// intermediate objects on demand. Any non-object value found at an
// intermediate segment is overwritten in place with a fresh empty
// object, so setting is destructive along the path. The receiver is
// mutated and returned.
func (y *Node) SetPath(path string, val *Node) *Node {
	segs := strings.Split(path, ".")
	at := y
	if at.Type != ObjectType {
		resetToObject(at)
	}
	for _, seg := range segs[:len(segs)-1] {
		next := Get(at, seg)
		if next == nil {
			next = EmptyObject()
			at.Put(seg, next)
		} else if next.Type != ObjectType {
			resetToObject(next)
		}
		at = next
	}
	at.Put(segs[len(segs)-1], val)
	return y
}

func resetToObject(y *Node) {
	y.Type = ObjectType
	y.Fields = nil
	y.Values = nil
	y.String = ""
	y.Bool = false
	y.Int64 = nil
	y.Float64 = nil
}
