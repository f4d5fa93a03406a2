// Package ir provides the value tree for yamlet documents.
//
// # Overview
//
// All yamlet documents, whether parsed from text or built
// programmatically, are represented as trees of ir.Node. The tree is a
// simple recursive tagged union: the Type field selects the variant and
// the remaining fields carry the payload.
//
// # Node Types
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64 or float64, by literal syntax)
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (parallel Fields and Values slices)
//
// Object fields keep the order in which they were inserted, which for
// parsed documents is the order they were read. The encoder sorts keys
// on output, so insertion order is observable only before encoding.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: num}})
//
// # Paths
//
// GetPath and SetPath navigate objects by dot separated key paths:
//
//	host := root.GetPath("database.host")
//	root.SetPath("database.port", ir.FromInt(5432))
//
// GetPath returns nil for an absent path; SetPath creates intermediate
// objects on demand, overwriting non-object values along the way.
//
// # Comparison
//
// Nodes can be compared for equality and order:
//
//	equal := ir.Compare(a, b) == 0
//
// Objects compare as sets of key/value pairs, matching the encoder's
// sort-on-output normalization.
//
// # JSON Interoperability
//
// ToJSON and FromJSON convert between node trees and plain JSON,
// keeping object key order. This backs the merge patch operation.
//
// # Thread Safety
//
// Node structures are not thread-safe. If you need to access nodes from
// multiple goroutines, you must synchronize access yourself or clone
// nodes for each goroutine.
package ir
