// Package gomap converts between Go values and nodes.
//
// Marshal and Unmarshal work like their encoding/json counterparts,
// using reflection over maps, slices, pointers and structs.  Struct
// fields can be renamed or skipped with `yamlet:"name,omitempty"` tags.
//
// ToIR, FromIR and ToGo expose the node-level conversions directly for
// callers that want to combine them with path access or patching.
package gomap
