// Package libdiff computes structural diffs of yamlet documents.
//
// # Usage
//
//	// Compute the diff between two trees; nil means equal
//	d := libdiff.Diff(oldNode, newNode)
//
// Diffs are themselves ir trees, with "-" and "+" keyed change records
// at the leaves, so they print with the ordinary encoder.
//
// # Related Packages
//
//   - github.com/yamlet-format/go-yamlet/ir - value tree
//   - github.com/yamlet-format/go-yamlet/encode - render diffs as text
package libdiff
