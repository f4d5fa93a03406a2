// Package yamlet converts between a pragmatic, indentation-based
// subset of YAML and an in-memory value tree.
//
// The heavy lifting lives in the subpackages: parse decodes text into
// ir node trees, encode renders trees back deterministically (sorted
// keys, value-dependent quoting), and ir carries the tagged-union data
// model with dotted-path access. This package adds the thin glue:
// file read/write collaborators, the Modify read-transform-write
// composite, and JSON patch application.
//
//	doc, err := yamlet.ReadFile("config.yaml")
//	if err != nil { ... }
//	yamlet.Set(doc, "database.port", ir.FromInt(5432))
//	err = yamlet.WriteFile("config.yaml", doc)
//
// or, in one step:
//
//	err := yamlet.Modify("config.yaml", func(doc *ir.Node) *ir.Node {
//	    return yamlet.Set(doc, "database.port", ir.FromInt(5432))
//	})
//
// Decoding is deliberately lenient: malformed lines degrade to a
// partial tree, and the only error kinds crossing this package's
// boundary are I/O errors and ErrMutator.
package yamlet
