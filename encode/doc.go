// Package encode renders ir nodes as yamlet text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("alice")},
//	    {Key: "age", Val: ir.FromInt(30)},
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// with options
//	err = encode.Encode(node, w, encode.Indent(4))
//
// Object keys are sorted before emission, so the same tree always
// renders to the same text. Strings are double quoted only when the
// bare text would read back as something else; multi-line strings
// without structural characters render as | block literals.
//
// # Related Packages
//
//   - github.com/yamlet-format/go-yamlet/ir - value tree
//   - github.com/yamlet-format/go-yamlet/parse - parse text to ir
package encode
