package yamlet

import (
	"bytes"
	"io"

	"github.com/yamlet-format/go-yamlet/encode"
	"github.com/yamlet-format/go-yamlet/ir"
	"github.com/yamlet-format/go-yamlet/parse"
)

// Parse decodes yamlet text into a value tree. See package parse for
// the decoding rules; in particular the decoder is lenient and never
// reports a syntax error.
func Parse(d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.Parse(d, opts...)
}

// ParseString is Parse on a string.
func ParseString(s string, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.ParseString(s, opts...)
}

// Encode writes the deterministic yamlet rendering of node to w.
func Encode(node *ir.Node, w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(node, w, opts...)
}

// EncodeString renders node as a string.
func EncodeString(node *ir.Node, opts ...encode.EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Get returns the value at a dot separated key path, or nil when the
// path is absent.
func Get(node *ir.Node, path string) *ir.Node {
	return node.GetPath(path)
}

// Set assigns val at a dot separated key path, creating intermediate
// objects as needed, and returns the mutated tree.
func Set(node *ir.Node, path string, val *ir.Node) *ir.Node {
	return node.SetPath(path, val)
}
