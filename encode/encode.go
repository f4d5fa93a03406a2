package encode

import (
	"io"
	"slices"
	"strings"

	"github.com/yamlet-format/go-yamlet/ir"
	"github.com/yamlet-format/go-yamlet/scalar"
)

type EncState struct {
	depth  int
	indent int
	inline bool

	colorType ir.Type
	Color     func(ir.Type, ColorAttr, string) string
}

// Encode writes the yamlet rendering of node to w. It fails only when
// the writer fails; every well-formed node tree encodes.
//
// Output is deterministic: object keys are sorted lexicographically
// before emission regardless of their insertion order. The rendering
// carries no trailing newline; callers writing files append one.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	// the recursion starts every container line with a newline; the
	// top level swallows the first one
	es.inline = true
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	es.colorType = node.Type
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return encodeString(node, w, es)
	case ir.NumberType:
		return encodeLeaf(w, es, ir.NumberType, node.NumberString())
	case ir.BoolType:
		if node.Bool {
			return encodeLeaf(w, es, ir.BoolType, "true")
		}
		return encodeLeaf(w, es, ir.BoolType, "false")
	case ir.NullType:
		return encodeLeaf(w, es, ir.NullType, "null")
	default:
		panic("type")
	}
}

// writeNL starts a fresh output line at the current depth. When the
// inline flag is up the pending line break is suppressed instead: this
// folds a container's first line onto an enclosing "- " marker and
// strips the leading newline at the top level.
func writeNL(w io.Writer, es *EncState) error {
	if es.inline {
		es.inline = false
		return nil
	}
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	return writeString(w, "\n"+indentString)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func encodeLeaf(w io.Writer, es *EncState, t ir.Type, v string) error {
	return writeString(w, applyColor(es, t, ValueColor, v))
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

// encodeObject

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) == 0 {
		es.inline = false
		return writeString(w, applyColor(es, ir.ObjectType, SepColor, "{}"))
	}
	kvs := sortedFields(node)
	for _, kv := range kvs {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeField(w, kv.Key, es); err != nil {
			return err
		}
		if err := encodeObjectValue(kv.Val, w, es); err != nil {
			return err
		}
	}
	return nil
}

func sortedFields(node *ir.Node) []ir.KeyVal {
	kvs := make([]ir.KeyVal, len(node.Fields))
	for i := range node.Fields {
		kvs[i] = ir.KeyVal{Key: node.Fields[i].String, Val: node.Values[i]}
	}
	slices.SortStableFunc(kvs, func(a, b ir.KeyVal) int {
		return strings.Compare(a.Key, b.Key)
	})
	return kvs
}

func writeField(w io.Writer, f string, es *EncState) error {
	if scalar.NeedsQuote(f) {
		f = scalar.Quote(f)
	}
	f = applyColor(es, ir.ObjectType, FieldColor, f)
	sep := applyColor(es, ir.ObjectType, SepColor, ":")
	return writeString(w, f+sep)
}

func encodeObjectValue(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType, ir.ArrayType:
		if flat(node) {
			if err := writeString(w, " "); err != nil {
				return err
			}
			return encode(node, w, es)
		}
		// multi-line container: nothing after the colon, the value
		// opens on the next line one step deeper
		es.depth++
		err := encode(node, w, es)
		es.depth--
		return err
	case ir.StringType:
		if err := writeString(w, " "); err != nil {
			return err
		}
		return encodeString(node, w, es)
	default:
		if err := writeString(w, " "); err != nil {
			return err
		}
		return encode(node, w, es)
	}
}

// encodeArray

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		es.inline = false
		return writeString(w, applyColor(es, ir.ArrayType, SepColor, "[]"))
	}
	for _, v := range node.Values {
		if err := writeNL(w, es); err != nil {
			return err
		}
		marker := applyColor(es, ir.ArrayType, SepColor, "-")
		if err := writeString(w, marker+" "); err != nil {
			return err
		}
		if flat(v) {
			if err := encode(v, w, es); err != nil {
				return err
			}
			continue
		}
		// multi-line element: its first line folds onto the dash,
		// continuation lines sit one step deeper
		es.inline = true
		es.depth++
		err := encode(v, w, es)
		es.depth--
		es.inline = false
		if err != nil {
			return err
		}
	}
	return nil
}

// flat reports whether a node's rendering fits on the current line.
func flat(node *ir.Node) bool {
	switch node.Type {
	case ir.ObjectType:
		return len(node.Fields) == 0
	case ir.ArrayType:
		return len(node.Values) == 0
	case ir.StringType:
		return !blockLit(node.String)
	default:
		return true
	}
}

// encodeString

func blockLit(v string) bool {
	return strings.Contains(v, "\n") && !strings.ContainsAny(v, scalar.Special)
}

func encodeString(node *ir.Node, w io.Writer, es *EncState) error {
	if blockLit(node.String) {
		return encodeBlockLit(node, w, es)
	}
	v := node.String
	if scalar.NeedsQuote(v) {
		v = scalar.Quote(v)
	}
	return writeString(w, applyColor(es, ir.StringType, ValueColor, v))
}

func encodeBlockLit(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, applyColor(es, ir.StringType, SepColor, "|")); err != nil {
		return err
	}
	// the | marker is the folded first line; the body always breaks
	es.inline = false
	es.depth++
	defer func() { es.depth-- }()
	for _, ln := range strings.Split(node.String, "\n") {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeString(w, applyColor(es, ir.StringType, LiteralColor, ln)); err != nil {
			return err
		}
	}
	return nil
}
