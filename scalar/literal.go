// Package scalar implements the scalar literal grammar shared by the
// parse and encode packages: reading bare values into typed nodes, and
// deciding how string values print back out.
package scalar

import (
	"strconv"
	"strings"

	"github.com/yamlet-format/go-yamlet/ir"
)

// Parse reads a bare (non-block) value literal into a node. The input
// is trimmed first; resolution order is null forms, boolean forms,
// numeric forms, quoted strings, then the literal text itself.
//
// Surrounding matching quotes are stripped verbatim: no escape
// sequences are interpreted on the way in. The encoder escapes on the
// way out, which makes quoting deliberately asymmetric.
func Parse(s string) *ir.Node {
	v := strings.TrimSpace(s)
	switch v {
	case "", "null", "~":
		return ir.Null()
	case "true", "yes", "on":
		return ir.FromBool(true)
	case "false", "no", "off":
		return ir.FromBool(false)
	}
	if numberish(v) {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return ir.FromInt(i)
		}
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return ir.FromFloat(f)
		}
	}
	return ir.FromString(Unquote(v))
}

// Unquote strips one layer of matching surrounding quotes, verbatim.
// Anything else comes back unchanged.
func Unquote(v string) string {
	if len(v) >= 2 {
		if v[0] == '"' && v[len(v)-1] == '"' || v[0] == '\'' && v[len(v)-1] == '\'' {
			return v[1 : len(v)-1]
		}
	}
	return v
}

// numberish reports whether v is made only of characters that can
// appear in an integer or decimal literal. It keeps words like "inf"
// and hex forms out of strconv, which accepts more than the grammar
// does.
func numberish(v string) bool {
	for i := 0; i < len(v); i++ {
		switch c := v[i]; {
		case c >= '0' && c <= '9':
		case c == '+' || c == '-' || c == '.' || c == 'e' || c == 'E':
		default:
			return false
		}
	}
	return len(v) > 0
}
