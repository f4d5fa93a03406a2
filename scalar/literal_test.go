package scalar

import (
	"testing"

	"github.com/yamlet-format/go-yamlet/ir"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		typ  ir.Type
		repr string
	}{
		{"", ir.NullType, "null"},
		{"null", ir.NullType, "null"},
		{"~", ir.NullType, "null"},
		{"true", ir.BoolType, "true"},
		{"yes", ir.BoolType, "true"},
		{"on", ir.BoolType, "true"},
		{"false", ir.BoolType, "false"},
		{"no", ir.BoolType, "false"},
		{"off", ir.BoolType, "false"},
		{"42", ir.NumberType, "42"},
		{"-7", ir.NumberType, "-7"},
		{"3.14", ir.NumberType, "3.14"},
		{"1e3", ir.NumberType, "1000.0"},
		{"  22  ", ir.NumberType, "22"},
		// words strconv would accept but the grammar does not
		{"inf", ir.StringType, "inf"},
		{"NaN", ir.StringType, "NaN"},
		{"0x10", ir.StringType, "0x10"},
		{"hello", ir.StringType, "hello"},
		{"John Doe", ir.StringType, "John Doe"},
		{`"quoted"`, ir.StringType, "quoted"},
		{`'single'`, ir.StringType, "single"},
		{`"42"`, ir.StringType, "42"},
		// no escape interpretation on the way in
		{`"a\nb"`, ir.StringType, `a\nb`},
		// mismatched quotes stay verbatim
		{`"half`, ir.StringType, `"half`},
		{"True", ir.StringType, "True"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			node := Parse(tt.in)
			if node.Type != tt.typ {
				t.Fatalf("Parse(%q).Type = %s, want %s", tt.in, node.Type, tt.typ)
			}
			var repr string
			switch node.Type {
			case ir.NullType:
				repr = "null"
			case ir.BoolType:
				if node.Bool {
					repr = "true"
				} else {
					repr = "false"
				}
			case ir.NumberType:
				repr = node.NumberString()
			case ir.StringType:
				repr = node.String
			}
			if repr != tt.repr {
				t.Errorf("Parse(%q) = %q, want %q", tt.in, repr, tt.repr)
			}
		})
	}
}

func TestNeedsQuote(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"123", true},
		{"1.2.3", true},
		{"true", true},
		{"false", true},
		{"yes", true},
		{"no", true},
		{"on", true},
		{"off", true},
		{"null", true},
		{"a:b", true},
		{"a#b", true},
		{"a[b", true},
		{"a{b", true},
		{" x", true},
		{"x ", true},
		{"a\nb", true},
		{"hello", false},
		{"John Doe", false},
		{"truely", false},
		{"None", false},
		{"1.2.3a", false},
		{"-7x", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NeedsQuote(tt.in); got != tt.want {
				t.Errorf("NeedsQuote(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a", `"a"`},
		{`a"b`, `"a\"b"`},
		{`a\b`, `"a\\b"`},
		{"a\nb", `"a\nb"`},
		{"a\tb", `"a\tb"`},
		{"a\rb", `"a\rb"`},
	}
	for _, tt := range tests {
		if got := Quote(tt.in); got != tt.want {
			t.Errorf("Quote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"a"`, "a"},
		{`'a'`, "a"},
		{`"a`, `"a`},
		{`a"`, `a"`},
		{`""`, ""},
		{`"`, `"`},
		{"bare", "bare"},
	}
	for _, tt := range tests {
		if got := Unquote(tt.in); got != tt.want {
			t.Errorf("Unquote(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
