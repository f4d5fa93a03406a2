package parse

import (
	"strings"
	"testing"

	"github.com/yamlet-format/go-yamlet/encode"
	"github.com/yamlet-format/go-yamlet/ir"

	"github.com/google/go-cmp/cmp"
)

// canonical parse tests: parse the input and compare the sorted-key
// re-encoding against the expected rendering.
func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty input",
			in:   "",
			want: "{}",
		},
		{
			name: "flat mapping",
			in:   "name: John Doe\nage: 42\nactive: yes",
			want: "active: true\nage: 42\nname: John Doe",
		},
		{
			name: "nested sequence",
			in:   "fruits:\n  - apple\n  - banana\n",
			want: "fruits:\n  - apple\n  - banana",
		},
		{
			name: "sequence of mappings",
			in:   "- name: alice\n  role: admin\n- name: bob",
			want: "- name: alice\n  role: admin\n- name: bob",
		},
		{
			name: "block literal",
			in:   "script: |\n  echo hi\n  echo bye",
			want: "script: |\n  echo hi\n  echo bye",
		},
		{
			name: "folded style is a literal join",
			in:   "note: >\n  first\n  second",
			want: "note: |\n  first\n  second",
		},
		{
			name: "empty value is null",
			in:   "a:\nb: 2",
			want: "a: null\nb: 2",
		},
		{
			name: "null forms",
			in:   "a: null\nb: ~",
			want: "a: null\nb: null",
		},
		{
			name: "crlf terminators",
			in:   "a: 1\r\nb: 2\r\n",
			want: "a: 1\nb: 2",
		},
		{
			name: "comments and blank lines skipped",
			in:   "# header\n\na: 1\n  # indented comment\nb: 2",
			want: "a: 1\nb: 2",
		},
		{
			name: "unparseable lines dropped",
			in:   "???\na: 1\n???",
			want: "a: 1",
		},
		{
			name: "quoted scalars keep their text",
			in:   "a: \"42\"\nb: 'yes'",
			want: "a: \"42\"\nb: \"yes\"",
		},
		{
			name: "numbers",
			in:   "i: -7\nf: 2.5\ng: 1e3",
			want: "f: 2.5\ng: 1000.0\ni: -7",
		},
		{
			name: "deep nesting",
			in:   "a:\n  b:\n    c: 1",
			want: "a:\n  b:\n    c: 1",
		},
		{
			name: "scalar sequence items",
			in:   "- 1\n- true\n- x",
			want: "- 1\n- true\n- x",
		},
		{
			name: "nested sequence items",
			in:   "- - a\n  - b\n- - c",
			want: "- - a\n  - b\n- - c",
		},
		{
			name: "dash item opening a mapping inside a nested sequence",
			in:   "- - k: 1",
			want: "- - k: 1",
		},
		{
			name: "empty flow containers",
			in:   "a: {}\nb: []",
			want: "a: {}\nb: []",
		},
		{
			name: "quoted keys come back bare",
			in:   "\"true\": 1\n'on': 2",
			want: "\"on\": 2\n\"true\": 1",
		},
		{
			name: "dedent closes containers",
			in:   "a:\n  b: 1\nc: 2",
			want: "a:\n  b: 1\nc: 2",
		},
		{
			name: "sequence item opens nested mapping",
			in:   "servers:\n  - host: a\n    port: 1\n  - host: b\n    port: 2",
			want: "servers:\n  - host: a\n    port: 1\n  - host: b\n    port: 2",
		},
		{
			name: "sibling key after a block value on a dash line",
			in:   "- script: |\n    a\n    b\n  zname: x",
			want: "- script: |\n    a\n    b\n  zname: x",
		},
		{
			name: "sibling key after a nested container on a dash line",
			in:   "- key:\n    - x\n  other: 2",
			want: "- key:\n    - x\n  other: 2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := ParseString(tt.in)
			if err != nil {
				t.Fatalf("ParseString() error = %v", err)
			}
			got := encode.MustString(node)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("canonical form mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseNil(t *testing.T) {
	node, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error = %v", err)
	}
	if node == nil || node.Type != ir.ObjectType || len(node.Fields) != 0 {
		t.Errorf("Parse(nil) = %v, want empty object", node)
	}
}

func TestParseShapes(t *testing.T) {
	node, err := ParseString("fruits:\n  - apple\n  - banana\n")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	fruits := ir.Get(node, "fruits")
	if fruits == nil || fruits.Type != ir.ArrayType {
		t.Fatalf("fruits = %v, want array", fruits)
	}
	if len(fruits.Values) != 2 {
		t.Fatalf("len(fruits) = %d, want 2", len(fruits.Values))
	}
	for i, want := range []string{"apple", "banana"} {
		v := fruits.Values[i]
		if v.Type != ir.StringType || v.String != want {
			t.Errorf("fruits[%d] = %v, want %q", i, v, want)
		}
	}
}

func TestParseEmptyContainerLookahead(t *testing.T) {
	// the shape of a key's empty value is fixed by the next line
	tests := []struct {
		name string
		in   string
		typ  ir.Type
	}{
		{"dash line makes a sequence", "k:\n  - 1", ir.ArrayType},
		{"entry line makes a mapping", "k:\n  a: 1", ir.ObjectType},
		{"no deeper line makes null", "k:\nother: 1", ir.NullType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := ParseString(tt.in)
			if err != nil {
				t.Fatalf("ParseString() error = %v", err)
			}
			k := ir.Get(node, "k")
			if k == nil || k.Type != tt.typ {
				t.Errorf("k = %v, want type %s", k, tt.typ)
			}
		})
	}
}

func TestParseBlockScalarValue(t *testing.T) {
	node, err := ParseString("outer:\n  script: |\n    echo hi\n\n    echo bye\n  after: 1")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	script := node.GetPath("outer.script")
	if script == nil || script.Type != ir.StringType {
		t.Fatalf("script = %v, want string", script)
	}
	// blank lines are stripped before block consumption
	if want := "echo hi\necho bye"; script.String != want {
		t.Errorf("script = %q, want %q", script.String, want)
	}
	if after := node.GetPath("outer.after"); after == nil || after.Int64 == nil || *after.Int64 != 1 {
		t.Errorf("after = %v, want 1", after)
	}
}

func TestParseMaxDepth(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 40; i++ {
		b.WriteString(strings.Repeat("  ", i))
		b.WriteString("k:\n")
	}
	node, err := ParseString(b.String(), MaxDepth(5))
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	depth := 0
	for n := node.GetPath("k"); n != nil; n = ir.Get(n, "k") {
		depth++
		node = n
	}
	if depth > 5 {
		t.Errorf("tree depth = %d, want <= 5", depth)
	}
}

func TestParseRootSequenceDecision(t *testing.T) {
	// once the root is a mapping, stray dash lines are dropped
	node, err := ParseString("a: 1\n- stray\nb: 2")
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	if node.Type != ir.ObjectType || len(node.Fields) != 2 {
		t.Errorf("node = %v, want 2-field object", node)
	}
}
