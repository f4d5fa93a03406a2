package gomap

import (
	"errors"
	"testing"

	"github.com/yamlet-format/go-yamlet/ir"

	"github.com/google/go-cmp/cmp"
)

type server struct {
	Host string `yamlet:"host"`
	Port int    `yamlet:"port"`
}

type config struct {
	Name    string            `yamlet:"name"`
	Debug   bool              `yamlet:"debug,omitempty"`
	Servers []server          `yamlet:"servers"`
	Labels  map[string]string `yamlet:"labels,omitempty"`
	secret  string
	Skipped string `yamlet:"-"`
}

func TestMarshal(t *testing.T) {
	cfg := config{
		Name: "app",
		Servers: []server{
			{Host: "a", Port: 1},
			{Host: "b", Port: 2},
		},
		secret:  "hidden",
		Skipped: "also hidden",
	}
	d, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := "name: app\nservers:\n  - host: a\n    port: 1\n  - host: b\n    port: 2"
	if diff := cmp.Diff(want, string(d)); diff != "" {
		t.Errorf("Marshal() mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshal(t *testing.T) {
	in := "name: app\ndebug: yes\nservers:\n  - host: a\n    port: 1\nlabels:\n  tier: backend\nextra: ignored"
	var cfg config
	if err := Unmarshal([]byte(in), &cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	want := config{
		Name:    "app",
		Debug:   true,
		Servers: []server{{Host: "a", Port: 1}},
		Labels:  map[string]string{"tier": "backend"},
	}
	if diff := cmp.Diff(want, cfg, cmp.AllowUnexported(config{})); diff != "" {
		t.Errorf("Unmarshal() mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	in := config{
		Name:    "x",
		Debug:   true,
		Servers: []server{{Host: "h", Port: 80}},
	}
	d, err := Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var out config
	if err := Unmarshal(d, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if diff := cmp.Diff(in, out, cmp.AllowUnexported(config{})); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestToIR(t *testing.T) {
	node, err := ToIR(map[string]interface{}{
		"n":    int64(1),
		"f":    2.5,
		"s":    "x",
		"b":    true,
		"nope": nil,
		"list": []interface{}{int64(1), "two"},
	})
	if err != nil {
		t.Fatalf("ToIR() error = %v", err)
	}
	want := ir.FromKeyVals([]ir.KeyVal{
		{Key: "b", Val: ir.FromBool(true)},
		{Key: "f", Val: ir.FromFloat(2.5)},
		{Key: "list", Val: ir.FromSlice([]*ir.Node{
			ir.FromInt(1), ir.FromString("two"),
		})},
		{Key: "n", Val: ir.FromInt(1)},
		{Key: "nope", Val: ir.Null()},
		{Key: "s", Val: ir.FromString("x")},
	})
	if !ir.Equal(node, want) {
		t.Errorf("ToIR() = %v, want %v", node, want)
	}
}

func TestToIRCycle(t *testing.T) {
	type ring struct {
		Next *ring `yamlet:"next"`
	}
	r := &ring{}
	r.Next = r
	if _, err := ToIR(r); err == nil {
		t.Error("ToIR() on a cycle did not fail")
	}
}

func TestToGo(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromInt(1)},
		{Key: "b", Val: ir.FromSlice([]*ir.Node{ir.FromString("x"), ir.Null()})},
	})
	got, err := ToGo(node)
	if err != nil {
		t.Fatalf("ToGo() error = %v", err)
	}
	want := map[string]interface{}{
		"a": int64(1),
		"b": []interface{}{"x", nil},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToGo() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromIRTypeMismatch(t *testing.T) {
	var n int
	err := FromIR(ir.FromString("x"), &n)
	if err == nil {
		t.Fatal("FromIR() string into int did not fail")
	}
	var ue *UnmarshalError
	if !errors.As(err, &ue) {
		t.Errorf("error type = %T, want *UnmarshalError", err)
	}
}
