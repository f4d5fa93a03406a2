package ir

import "testing"

func TestPut(t *testing.T) {
	obj := EmptyObject()
	obj.Put("a", FromInt(1))
	obj.Put("b", FromInt(2))
	obj.Put("a", FromInt(3))
	if len(obj.Fields) != 2 {
		t.Fatalf("field count = %d, want 2", len(obj.Fields))
	}
	a := Get(obj, "a")
	if a == nil || *a.Int64 != 3 {
		t.Errorf("a = %v, want 3", a)
	}
	if a.Parent != obj || a.ParentField != "a" || a.ParentIndex != 0 {
		t.Errorf("backlink = (%v, %q, %d)", a.Parent, a.ParentField, a.ParentIndex)
	}
}

func TestRemoveField(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromInt(1)},
		{Key: "b", Val: FromInt(2)},
		{Key: "c", Val: FromInt(3)},
	})
	if !obj.RemoveField("b") {
		t.Fatal("RemoveField(b) = false")
	}
	if obj.RemoveField("b") {
		t.Error("second RemoveField(b) = true")
	}
	if got := obj.FieldIndex("c"); got != 1 {
		t.Errorf("FieldIndex(c) = %d, want 1", got)
	}
	if c := Get(obj, "c"); c.ParentIndex != 1 {
		t.Errorf("c.ParentIndex = %d, want 1", c.ParentIndex)
	}
}

func TestCloneIndependence(t *testing.T) {
	orig := FromKeyVals([]KeyVal{
		{Key: "list", Val: FromSlice([]*Node{FromInt(1)})},
	})
	cp := orig.Clone()
	if !Equal(orig, cp) {
		t.Fatal("clone differs from original")
	}
	cp.GetPath("list").Append(FromInt(2))
	cp.Put("extra", Null())
	if len(orig.GetPath("list").Values) != 1 || len(orig.Fields) != 1 {
		t.Error("mutating the clone changed the original")
	}
	if inner := cp.GetPath("list"); inner.Parent != cp {
		t.Error("clone children do not point at the clone")
	}
}

func TestRoot(t *testing.T) {
	root := EmptyObject()
	root.SetPath("a.b", FromInt(1))
	leaf := root.GetPath("a.b")
	if leaf.Root() != root {
		t.Error("Root() did not find the top of the tree")
	}
}

func TestVisit(t *testing.T) {
	root := FromSlice([]*Node{
		FromInt(1),
		FromSlice([]*Node{FromInt(2)}),
	})
	var pre, post int
	err := root.Visit(func(y *Node, isPost bool) (bool, error) {
		if isPost {
			post++
		} else {
			pre++
		}
		return true, nil
	})
	if err != nil {
		t.Fatalf("Visit() error = %v", err)
	}
	if pre != 4 || post != 4 {
		t.Errorf("visit counts = (%d, %d), want (4, 4)", pre, post)
	}
}
