package ir

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want int
	}{
		{"nil nil", nil, nil, 0},
		{"nil vs null", nil, Null(), -1},
		{"null null", Null(), Null(), 0},
		{"false true", FromBool(false), FromBool(true), -1},
		{"int order", FromInt(1), FromInt(2), -1},
		{"int float mix", FromInt(2), FromFloat(2), 0},
		{"float order", FromFloat(1.5), FromFloat(1.25), 1},
		{"string order", FromString("a"), FromString("b"), -1},
		{"type rank", FromBool(true), FromInt(0), -1},
		{"scalar before array", FromString("z"), EmptyArray(), -1},
		{"array before object", EmptyArray(), EmptyObject(), -1},
		{"array prefix", FromSlice([]*Node{FromInt(1)}),
			FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"array element", FromSlice([]*Node{FromInt(2)}),
			FromSlice([]*Node{FromInt(1), FromInt(9)}), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
			if got := Compare(tt.b, tt.a); got != -tt.want {
				t.Errorf("Compare() reversed = %d, want %d", got, -tt.want)
			}
		})
	}
}

func TestCompareObjectsIgnoreOrder(t *testing.T) {
	a := FromKeyVals([]KeyVal{
		{Key: "x", Val: FromInt(1)},
		{Key: "y", Val: FromInt(2)},
	})
	b := FromKeyVals([]KeyVal{
		{Key: "y", Val: FromInt(2)},
		{Key: "x", Val: FromInt(1)},
	})
	if !Equal(a, b) {
		t.Error("objects with the same pairs in different order compare unequal")
	}
	b.Put("y", FromInt(3))
	if Equal(a, b) {
		t.Error("objects with different values compare equal")
	}
}
