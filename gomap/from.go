package gomap

import (
	"fmt"
	"math"
	"reflect"

	"github.com/yamlet-format/go-yamlet/ir"
)

// FromIR stores a node in the Go value pointed to by v.  Object fields
// with no matching destination are ignored.
func FromIR(node *ir.Node, v interface{}) error {
	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr || val.IsNil() {
		return &UnmarshalError{Message: "destination must be a non-nil pointer"}
	}
	if node == nil {
		node = ir.Null()
	}
	return fromIR(node, val.Elem(), "")
}

// ToGo converts a node to plain Go values: nil, bool, int64, float64,
// string, []interface{} and map[string]interface{}.
func ToGo(node *ir.Node) (interface{}, error) {
	if node == nil {
		return nil, nil
	}
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64, nil
		}
		if node.Float64 != nil {
			return *node.Float64, nil
		}
		return int64(0), nil
	case ir.StringType:
		return node.String, nil
	case ir.ArrayType:
		res := make([]interface{}, len(node.Values))
		for i, elt := range node.Values {
			v, err := ToGo(elt)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	case ir.ObjectType:
		res := make(map[string]interface{}, len(node.Fields))
		for i := range node.Fields {
			v, err := ToGo(node.Values[i])
			if err != nil {
				return nil, err
			}
			res[node.Fields[i].String] = v
		}
		return res, nil
	}
	return nil, &UnmarshalError{Message: fmt.Sprintf("unexpected node type %s", node.Type)}
}

func fromIR(node *ir.Node, val reflect.Value, fieldPath string) error {
	switch val.Kind() {
	case reflect.Ptr:
		if node.Type == ir.NullType {
			val.Set(reflect.Zero(val.Type()))
			return nil
		}
		if val.IsNil() {
			val.Set(reflect.New(val.Type().Elem()))
		}
		return fromIR(node, val.Elem(), fieldPath)
	case reflect.Interface:
		if val.NumMethod() != 0 {
			return &UnmarshalError{FieldPath: fieldPath,
				Message: fmt.Sprintf("cannot unmarshal into %s", val.Type())}
		}
		goVal, err := ToGo(node)
		if err != nil {
			return err
		}
		if goVal == nil {
			val.Set(reflect.Zero(val.Type()))
			return nil
		}
		val.Set(reflect.ValueOf(goVal))
		return nil
	}
	if node.Type == ir.NullType {
		val.Set(reflect.Zero(val.Type()))
		return nil
	}
	switch val.Kind() {
	case reflect.Bool:
		if node.Type != ir.BoolType {
			return typeMismatch(node, val, fieldPath)
		}
		val.SetBool(node.Bool)
		return nil
	case reflect.String:
		if node.Type != ir.StringType {
			return typeMismatch(node, val, fieldPath)
		}
		val.SetString(node.String)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := intOf(node)
		if !ok {
			return typeMismatch(node, val, fieldPath)
		}
		if val.OverflowInt(n) {
			return &UnmarshalError{FieldPath: fieldPath,
				Message: fmt.Sprintf("value %d overflows %s", n, val.Type())}
		}
		val.SetInt(n)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, ok := intOf(node)
		if !ok {
			return typeMismatch(node, val, fieldPath)
		}
		if n < 0 || val.OverflowUint(uint64(n)) {
			return &UnmarshalError{FieldPath: fieldPath,
				Message: fmt.Sprintf("value %d overflows %s", n, val.Type())}
		}
		val.SetUint(uint64(n))
		return nil
	case reflect.Float32, reflect.Float64:
		if node.Type != ir.NumberType {
			return typeMismatch(node, val, fieldPath)
		}
		var f float64
		switch {
		case node.Float64 != nil:
			f = *node.Float64
		case node.Int64 != nil:
			f = float64(*node.Int64)
		}
		val.SetFloat(f)
		return nil
	case reflect.Slice:
		if node.Type != ir.ArrayType {
			return typeMismatch(node, val, fieldPath)
		}
		res := reflect.MakeSlice(val.Type(), len(node.Values), len(node.Values))
		for i, elt := range node.Values {
			if err := fromIR(elt, res.Index(i), joinPath(fieldPath, fmt.Sprintf("[%d]", i))); err != nil {
				return err
			}
		}
		val.Set(res)
		return nil
	case reflect.Map:
		return fromIRMap(node, val, fieldPath)
	case reflect.Struct:
		return fromIRStruct(node, val, fieldPath)
	default:
		return &UnmarshalError{FieldPath: fieldPath,
			Message: fmt.Sprintf("unsupported type %s", val.Type())}
	}
}

func fromIRMap(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.ObjectType {
		return typeMismatch(node, val, fieldPath)
	}
	typ := val.Type()
	if typ.Key().Kind() != reflect.String {
		return &UnmarshalError{FieldPath: fieldPath,
			Message: fmt.Sprintf("map key type %s is not a string", typ.Key())}
	}
	res := reflect.MakeMapWithSize(typ, len(node.Fields))
	for i := range node.Fields {
		f := node.Fields[i].String
		elt := reflect.New(typ.Elem()).Elem()
		if err := fromIR(node.Values[i], elt, joinPath(fieldPath, f)); err != nil {
			return err
		}
		res.SetMapIndex(reflect.ValueOf(f).Convert(typ.Key()), elt)
	}
	val.Set(res)
	return nil
}

func fromIRStruct(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.ObjectType {
		return typeMismatch(node, val, fieldPath)
	}
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := val.Field(i)
		if sf.Anonymous && fv.Kind() == reflect.Struct && sf.Tag.Get(tagName) == "" {
			if err := fromIRStruct(node, fv, fieldPath); err != nil {
				return err
			}
			continue
		}
		name, _ := fieldName(sf)
		if name == "" {
			continue
		}
		fieldNode := ir.Get(node, name)
		if fieldNode == nil {
			continue
		}
		if err := fromIR(fieldNode, fv, joinPath(fieldPath, name)); err != nil {
			return err
		}
	}
	return nil
}

func intOf(node *ir.Node) (int64, bool) {
	if node.Type != ir.NumberType {
		return 0, false
	}
	if node.Int64 != nil {
		return *node.Int64, true
	}
	if node.Float64 != nil {
		f := *node.Float64
		if f == math.Trunc(f) && f >= math.MinInt64 && f <= math.MaxInt64 {
			return int64(f), true
		}
	}
	return 0, false
}

func typeMismatch(node *ir.Node, val reflect.Value, fieldPath string) error {
	return &UnmarshalError{FieldPath: fieldPath,
		Message: fmt.Sprintf("cannot unmarshal %s into %s", node.Type, val.Type())}
}
