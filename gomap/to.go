package gomap

import (
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/yamlet-format/go-yamlet/ir"
)

// ToIR converts a Go value to a node.  Maps must have string keys; struct
// fields may be renamed or skipped with `yamlet:"name,omitempty"` tags.
func ToIR(v interface{}) (*ir.Node, error) {
	if v == nil {
		return ir.Null(), nil
	}
	if node, ok := v.(*ir.Node); ok {
		return node, nil
	}
	visited := map[uintptr]bool{}
	return toIR(reflect.ValueOf(v), "", visited)
}

func toIR(val reflect.Value, fieldPath string, visited map[uintptr]bool) (*ir.Node, error) {
	if !val.IsValid() {
		return ir.Null(), nil
	}
	switch val.Kind() {
	case reflect.Ptr:
		if val.IsNil() {
			return ir.Null(), nil
		}
		addr := val.Pointer()
		if visited[addr] {
			return nil, &MarshalError{FieldPath: fieldPath, Message: "circular reference"}
		}
		visited[addr] = true
		defer delete(visited, addr)
		return toIR(val.Elem(), fieldPath, visited)
	case reflect.Interface:
		if val.IsNil() {
			return ir.Null(), nil
		}
		return toIR(val.Elem(), fieldPath, visited)
	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := val.Uint()
		if u > math.MaxInt64 {
			return nil, &MarshalError{FieldPath: fieldPath,
				Message: fmt.Sprintf("uint value %d overflows int64", u)}
		}
		return ir.FromInt(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil
	case reflect.String:
		return ir.FromString(val.String()), nil
	case reflect.Slice, reflect.Array:
		return sliceToIR(val, fieldPath, visited)
	case reflect.Map:
		return mapToIR(val, fieldPath, visited)
	case reflect.Struct:
		return structToIR(val, fieldPath, visited)
	default:
		return nil, &MarshalError{FieldPath: fieldPath,
			Message: fmt.Sprintf("unsupported type %s", val.Type())}
	}
}

func sliceToIR(val reflect.Value, fieldPath string, visited map[uintptr]bool) (*ir.Node, error) {
	res := ir.EmptyArray()
	for i := 0; i < val.Len(); i++ {
		elt, err := toIR(val.Index(i), joinPath(fieldPath, fmt.Sprintf("[%d]", i)), visited)
		if err != nil {
			return nil, err
		}
		res.Append(elt)
	}
	return res, nil
}

func mapToIR(val reflect.Value, fieldPath string, visited map[uintptr]bool) (*ir.Node, error) {
	if val.Type().Key().Kind() != reflect.String {
		return nil, &MarshalError{FieldPath: fieldPath,
			Message: fmt.Sprintf("map key type %s is not a string", val.Type().Key())}
	}
	keys := make([]string, 0, val.Len())
	for _, k := range val.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	res := ir.EmptyObject()
	for _, k := range keys {
		v, err := toIR(val.MapIndex(reflect.ValueOf(k).Convert(val.Type().Key())),
			joinPath(fieldPath, k), visited)
		if err != nil {
			return nil, err
		}
		res.Put(k, v)
	}
	return res, nil
}

func structToIR(val reflect.Value, fieldPath string, visited map[uintptr]bool) (*ir.Node, error) {
	res := ir.EmptyObject()
	if err := structFieldsToIR(res, val, fieldPath, visited); err != nil {
		return nil, err
	}
	return res, nil
}

func structFieldsToIR(res *ir.Node, val reflect.Value, fieldPath string, visited map[uintptr]bool) error {
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := val.Field(i)
		if sf.Anonymous && fv.Kind() == reflect.Struct && sf.Tag.Get(tagName) == "" {
			if err := structFieldsToIR(res, fv, fieldPath, visited); err != nil {
				return err
			}
			continue
		}
		name, omitEmpty := fieldName(sf)
		if name == "" {
			continue
		}
		if omitEmpty && fv.IsZero() {
			continue
		}
		node, err := toIR(fv, joinPath(fieldPath, name), visited)
		if err != nil {
			return err
		}
		res.Put(name, node)
	}
	return nil
}

func joinPath(base, elt string) string {
	if base == "" {
		return elt
	}
	if len(elt) > 0 && elt[0] == '[' {
		return base + elt
	}
	return base + "." + elt
}
