package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
)

// ToJSON renders a node as plain JSON. Object fields keep their
// insertion order; no metadata wrapper is used, so the output is the
// natural JSON shape of the value.
func ToJSON(node *Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	enc := jsontext.NewEncoder(buf)
	if err := writeJSON(enc, node); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(enc *jsontext.Encoder, node *Node) error {
	switch node.Type {
	case NullType:
		return enc.WriteToken(jsontext.Null)
	case BoolType:
		return enc.WriteToken(jsontext.Bool(node.Bool))
	case NumberType:
		if node.Int64 != nil {
			return enc.WriteToken(jsontext.Int(*node.Int64))
		}
		if node.Float64 != nil {
			return enc.WriteToken(jsontext.Float(*node.Float64))
		}
		return enc.WriteToken(jsontext.Int(0))
	case StringType:
		return enc.WriteToken(jsontext.String(node.String))
	case ArrayType:
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, v := range node.Values {
			if err := writeJSON(enc, v); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndArray)
	case ObjectType:
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for i := range node.Fields {
			if err := enc.WriteToken(jsontext.String(node.Fields[i].String)); err != nil {
				return err
			}
			if err := writeJSON(enc, node.Values[i]); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndObject)
	default:
		panic("type")
	}
}

// FromJSON parses plain JSON into a node tree, preserving object key
// order as read.
func FromJSON(d []byte) (*Node, error) {
	dec := jsontext.NewDecoder(bytes.NewReader(d))
	return readJSON(dec)
}

func readJSON(dec *jsontext.Decoder) (*Node, error) {
	switch k := dec.PeekKind(); k {
	case 'n':
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return Null(), nil
	case 't', 'f':
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return FromBool(k == 't'), nil
	case '"':
		tok, err := dec.ReadToken()
		if err != nil {
			return nil, err
		}
		return FromString(tok.String()), nil
	case '0':
		raw, err := dec.ReadValue()
		if err != nil {
			return nil, err
		}
		lit := string(raw)
		if !strings.ContainsAny(lit, ".eE") {
			i, err := strconv.ParseInt(lit, 10, 64)
			if err == nil {
				return FromInt(i), nil
			}
		}
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", lit, err)
		}
		return FromFloat(f), nil
	case '[':
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		arr := EmptyArray()
		for dec.PeekKind() != ']' {
			v, err := readJSON(dec)
			if err != nil {
				return nil, err
			}
			arr.Append(v)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return arr, nil
	case '{':
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		obj := EmptyObject()
		for dec.PeekKind() != '}' {
			keyTok, err := dec.ReadToken()
			if err != nil {
				return nil, err
			}
			// The token is voided by the next decoder call, so take the
			// key string before recursing.
			key := keyTok.String()
			v, err := readJSON(dec)
			if err != nil {
				return nil, err
			}
			obj.Put(key, v)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("unexpected json kind %q", byte(k))
	}
}
