package gomap

import (
	"bytes"

	"github.com/yamlet-format/go-yamlet/encode"
	"github.com/yamlet-format/go-yamlet/parse"
)

// Marshal converts a Go value to encoded bytes.
func Marshal(v interface{}, opts ...encode.EncodeOption) ([]byte, error) {
	node, err := ToIR(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := encode.Encode(node, &buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses encoded bytes and stores the result in the Go value
// pointed to by v.
func Unmarshal(d []byte, v interface{}) error {
	node, err := parse.Parse(d)
	if err != nil {
		return err
	}
	return FromIR(node, v)
}
