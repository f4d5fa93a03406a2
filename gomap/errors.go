package gomap

import "fmt"

// MarshalError reports a Go value that could not be converted to a node.
type MarshalError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// UnmarshalError reports a node that could not be stored in a Go value.
type UnmarshalError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *UnmarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("unmarshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("unmarshal error: %s", e.Message)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}
