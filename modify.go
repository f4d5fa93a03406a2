package yamlet

import (
	"errors"
	"fmt"

	"github.com/yamlet-format/go-yamlet/debug"
	"github.com/yamlet-format/go-yamlet/encode"
	"github.com/yamlet-format/go-yamlet/ir"
)

// ErrMutator reports that a Modify mutator declined to produce a
// result.
var ErrMutator = errors.New("mutator returned nothing")

// Mutator transforms a decoded tree during Modify. Returning nil
// aborts the operation with ErrMutator and leaves the file untouched.
type Mutator func(*ir.Node) *ir.Node

// Modify reads the yamlet file at path, applies fn to the decoded
// tree, and writes the re-encoded result back in place. Note that
// writing back normalizes the file: key order, quoting and indentation
// follow the encoder, and comments do not survive.
func Modify(path string, fn Mutator, opts ...encode.EncodeOption) error {
	doc, err := ReadFile(path)
	if err != nil {
		return err
	}
	if debug.Modify() {
		debug.Logf("modify %s:\n%v\n", path, doc)
	}
	out := fn(doc)
	if out == nil {
		return fmt.Errorf("modify %s: %w", path, ErrMutator)
	}
	return WriteFile(path, out, opts...)
}
