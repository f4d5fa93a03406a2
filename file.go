package yamlet

import (
	"fmt"
	"os"

	"github.com/yamlet-format/go-yamlet/encode"
	"github.com/yamlet-format/go-yamlet/ir"
)

// ReadFile reads and decodes the yamlet file at path. Errors come only
// from the I/O boundary and wrap the OS reason; unparseable content
// degrades to a partial tree instead of failing.
func ReadFile(path string) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return Parse(d)
}

// WriteFile encodes node and writes it to path, creating or truncating
// the file. The written text ends with a newline.
func WriteFile(path string, node *ir.Node, opts ...encode.EncodeOption) error {
	s, err := EncodeString(node, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(s+"\n"), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
