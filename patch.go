package yamlet

import (
	jsonpatch "github.com/evanphx/json-patch"

	"github.com/yamlet-format/go-yamlet/debug"
	"github.com/yamlet-format/go-yamlet/ir"
)

// MergePatch applies an RFC 7386 JSON merge patch to a document and
// returns the patched tree. The document round-trips through its JSON
// form, so the result carries only plain values.
func MergePatch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	d, err := ir.ToJSON(doc)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("merge patch %s with %s\n", string(d), string(patch))
	}
	out, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, err
	}
	return ir.FromJSON(out)
}

// ApplyPatch applies an RFC 6902 JSON patch (an array of operations)
// to a document.
func ApplyPatch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, err
	}
	d, err := ir.ToJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	return ir.FromJSON(out)
}
