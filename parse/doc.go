// Package parse decodes yamlet text into ir nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte("name: John Doe\nage: 30\n"))
//	if err != nil {
//	    return err
//	}
//
// The decoder works line by line with an explicit indentation stack. It
// covers the pragmatic subset of YAML that configuration files actually
// use: scalars, block sequences, block mappings, | and > block scalars,
// comments, and nesting by indentation. Anchors, aliases, tags, flow
// collections (beyond the empty [] and {} the encoder emits) and
// multi-document streams are out of scope.
//
// # Leniency
//
// Malformed lines are silently dropped and the decoder returns the
// best-effort tree it could build. This is the documented contract, not
// an oversight: there is no syntax error in this package, and callers
// get a partial result rather than a failure. Errors surface only at
// the file I/O boundary, which lives in the root yamlet package.
//
// # Related Packages
//
//   - github.com/yamlet-format/go-yamlet/ir - value tree
//   - github.com/yamlet-format/go-yamlet/encode - encode ir to text
package parse
