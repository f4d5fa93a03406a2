package parse

const defaultMaxDepth = 10000

type parseOpts struct {
	maxDepth int
}

type ParseOption func(*parseOpts)

// MaxDepth caps the indentation stack. Content nested deeper than n
// containers is dropped rather than parsed; the decoder stays lenient
// instead of failing.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}
