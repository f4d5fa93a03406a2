package encode

type EncodeOption func(*EncState)

// Indent sets the number of spaces per nesting level. The default is 2.
func Indent(n int) EncodeOption {
	return func(es *EncState) {
		if n > 0 {
			es.indent = n
		}
	}
}

// Depth sets the starting nesting depth, for splicing output under
// already-indented text.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// EncodeColors turns on ANSI colorization of the output.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
