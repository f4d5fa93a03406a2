package scalar

import "strings"

// Special is the set of characters that force quoting and rule out
// block literal rendering.
const Special = ":#[]{}"

// NeedsQuote reports whether a string must be double quoted to survive
// a reparse. Quoting triggers when the text would read back as a
// number (purely digits, or digits and dots), as a keyword (true,
// false, yes, no, on, off, null), when it contains one of the Special
// characters or a newline, or when surrounding whitespace would be
// trimmed away. A plain interior space does not trigger quoting.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	if allIn(v, "0123456789") {
		return true
	}
	if allIn(v, "0123456789.") {
		return true
	}
	switch v {
	case "true", "false", "yes", "no", "on", "off", "null":
		return true
	}
	if strings.ContainsAny(v, Special) {
		return true
	}
	if strings.TrimSpace(v) != v {
		return true
	}
	return strings.Contains(v, "\n")
}

func allIn(v, class string) bool {
	for i := 0; i < len(v); i++ {
		if !strings.ContainsRune(class, rune(v[i])) {
			return false
		}
	}
	return true
}

// Quote wraps v in double quotes, escaping backslash, double quote,
// newline, carriage return and tab.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for i := 0; i < len(v); i++ {
		switch c := v[i]; c {
		case '\\':
			d = append(d, '\\', '\\')
		case '"':
			d = append(d, '\\', '"')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			d = append(d, c)
		}
	}
	return string(append(d, '"'))
}
