package parse

import (
	"strings"

	"github.com/yamlet-format/go-yamlet/debug"
	"github.com/yamlet-format/go-yamlet/ir"
	"github.com/yamlet-format/go-yamlet/scalar"
)

// Parse decodes yamlet text into a value tree.
//
// The decoder is lenient: lines it cannot make sense of are dropped and
// the best-effort partial tree is returned. The error result exists for
// API symmetry and future options; the line algorithm itself has no
// failure path. Parse(nil) returns an empty object.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: defaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{
		lines: splitLines(d),
		opts:  pOpts,
	}
	p.frames = append(p.frames, &frame{
		node:   ir.EmptyObject(),
		indent: -1,
	})
	res := p.run()
	if debug.Parse() {
		debug.Logf("parsed %d lines into:\n%v\n", len(p.lines), res)
	}
	return res, nil
}

// ParseString is Parse on a string.
func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// line is one surviving input line. Blank lines and comment lines never
// make it this far.
type line struct {
	indent int    // count of leading spaces; tabs are not special
	text   string // raw text, terminator stripped
	trim   string
}

func splitLines(d []byte) []line {
	if len(d) == 0 {
		return nil
	}
	raw := strings.Split(string(d), "\n")
	res := make([]line, 0, len(raw))
	for _, ln := range raw {
		ln = strings.TrimSuffix(ln, "\r")
		trim := strings.TrimSpace(ln)
		if trim == "" || strings.HasPrefix(trim, "#") {
			continue
		}
		res = append(res, line{
			indent: len(ln) - len(strings.TrimLeft(ln, " ")),
			text:   ln,
			trim:   trim,
		})
	}
	return res
}

// frame is one level of the indentation stack: the container that lines
// deeper than indent attach to. A frame with a nil node swallows lines
// beyond the depth limit. The root frame sits at indent -1, below any
// real indentation, and is type-undetermined until the first line fixes
// it.
type frame struct {
	node    *ir.Node
	indent  int
	decided bool
}

type parser struct {
	lines  []line
	frames []*frame
	opts   *parseOpts
}

func (p *parser) run() *ir.Node {
	i := 0
	for i < len(p.lines) {
		ln := &p.lines[i]
		p.popTo(ln.indent)
		top := p.top()
		if top.node == nil {
			i++
			continue
		}
		rest, dash := strings.CutPrefix(ln.trim, "- ")
		switch {
		case dash:
			i = p.seqItem(top, rest, ln, i)
		case strings.Contains(ln.trim, ":"):
			if !top.decided {
				top.decided = true
			}
			if top.node.Type != ir.ObjectType {
				i++
				continue
			}
			i = p.entry(top.node, ln.trim, ln.indent, i)
		default:
			// no dash, no colon: not parseable, dropped
			i++
		}
	}
	return p.frames[0].node
}

func (p *parser) seqItem(top *frame, rest string, ln *line, i int) int {
	if !top.decided && len(top.node.Fields) == 0 && len(top.node.Values) == 0 {
		top.node.Type = ir.ArrayType
		top.decided = true
	}
	if top.node.Type != ir.ArrayType {
		return i + 1
	}
	top.decided = true
	node, indent := top.node, ln.indent
	// further dash markers on the same line open nested sequences, each
	// two columns deeper
	for {
		r, more := strings.CutPrefix(rest, "- ")
		if !more {
			break
		}
		inner := ir.EmptyArray()
		node.Append(inner)
		p.push(inner, indent)
		node = inner
		indent += 2
		rest = r
	}
	if !strings.Contains(rest, ":") {
		if c := emptyLit(strings.TrimSpace(rest)); c != nil {
			node.Append(c)
			return i + 1
		}
		node.Append(scalar.Parse(rest))
		return i + 1
	}
	// looks like a mapping entry: the item becomes an object holding
	// the same-line key, and later deeper lines add further keys. The
	// object's frame sits at the dash indent so sibling keys two
	// columns in stay attached, but the entry itself starts after the
	// marker: block bodies, lookahead and container pushes all key off
	// that column.
	m := ir.EmptyObject()
	node.Append(m)
	p.push(m, indent)
	return p.entry(m, rest, indent+2, i)
}

// entry handles one key: value mapping entry at line index i and
// returns the index of the next line to process. indent is the indent
// of the introducing line, which for items like "- key: value" is the
// dash line's indent.
func (p *parser) entry(obj *ir.Node, text string, indent, i int) int {
	k, rawVal, _ := strings.Cut(text, ":")
	// quoted keys come back bare so that keys the encoder must quote,
	// like "true" or "on", survive a round trip
	key := scalar.Unquote(strings.TrimSpace(k))
	switch strings.TrimSpace(rawVal) {
	case "|", ">":
		s, next := p.block(i, indent)
		obj.Put(key, ir.FromString(s))
		return next
	case "":
		if i+1 < len(p.lines) && p.lines[i+1].indent > indent {
			var c *ir.Node
			if strings.HasPrefix(p.lines[i+1].trim, "- ") {
				c = ir.EmptyArray()
			} else {
				c = ir.EmptyObject()
			}
			obj.Put(key, c)
			p.push(c, indent)
		} else {
			obj.Put(key, ir.Null())
		}
		return i + 1
	default:
		if c := emptyLit(strings.TrimSpace(rawVal)); c != nil {
			obj.Put(key, c)
			return i + 1
		}
		obj.Put(key, scalar.Parse(rawVal))
		return i + 1
	}
}

// emptyLit recognizes the two flow forms the encoder emits for empty
// containers. Non-empty flow syntax stays out of the grammar.
func emptyLit(v string) *ir.Node {
	switch v {
	case "{}":
		return ir.EmptyObject()
	case "[]":
		return ir.EmptyArray()
	}
	return nil
}

// block consumes the body of a | or > scalar introduced at line i. Both
// styles are literal joins: each following line deeper than indent is
// kept with indent+2 leading columns stripped, and the lines join with
// newlines. There is no folding and no chomping.
func (p *parser) block(i, indent int) (string, int) {
	var lns []string
	strip := indent + 2
	j := i + 1
	for j < len(p.lines) && p.lines[j].indent > indent {
		t := p.lines[j].text
		if len(t) > strip {
			t = t[strip:]
		} else {
			t = ""
		}
		lns = append(lns, t)
		j++
	}
	return strings.Join(lns, "\n"), j
}

func (p *parser) top() *frame {
	return p.frames[len(p.frames)-1]
}

func (p *parser) popTo(indent int) {
	for len(p.frames) > 1 && p.top().indent >= indent {
		p.frames = p.frames[:len(p.frames)-1]
	}
}

func (p *parser) push(node *ir.Node, indent int) {
	if len(p.frames) >= p.opts.maxDepth {
		node = nil
	}
	p.frames = append(p.frames, &frame{
		node:    node,
		indent:  indent,
		decided: true,
	})
}
