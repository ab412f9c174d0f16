package main

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/emberjson/emberjson/scan"
	"github.com/emberjson/emberjson/value"
)

// emitFrame tracks an array or object that is partway through being
// written, so emit can walk the tree with an explicit stack instead of
// recursing — the same anti-recursion idiom scan.Scanner and
// value.Free use for the same reason: a pathologically deep tree must
// not exhaust the Go call stack.
type emitFrame struct {
	node     *value.Node
	member   *value.Member
	child    *value.Node
	wroteOne bool
}

// emit writes root as standard JSON text into buf. indent <= 0 produces
// compact output with no inserted whitespace; indent > 0 inserts that
// many spaces per nesting level between elements, matching
// encoding/json.Indent's shape. JSON5-only number and string spellings
// (hex literals, a leading '+' or bare decimal point, unquoted or
// single-quoted names, extra escapes, line-continuations) are normalized
// to their standard JSON equivalents on the way out. NaN and Infinite
// have no standard JSON form; emit returns an error for them.
func emit(buf *bytes.Buffer, src []byte, root *value.Node, indent int) error {
	if root == nil {
		return nil
	}
	var stack []*emitFrame
	newline := func(depth int) {
		if indent > 0 {
			buf.WriteByte('\n')
			buf.WriteString(strings.Repeat(" ", indent*depth))
		}
	}
	writeValue := func(n *value.Node) error {
		switch n.Kind() {
		case value.KindNull:
			buf.WriteString("null")
		case value.KindBool:
			b, _ := n.Bool()
			if b {
				buf.WriteString("true")
			} else {
				buf.WriteString("false")
			}
		case value.KindNumber:
			return writeNumber(buf, src, n.Span())
		case value.KindString:
			return writeString(buf, src, n.Span())
		case value.KindArray:
			buf.WriteByte('[')
			count, _ := n.Length()
			if count == 0 {
				buf.WriteByte(']')
				return nil
			}
			first, _ := n.FirstChild()
			stack = append(stack, &emitFrame{node: n, child: first})
		case value.KindObject:
			buf.WriteByte('{')
			count, _ := n.Length()
			if count == 0 {
				buf.WriteByte('}')
				return nil
			}
			first, _ := n.FirstMember()
			stack = append(stack, &emitFrame{node: n, member: first})
		}
		return nil
	}

	if err := writeValue(root); err != nil {
		return err
	}
	for len(stack) > 0 {
		depth := len(stack)
		f := stack[len(stack)-1]
		switch f.node.Kind() {
		case value.KindArray:
			if f.child == nil {
				stack = stack[:len(stack)-1]
				newline(depth - 1)
				buf.WriteByte(']')
				continue
			}
			if f.wroteOne {
				buf.WriteByte(',')
			}
			f.wroteOne = true
			newline(depth)
			cur := f.child
			f.child = cur.NextSibling()
			if err := writeValue(cur); err != nil {
				return err
			}
		case value.KindObject:
			if f.member == nil {
				stack = stack[:len(stack)-1]
				newline(depth - 1)
				buf.WriteByte('}')
				continue
			}
			if f.wroteOne {
				buf.WriteByte(',')
			}
			f.wroteOne = true
			newline(depth)
			cur := f.member
			f.member = cur.NextMember()
			if err := writeString(buf, src, cur.NameSpan()); err != nil {
				return err
			}
			if indent > 0 {
				buf.WriteString(": ")
			} else {
				buf.WriteByte(':')
			}
			if err := writeValue(cur.Value()); err != nil {
				return err
			}
		}
	}
	return nil
}

// isStandardJSONNumber reports whether a lexeme is already a valid
// RFC 8259 number, so it can be copied through verbatim instead of
// round-tripped through float64 and losing precision.
func isStandardJSONNumber(b []byte) bool {
	if len(b) == 0 || b[0] == '+' {
		return false
	}
	for i, c := range b {
		switch {
		case c >= '0' && c <= '9':
		case c == '.':
			// RFC 8259 needs a digit on both sides of the decimal point,
			// which JSON5's ".5" and "1." lack.
			if i == 0 || b[i-1] < '0' || b[i-1] > '9' || i+1 == len(b) || b[i+1] < '0' || b[i+1] > '9' {
				return false
			}
		case c == '-' || c == 'e' || c == 'E':
		case c == '+' && (b[i-1] == 'e' || b[i-1] == 'E'):
		default:
			return false
		}
	}
	return true
}

func writeNumber(buf *bytes.Buffer, src []byte, span scan.Span) error {
	text := span.Slice(src)
	if isStandardJSONNumber(text) {
		buf.Write(text)
		return nil
	}
	f, err := scan.Numberify(src, span)
	if err != nil {
		return fmt.Errorf("formatting number %q: %w", text, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("formatting number %q: no standard JSON representation", text)
	}
	buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	return nil
}

func writeString(buf *bytes.Buffer, src []byte, span scan.Span) error {
	n, err := scan.Stringify(src, span, nil)
	if err != nil {
		return fmt.Errorf("formatting string: %w", err)
	}
	dec := make([]byte, n)
	if _, err := scan.Stringify(src, span, dec); err != nil {
		return fmt.Errorf("formatting string: %w", err)
	}
	buf.WriteByte('"')
	for _, b := range dec {
		switch b {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if b < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, b)
				continue
			}
			buf.WriteByte(b)
		}
	}
	buf.WriteByte('"')
	return nil
}
