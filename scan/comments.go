package scan

import (
	"github.com/emberjson/emberjson/scan/internal/idclass"
	"github.com/emberjson/emberjson/scan/internal/rune8"
)

// skipInsignificant advances the cursor past whitespace and, where the
// dialect allows, "//" and "/* */" comments. It never emits a token;
// callers peek again after calling it.
func (sc *Scanner) skipInsignificant() *SyntacticError {
	commentsOK := sc.opts.commentsAllowed()
	json5 := sc.opts.Dialect == JSON5
	for {
		r, size, serr := sc.decodeAt(sc.state.cursor)
		if serr != nil {
			return serr
		}
		if size == 0 {
			return nil
		}
		switch {
		case json5 && idclass.IsJSON5Space(r):
			sc.state.cursor += size
			continue
		case !json5 && rune8.IsStrictWhitespace(r):
			sc.state.cursor += size
			continue
		case commentsOK && r == '/':
			consumed, serr := sc.skipComment()
			if serr != nil {
				return serr
			}
			if consumed == 0 {
				return nil
			}
			continue
		default:
			return nil
		}
	}
}

// skipComment consumes one "//..." or "/*...*/" comment starting at the
// cursor and reports how many bytes it consumed, or an error if a block
// comment is unterminated. It consumes nothing and returns (0, nil) if
// the cursor is not actually at the start of a comment.
func (sc *Scanner) skipComment() (int, *SyntacticError) {
	start := sc.state.cursor
	r2, size2, serr := sc.decodeAt(start + 1)
	if serr != nil {
		return 0, serr
	}
	switch r2 {
	case '/':
		i := start + 1 + size2
		for {
			r, size, serr := sc.decodeAt(i)
			if serr != nil {
				return 0, serr
			}
			if size == 0 || rune8.IsNewlineSequence(r) {
				break
			}
			i += size
		}
		sc.state.cursor = i
		return i - start, nil
	case '*':
		i := start + 1 + size2
		for {
			r, size, serr := sc.decodeAt(i)
			if serr != nil {
				return 0, serr
			}
			if size == 0 {
				return 0, newSyntacticError(BadSyntax, start, "unterminated block comment")
			}
			if r == '*' {
				r3, size3, serr := sc.decodeAt(i + size)
				if serr != nil {
					return 0, serr
				}
				if r3 == '/' {
					i += size + size3
					break
				}
			}
			i += size
		}
		sc.state.cursor = i
		return i - start, nil
	default:
		return 0, nil
	}
}
