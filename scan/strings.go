package scan

import "github.com/emberjson/emberjson/scan/internal/rune8"

const (
	highSurrogateLo = 0xD800
	highSurrogateHi = 0xDBFF
	lowSurrogateLo  = 0xDC00
	lowSurrogateHi  = 0xDFFF
)

func isHighSurrogate(r rune) bool { return r >= highSurrogateLo && r <= highSurrogateHi }
func isLowSurrogate(r rune) bool  { return r >= lowSurrogateLo && r <= lowSurrogateHi }

// scanString consumes a quoted string lexeme starting at the cursor,
// where quote is '"' (always accepted) or '\'' (JSON5 only, checked by
// the caller). The returned span includes both delimiters.
func (sc *Scanner) scanString(quote byte) (Span, *SyntacticError) {
	json5 := sc.opts.Dialect == JSON5
	start := sc.state.cursor
	i := start + 1 // opening quote is always one ASCII byte
	for {
		if run := rune8.ScanASCIIRun(sc.src[i:], quote); run > 0 {
			i += run
			continue
		}
		r, size, serr := sc.decodeAt(i)
		if serr != nil {
			return Span{}, serr
		}
		if size == 0 {
			return Span{}, newSyntacticError(BadSyntax, start, "unterminated string literal")
		}
		if r == rune(quote) {
			i += size
			return Span{Offset: start, Length: i - start}, nil
		}
		if r == '\\' {
			escStart := i
			i += size
			r2, size2, serr := sc.decodeAt(i)
			if serr != nil {
				return Span{}, serr
			}
			if size2 == 0 {
				return Span{}, newSyntacticError(BadSyntax, start, "unterminated string literal")
			}
			switch {
			case r2 == '"' || r2 == '\\' || r2 == '/' || r2 == 'b' || r2 == 'f' || r2 == 'n' || r2 == 'r' || r2 == 't':
				i += size2
			case json5 && r2 == '\'':
				i += size2
			case json5 && (r2 == 'v' || r2 == '0'):
				i += size2
			case json5 && r2 == 'x':
				i += size2
				for k := 0; k < 2; k++ {
					b := sc.byteAt(i)
					if !rune8.IsHexDigit(rune(b)) {
						return Span{}, newSyntacticError(BadSyntax, escStart, "invalid hex escape")
					}
					i++
				}
			case r2 == 'u':
				i += size2
				hi, ok := sc.readHex4(i)
				if !ok {
					return Span{}, newSyntacticError(BadSyntax, escStart, "invalid unicode escape")
				}
				i += 4
				if isHighSurrogate(hi) {
					if sc.byteAt(i) != '\\' || sc.byteAt(i+1) != 'u' {
						return Span{}, newSyntacticError(BadSyntax, escStart, "unmatched surrogate pair")
					}
					lo, ok := sc.readHex4(i + 2)
					if !ok || !isLowSurrogate(lo) {
						return Span{}, newSyntacticError(BadSyntax, escStart, "unmatched surrogate pair")
					}
					i += 6
				} else if isLowSurrogate(hi) {
					return Span{}, newSyntacticError(BadSyntax, escStart, "unmatched surrogate pair")
				}
			case json5 && rune8.IsNewlineSequence(r2):
				i += size2
				if r2 == '\r' {
					if r3, size3, _ := sc.decodeAt(i); r3 == '\n' {
						i += size3
					}
				}
			default:
				return Span{}, newSyntacticError(BadSyntax, escStart, "invalid escape sequence")
			}
			continue
		}
		if r < 0x20 {
			return Span{}, newSyntacticError(BadSyntax, i, "control character in string")
		}
		i += size
	}
}

// readHex4 parses exactly four ASCII hex digits starting at off.
func (sc *Scanner) readHex4(off int) (rune, bool) {
	var v rune
	for k := 0; k < 4; k++ {
		b := sc.byteAt(off + k)
		if !rune8.IsHexDigit(rune(b)) {
			return 0, false
		}
		v = v<<4 | rune(hexVal(b))
	}
	return v, true
}

func hexVal(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	default:
		return 0
	}
}
