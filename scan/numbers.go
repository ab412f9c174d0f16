package scan

import "github.com/emberjson/emberjson/scan/internal/rune8"

// scanNumber consumes a number lexeme at the cursor and validates its
// shape against the active dialect's grammar. It never interprets the
// digits; Numberify does that on demand.
func (sc *Scanner) scanNumber() (Span, *SyntacticError) {
	json5 := sc.opts.Dialect == JSON5
	start := sc.state.cursor
	i := start

	if sc.byteAt(i) == '-' {
		i++
	} else if json5 && sc.byteAt(i) == '+' {
		i++
	}

	if json5 {
		if sc.literalAt(i, "NaN") {
			i += 3
			return Span{Offset: start, Length: i - start}, nil
		}
		if sc.literalAt(i, "Infinite") {
			i += 8
			return Span{Offset: start, Length: i - start}, nil
		}
	}

	if json5 && (sc.literalAt(i, "0x") || sc.literalAt(i, "0X")) {
		i += 2
		digitsStart := i
		for rune8.IsHexDigit(rune(sc.byteAt(i))) {
			i++
		}
		if i == digitsStart {
			return Span{}, newSyntacticError(BadSyntax, start, "invalid hexadecimal number")
		}
		return Span{Offset: start, Length: i - start}, nil
	}

	hadIntDigits := false
	switch {
	case sc.byteAt(i) == '0':
		i++
		hadIntDigits = true
		if isDigit(sc.byteAt(i)) {
			return Span{}, newSyntacticError(BadSyntax, start, "octal literals are not allowed")
		}
	case isDigit(sc.byteAt(i)):
		for isDigit(sc.byteAt(i)) {
			i++
		}
		hadIntDigits = true
	case json5 && sc.byteAt(i) == '.':
		// leading decimal point; fraction parsing below supplies the digit.
	default:
		return Span{}, newSyntacticError(BadSyntax, start, "expected digit")
	}

	hadFracDigits := 0
	sawDot := false
	if sc.byteAt(i) == '.' {
		sawDot = true
		i++
		fracStart := i
		for isDigit(sc.byteAt(i)) {
			i++
		}
		hadFracDigits = i - fracStart
		if !json5 && hadFracDigits == 0 {
			return Span{}, newSyntacticError(BadSyntax, start, "expected digit after decimal point")
		}
	}
	if !hadIntDigits && (!sawDot || hadFracDigits == 0) {
		return Span{}, newSyntacticError(BadSyntax, start, "expected digit")
	}

	if b := sc.byteAt(i); b == 'e' || b == 'E' {
		i++
		if b2 := sc.byteAt(i); b2 == '+' || b2 == '-' {
			i++
		}
		expStart := i
		for isDigit(sc.byteAt(i)) {
			i++
		}
		if i == expStart {
			return Span{}, newSyntacticError(BadSyntax, start, "expected digit in exponent")
		}
	}

	return Span{Offset: start, Length: i - start}, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// byteAt returns the byte at absolute offset off, or 0 if off is out of
// range. It is only safe to use where the grammar only cares about
// single-byte ASCII punctuation and digits, which is everywhere in the
// number grammar.
func (sc *Scanner) byteAt(off int) byte {
	if off < 0 || off >= len(sc.src) {
		return 0
	}
	return sc.src[off]
}

func (sc *Scanner) literalAt(off int, word string) bool {
	end := off + len(word)
	if end > len(sc.src) {
		return false
	}
	return string(sc.src[off:end]) == word
}
