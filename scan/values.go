package scan

import "github.com/emberjson/emberjson/scan/internal/idclass"

// scanValue scans exactly one value at the cursor — a leaf token, or a
// compound opener — and, for compound openers, pushes a new resume frame
// so the caller's next Step call lands in the right context. finishedTag
// is the frame this call's container should resume into once the value
// (and everything nested inside it, if any) is complete.
func (sc *Scanner) scanValue(finishedTag stateTag) (Token, Result, error) {
	r, size, ok, serr := sc.peek()
	if serr != nil {
		return sc.fail(serr)
	}
	if !ok {
		return sc.fail(newSyntacticError(BadSyntax, sc.state.cursor, "expected value"))
	}
	switch {
	case r == '[':
		sc.state.setTop(finishedTag)
		if !sc.state.push(finishedTag, stArrayEndOrElement, sc.opts.MaxDepth) {
			return sc.fail(newSyntacticError(MaximumNesting, sc.state.cursor, "maximum nesting exceeded"))
		}
		return sc.emit(ArrayBegin, Span{Offset: sc.state.cursor, Length: size}), Success, nil
	case r == '{':
		sc.state.setTop(finishedTag)
		if !sc.state.push(finishedTag, stObjectKeyOrObjectEnd, sc.opts.MaxDepth) {
			return sc.fail(newSyntacticError(MaximumNesting, sc.state.cursor, "maximum nesting exceeded"))
		}
		return sc.emit(ObjectBegin, Span{Offset: sc.state.cursor, Length: size}), Success, nil
	case r == '"':
		span, serr := sc.scanString('"')
		if serr != nil {
			return sc.fail(serr)
		}
		sc.state.setTop(finishedTag)
		return sc.emit(String, span), Success, nil
	case r == '\'' && sc.opts.Dialect == JSON5:
		span, serr := sc.scanString('\'')
		if serr != nil {
			return sc.fail(serr)
		}
		sc.state.setTop(finishedTag)
		return sc.emit(String, span), Success, nil
	case r == 't':
		return sc.scanKeywordValue("true", True, finishedTag)
	case r == 'f':
		return sc.scanKeywordValue("false", False, finishedTag)
	case r == 'n':
		return sc.scanKeywordValue("null", Null, finishedTag)
	case isNumberStart(r, sc.opts.Dialect == JSON5):
		span, serr := sc.scanNumber()
		if serr != nil {
			return sc.fail(serr)
		}
		sc.state.setTop(finishedTag)
		return sc.emit(Number, span), Success, nil
	default:
		return sc.fail(newSyntacticError(BadSyntax, sc.state.cursor, "expected value"))
	}
}

func isNumberStart(r rune, json5 bool) bool {
	if r == '-' || (r >= '0' && r <= '9') {
		return true
	}
	if !json5 {
		return false
	}
	return r == '+' || r == '.' || r == 'N' || r == 'I'
}

// scanKeywordValue matches a literal ASCII keyword such as "true" at the
// cursor. A following identifier character turns a near-miss like
// "trueish" into a syntax error instead of silently matching "true" and
// leaving "ish" to confuse whatever state comes next.
func (sc *Scanner) scanKeywordValue(word string, kind Kind, finishedTag stateTag) (Token, Result, error) {
	start := sc.state.cursor
	if !sc.matchLiteral(word) {
		return sc.fail(newSyntacticError(BadSyntax, start, "invalid literal"))
	}
	end := start + len(word)
	if r, _, ok, serr := sc.peekAt(end); serr != nil {
		return sc.fail(serr)
	} else if ok && idclass.IsIdentifierContinue(r) {
		return sc.fail(newSyntacticError(BadSyntax, start, "invalid literal"))
	}
	sc.state.setTop(finishedTag)
	return sc.emit(kind, Span{Offset: start, Length: len(word)}), Success, nil
}

// matchLiteral reports whether the ASCII bytes of word appear at the
// cursor, without consuming them.
func (sc *Scanner) matchLiteral(word string) bool {
	end := sc.state.cursor + len(word)
	if end > len(sc.src) {
		return false
	}
	return string(sc.src[sc.state.cursor:end]) == word
}

func (sc *Scanner) peekAt(off int) (r rune, size int, ok bool, serr *SyntacticError) {
	r, size, serr = sc.decodeAt(off)
	if serr != nil {
		return 0, 0, false, serr
	}
	if size == 0 {
		return 0, 0, false, nil
	}
	return r, size, true, nil
}
