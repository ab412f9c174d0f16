package scan

import (
	"github.com/emberjson/emberjson/scan/internal/rune8"
)

// scannerMagic is a canary stamped into every Scanner built by NewScanner,
// to catch a scanner used before it was initialized. A nil *Scanner
// already panics on use, so the canary catches the remaining case: a
// Scanner value that never went through NewScanner (such as a declared
// `var sc Scanner`), whose zero magic makes Step report Malfunction.
// Restore replaces only the State and leaves the canary as it is, so a
// zero State{} passed to Restore is not caught here; scanning simply
// restarts at the root.
const scannerMagic = 0x6a53_4e35 // "jSN5"

// Scanner drives the pushdown automaton: each call to Step advances
// through the source buffer until it has produced exactly one semantic
// Token (or latched a terminal error), skipping whitespace and, where
// the dialect allows, comments. A Scanner owns a read-only reference to
// its source buffer and its Options for its entire lifetime; its
// resumable State can be copied out, stashed, and restored independently
// of both.
type Scanner struct {
	src    []byte
	length int // -1 means src is NUL-terminated
	opts   Options
	state  State
	magic  uint32
}

// NewScanner creates a Scanner over src, which must remain valid and
// unmodified for the Scanner's entire lifetime. By default src's logical
// length is len(src); to scan a NUL-terminated buffer instead, apply
// WithNulTerminated.
func NewScanner(src []byte, opts ...Option) *Scanner {
	o := newOptions(opts)
	length := len(src)
	if o.nulTerminated {
		length = -1
	}
	return &Scanner{
		src:    src,
		length: length,
		opts:   o,
		state:  newState(),
		magic:  scannerMagic,
	}
}

// Options returns the configuration this Scanner was constructed with.
func (sc *Scanner) Options() Options { return sc.opts }

// State returns a snapshot of the scanner's resumable state. The
// snapshot is plain data: storing it and later calling Restore
// reproduces the exact remaining token sequence Step would otherwise
// have produced.
func (sc *Scanner) State() State { return sc.state }

// Restore replaces the scanner's resumable state with a previously
// captured snapshot. The source buffer and Options are unaffected.
func (sc *Scanner) Restore(s State) { sc.state = s }

// Clone returns a new Scanner sharing this one's source buffer and
// Options but with an independent copy of its State, useful for a
// speculative parse that might be abandoned.
func (sc *Scanner) Clone() *Scanner {
	cp := *sc
	return &cp
}

// StackDepth reports the current nesting depth.
func (sc *Scanner) StackDepth() int { return sc.state.depth }

// StackKind reports the resume-state tag at depth i as a human-readable
// string, for embedders building their own diagnostics or visualizers.
// Only indexes in [0, StackDepth()] describe live frames; an index above
// StackDepth() but within the fixed capacity [0, MaxDepth] returns a
// stale tag, and an index outside that capacity panics.
func (sc *Scanner) StackKind(i int) string { return sc.state.stack[i].String() }

func (t stateTag) String() string {
	switch t {
	case stRoot:
		return "Root"
	case stFinishedValue:
		return "FinishedValue"
	case stArrayEndOrElement:
		return "ArrayEndOrElement"
	case stFinishedArrayElement:
		return "FinishedArrayElement"
	case stObjectKeyOrObjectEnd:
		return "ObjectKeyOrObjectEnd"
	case stObjectValue:
		return "ObjectValue"
	case stFinishedObjectValue:
		return "FinishedObjectValue"
	case stSyntaxError:
		return "SyntaxError"
	case stEncodingError:
		return "EncodingError"
	case stNestingError:
		return "NestingError"
	case stFinished:
		return "Finished"
	default:
		return "?"
	}
}

// Step advances the scanner until it has produced exactly one semantic
// token, or failed. Once Step returns a result other than Success, every
// subsequent call returns the same result and error without advancing
// the cursor.
func (sc *Scanner) Step() (Token, Result, error) {
	if sc.magic != scannerMagic {
		return Token{}, Malfunction, errScannerNotInitialized
	}
	if sc.state.err != nil {
		return Token{Kind: Invalid, Span: Span{Offset: sc.state.err.ByteOffset}}, sc.state.err.Result, sc.state.err
	}
	switch sc.state.top() {
	case stRoot:
		return sc.stepRoot()
	case stFinishedValue:
		return sc.stepFinishedValue()
	case stArrayEndOrElement:
		return sc.stepArrayEndOrElement()
	case stFinishedArrayElement:
		return sc.stepFinishedArrayElement()
	case stObjectKeyOrObjectEnd:
		return sc.stepObjectKeyOrObjectEnd()
	case stObjectValue:
		return sc.stepObjectValue()
	case stFinishedObjectValue:
		return sc.stepFinishedObjectValue()
	case stFinished:
		return Token{Kind: EOF, Span: Span{Offset: sc.state.cursor}}, Success, nil
	default:
		return sc.fail(malfunction(sc.state.cursor, "corrupt scanner state"))
	}
}

// fail latches err as the scanner's terminal error and returns it.
func (sc *Scanner) fail(err *SyntacticError) (Token, Result, error) {
	sc.state.err = err
	switch err.Result {
	case IllegalByteSequence:
		sc.state.setTop(stEncodingError)
	case MaximumNesting:
		sc.state.setTop(stNestingError)
	default:
		sc.state.setTop(stSyntaxError)
	}
	return Token{Kind: Invalid, Span: Span{Offset: err.ByteOffset}}, err.Result, err
}

func (sc *Scanner) emit(kind Kind, span Span) Token {
	sc.state.cursor = span.End()
	sc.state.lastSpan = span
	sc.state.lastKind = kind
	return Token{Kind: kind, Span: span}
}

// decodeAt decodes the scalar at byte offset off, translating the codec's
// sentinels into this package's Result vocabulary.
func (sc *Scanner) decodeAt(off int) (r rune, size int, serr *SyntacticError) {
	v, n, err := rune8.Decode(sc.src, sc.length, off)
	switch err {
	case nil:
		return v, n, nil
	case rune8.ErrInputTooLarge:
		return 0, 0, newSyntacticError(InputTooLarge, off, "input exceeds size limit")
	default:
		return 0, 0, newSyntacticError(IllegalByteSequence, off, "invalid UTF-8 sequence")
	}
}

// peek decodes the scalar at the cursor without consuming it. ok is
// false at true end of input.
func (sc *Scanner) peek() (r rune, size int, ok bool, serr *SyntacticError) {
	r, size, serr = sc.decodeAt(sc.state.cursor)
	if serr != nil {
		return 0, 0, false, serr
	}
	if size == 0 {
		return 0, 0, false, nil
	}
	return r, size, true, nil
}

func (sc *Scanner) stepRoot() (Token, Result, error) {
	if sc.state.cursor == 0 && !sc.state.sawBOM {
		sc.consumeBOM()
	}
	if serr := sc.skipInsignificant(); serr != nil {
		return sc.fail(serr)
	}
	r, _, ok, serr := sc.peek()
	if serr != nil {
		return sc.fail(serr)
	}
	if !ok {
		return sc.fail(newSyntacticError(BadSyntax, sc.state.cursor, "unexpected end of input"))
	}
	if sc.opts.rootMustBeCompound() && r != '[' && r != '{' {
		return sc.fail(newSyntacticError(BadSyntax, sc.state.cursor, "root value must be object or array"))
	}
	return sc.scanValue(stFinishedValue)
}

// consumeBOM skips a single UTF-8 byte-order mark at offset 0.
func (sc *Scanner) consumeBOM() {
	sc.state.sawBOM = true
	if len(sc.src) >= 3 && sc.src[0] == 0xEF && sc.src[1] == 0xBB && sc.src[2] == 0xBF {
		sc.state.cursor = 3
	}
}

func (sc *Scanner) stepFinishedValue() (Token, Result, error) {
	if serr := sc.skipInsignificant(); serr != nil {
		return sc.fail(serr)
	}
	_, _, ok, serr := sc.peek()
	if serr != nil {
		return sc.fail(serr)
	}
	if ok {
		return sc.fail(newSyntacticError(BadSyntax, sc.state.cursor, "expected EOF"))
	}
	sc.state.setTop(stFinished)
	return sc.emit(EOF, Span{Offset: sc.state.cursor}), Success, nil
}

func (sc *Scanner) stepArrayEndOrElement() (Token, Result, error) {
	if serr := sc.skipInsignificant(); serr != nil {
		return sc.fail(serr)
	}
	r, size, ok, serr := sc.peek()
	if serr != nil {
		return sc.fail(serr)
	}
	if ok && r == ']' {
		tok := sc.emit(ArrayEnd, Span{Offset: sc.state.cursor, Length: size})
		sc.state.pop()
		return tok, Success, nil
	}
	return sc.scanValue(stFinishedArrayElement)
}

func (sc *Scanner) stepFinishedArrayElement() (Token, Result, error) {
	if serr := sc.skipInsignificant(); serr != nil {
		return sc.fail(serr)
	}
	r, size, ok, serr := sc.peek()
	if serr != nil {
		return sc.fail(serr)
	}
	switch {
	case ok && r == ']':
		tok := sc.emit(ArrayEnd, Span{Offset: sc.state.cursor, Length: size})
		sc.state.pop()
		return tok, Success, nil
	case ok && r == ',':
		sc.state.cursor += size
		if serr := sc.skipInsignificant(); serr != nil {
			return sc.fail(serr)
		}
		r2, size2, ok2, serr2 := sc.peek()
		if serr2 != nil {
			return sc.fail(serr2)
		}
		if ok2 && r2 == ']' {
			if !sc.opts.trailingCommasAllowed() {
				return sc.fail(newSyntacticError(BadSyntax, sc.state.cursor, "expected value"))
			}
			tok := sc.emit(ArrayEnd, Span{Offset: sc.state.cursor, Length: size2})
			sc.state.pop()
			return tok, Success, nil
		}
		return sc.scanValue(stFinishedArrayElement)
	default:
		return sc.fail(newSyntacticError(BadSyntax, sc.state.cursor, "expected ',' or ']'"))
	}
}

func (sc *Scanner) stepObjectKeyOrObjectEnd() (Token, Result, error) {
	if serr := sc.skipInsignificant(); serr != nil {
		return sc.fail(serr)
	}
	r, size, ok, serr := sc.peek()
	if serr != nil {
		return sc.fail(serr)
	}
	if ok && r == '}' {
		tok := sc.emit(ObjectEnd, Span{Offset: sc.state.cursor, Length: size})
		sc.state.pop()
		return tok, Success, nil
	}
	return sc.scanObjectNameToken()
}

func (sc *Scanner) stepFinishedObjectValue() (Token, Result, error) {
	if serr := sc.skipInsignificant(); serr != nil {
		return sc.fail(serr)
	}
	r, size, ok, serr := sc.peek()
	if serr != nil {
		return sc.fail(serr)
	}
	switch {
	case ok && r == '}':
		tok := sc.emit(ObjectEnd, Span{Offset: sc.state.cursor, Length: size})
		sc.state.pop()
		return tok, Success, nil
	case ok && r == ',':
		sc.state.cursor += size
		if serr := sc.skipInsignificant(); serr != nil {
			return sc.fail(serr)
		}
		r2, size2, ok2, serr2 := sc.peek()
		if serr2 != nil {
			return sc.fail(serr2)
		}
		if ok2 && r2 == '}' {
			if !sc.opts.trailingCommasAllowed() {
				return sc.fail(newSyntacticError(BadSyntax, sc.state.cursor, "expected string"))
			}
			tok := sc.emit(ObjectEnd, Span{Offset: sc.state.cursor, Length: size2})
			sc.state.pop()
			return tok, Success, nil
		}
		return sc.scanObjectNameToken()
	default:
		return sc.fail(newSyntacticError(BadSyntax, sc.state.cursor, "expected ',' or '}'"))
	}
}

func (sc *Scanner) stepObjectValue() (Token, Result, error) {
	if serr := sc.skipInsignificant(); serr != nil {
		return sc.fail(serr)
	}
	r, size, ok, serr := sc.peek()
	if serr != nil {
		return sc.fail(serr)
	}
	if !ok || r != ':' {
		return sc.fail(newSyntacticError(BadSyntax, sc.state.cursor, "expected ':' after object name"))
	}
	sc.state.cursor += size
	if serr := sc.skipInsignificant(); serr != nil {
		return sc.fail(serr)
	}
	return sc.scanValue(stFinishedObjectValue)
}

// scanObjectNameToken scans an object member name (string, or in JSON5 an
// unquoted identifier) and emits it as an ObjectName token.
func (sc *Scanner) scanObjectNameToken() (Token, Result, error) {
	span, serr := sc.scanNameLexeme()
	if serr != nil {
		return sc.fail(serr)
	}
	sc.state.setTop(stObjectValue)
	return sc.emit(ObjectName, span), Success, nil
}
