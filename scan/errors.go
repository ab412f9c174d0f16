package scan

import (
	"errors"
	"fmt"
)

const errorPrefix = "scan: "

// Error matches every error this package returns, per errors.Is.
const Error = scanError("scan error")

type scanError string

func (e scanError) Error() string { return string(e) }
func (e scanError) Is(target error) bool {
	return e == target || target == Error
}

// Result classifies the outcome of a Step call or of a decoding helper
// (Stringify, Numberify, NumberifyBig). Step reports Success for every
// token, including the EOF token it repeats once input is exhausted; any
// other result from Step on a scanner built by NewScanner latches it into
// an absorbing error state that re-reports that result on every later call.
type Result int

const (
	Success Result = iota
	BadSyntax
	NoBufferSpace
	IllegalByteSequence
	OutOfRange
	InvalidOperation
	MaximumNesting
	OutOfMemory
	InputTooLarge
	Malfunction
)

func (r Result) String() string {
	switch r {
	case Success:
		return "success"
	case BadSyntax:
		return "bad syntax"
	case NoBufferSpace:
		return "no buffer space"
	case IllegalByteSequence:
		return "illegal byte sequence"
	case OutOfRange:
		return "out of range"
	case InvalidOperation:
		return "invalid operation"
	case MaximumNesting:
		return "maximum nesting"
	case OutOfMemory:
		return "out of memory"
	case InputTooLarge:
		return "input too large"
	case Malfunction:
		return "malfunction"
	default:
		return fmt.Sprintf("result(%d)", int(r))
	}
}

// maxDescriptionLen keeps a SyntacticError's description short enough to
// copy into a fixed-size buffer without truncation surprises, matching
// the sizing a caller embedding this scanner in a constrained environment
// would need to budget for.
const maxDescriptionLen = 35

func truncateDescription(s string) string {
	if len(s) <= maxDescriptionLen {
		return s
	}
	return s[:maxDescriptionLen]
}

// SyntacticError reports a terminal scanning failure: a Result other than
// Success together with the byte offset where the scanner gave up and a
// short human-readable description. It is the error surfaced through
// Scanner.Step, and, unmodified, through the tree builder.
type SyntacticError struct {
	Result      Result
	ByteOffset  int
	Description string
}

func newSyntacticError(result Result, offset int, description string) *SyntacticError {
	return &SyntacticError{
		Result:      result,
		ByteOffset:  offset,
		Description: truncateDescription(description),
	}
}

func (e *SyntacticError) Error() string {
	return errorPrefix + e.Description + fmt.Sprintf(" (byte offset %d)", e.ByteOffset)
}

func (e *SyntacticError) Is(target error) bool {
	return target == Error
}

// malfunction reports a defensive invariant violation: a bug in this
// package, not in the caller's input. It must never surface outside of
// a test.
func malfunction(offset int, why string) *SyntacticError {
	return newSyntacticError(Malfunction, offset, why)
}

// invalidOperation reports caller misuse (null buffer, negative length,
// and similar API errors) that does not mutate scanner state.
func invalidOperation(why string) error {
	return fmt.Errorf("%s%s: %w", errorPrefix, why, Error)
}

var errScannerNotInitialized = errors.New(errorPrefix + "scanner used before NewScanner")
