package value

import (
	"fmt"

	"github.com/emberjson/emberjson/scan"
)

const errorPrefix = "value: "

// Error matches every error this package returns, per errors.Is, mirroring
// scan.Error's sentinel pattern.
const Error = valueError("value error")

type valueError string

func (e valueError) Error() string { return string(e) }
func (e valueError) Is(target error) bool {
	return e == target || target == Error
}

// ErrType is returned by a Node accessor called against the wrong Kind:
// a typed sentinel rather than a panic for a caller type mismatch.
const ErrType = valueError(errorPrefix + "value is not of the requested type")

// SemanticError reports a failure of the tree builder itself: an
// OutOfMemory from the Allocator, or a Malfunction when the token stream
// breaks one of Parse's invariants. Scanner errors are not wrapped in it;
// Parse returns them verbatim as *scan.SyntacticError. It mirrors
// scan.SyntacticError's shape so a caller can handle both uniformly.
type SemanticError struct {
	Result      scan.Result
	ByteOffset  int
	Description string
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("%s%s (byte offset %d)", errorPrefix, e.Description, e.ByteOffset)
}

func (e *SemanticError) Is(target error) bool { return target == Error }

func outOfMemory(offset int) *SemanticError {
	return &SemanticError{Result: scan.OutOfMemory, ByteOffset: offset, Description: "memory allocation failed"}
}
