package main

import (
	"io"
	"os"
)

// stdin is the source readStdin reads from. Tests swap it for a
// strings.Reader to drive the CLI without touching the process's real
// standard input.
var stdin io.Reader = os.Stdin

// readStdin reads all of stdin, refusing anything past maxInputBytes. It
// reads one byte past the limit to tell a too-large input apart from one
// that exactly fills the cap.
func readStdin() ([]byte, error) {
	limited := io.LimitReader(stdin, maxInputBytes+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, &cliError{code: exitProcessing, format: "reading stdin: %v", args: []any{err}}
	}
	if len(data) > maxInputBytes {
		return nil, &cliError{code: exitProcessing, format: "input exceeds %d byte limit", args: []any{maxInputBytes}}
	}
	return data, nil
}
