package main

import (
	"bytes"
	"strings"
	"testing"
)

// runCLI drives run() with in substituted for stdin and returns the exit
// code together with whatever "format" wrote to stdout.
func runCLI(t *testing.T, args []string, in string) (int, string) {
	t.Helper()
	oldStdin, oldStdout := stdin, stdout
	defer func() { stdin, stdout = oldStdin, oldStdout }()

	stdin = strings.NewReader(in)
	var out bytes.Buffer
	stdout = &out
	return run(args), out.String()
}

func TestValidate_WellFormed(t *testing.T) {
	code, _ := runCLI(t, []string{"validate"}, `{"a": [1, 2, 3]}`)
	if code != exitSuccess {
		t.Fatalf("exit code = %d, want %d", code, exitSuccess)
	}
}

func TestValidate_Malformed(t *testing.T) {
	code, _ := runCLI(t, []string{"validate"}, `{"a": }`)
	if code != exitMalformedJSON {
		t.Fatalf("exit code = %d, want %d", code, exitMalformedJSON)
	}
}

func TestValidate_RejectsJSON5ByDefault(t *testing.T) {
	code, _ := runCLI(t, []string{"validate"}, "{a: 1}")
	if code != exitMalformedJSON {
		t.Fatalf("exit code = %d, want %d", code, exitMalformedJSON)
	}
}

func TestValidate_JSON5Dialect(t *testing.T) {
	code, _ := runCLI(t, []string{"validate", "--dialect=json5"}, "{a: 1, b: [1, 2,],}")
	if code != exitSuccess {
		t.Fatalf("exit code = %d, want %d", code, exitSuccess)
	}
}

func TestValidate_UnknownDialect(t *testing.T) {
	code, _ := runCLI(t, []string{"validate", "--dialect=bogus"}, "{}")
	if code != exitBadOption {
		t.Fatalf("exit code = %d, want %d", code, exitBadOption)
	}
}

func TestValidate_MaxDepthExceeded(t *testing.T) {
	code, _ := runCLI(t, []string{"validate", "--max-depth=2"}, "[[[1]]]")
	if code != exitMalformedJSON {
		t.Fatalf("exit code = %d, want %d", code, exitMalformedJSON)
	}
}

func TestFormat_Indents(t *testing.T) {
	code, out := runCLI(t, []string{"format", "--indent=2"}, `{"a":[1,2]}`)
	if code != exitSuccess {
		t.Fatalf("exit code = %d, want %d", code, exitSuccess)
	}
	want := "{\n  \"a\": [\n    1,\n    2\n  ]\n}\n"
	if out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
}

func TestFormat_NormalizesJSON5Input(t *testing.T) {
	code, out := runCLI(t, []string{"format", "--dialect=json5", "--indent=0"}, "{a: 'hi', n: +1.5}")
	if code != exitSuccess {
		t.Fatalf("exit code = %d, want %d", code, exitSuccess)
	}
	want := `{"a":"hi","n":1.5}`
	if out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
}

func TestFormat_CompactCanonicalizesMemberOrder(t *testing.T) {
	code, out := runCLI(t, []string{"format", "--compact"}, `{"b": 1, "a": 2}`)
	if code != exitSuccess {
		t.Fatalf("exit code = %d, want %d", code, exitSuccess)
	}
	want := `{"a":2,"b":1}`
	if out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
}

func TestFormat_MalformedInput(t *testing.T) {
	code, _ := runCLI(t, []string{"format"}, `[1, 2`)
	if code != exitMalformedJSON {
		t.Fatalf("exit code = %d, want %d", code, exitMalformedJSON)
	}
}

func TestReadStdin_OverLimit(t *testing.T) {
	oldStdin := stdin
	defer func() { stdin = oldStdin }()
	stdin = strings.NewReader(strings.Repeat("a", maxInputBytes+1))
	if _, err := readStdin(); err == nil {
		t.Fatal("expected an over-limit error, got nil")
	}
}
