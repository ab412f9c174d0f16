package scan

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func drain(t *testing.T, sc *Scanner) ([]Token, Result, error) {
	t.Helper()
	var toks []Token
	for {
		tok, res, err := sc.Step()
		if res != Success {
			return toks, res, err
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, res, nil
		}
	}
}

func tok(k Kind, off, n int) Token { return Token{Kind: k, Span: Span{Offset: off, Length: n}} }

func TestScanner_Scenarios(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		opts    []Option
		want    []Token
		wantRes Result
	}{
		{
			name: "empty object",
			src:  `{}`,
			want: []Token{tok(ObjectBegin, 0, 1), tok(ObjectEnd, 1, 1), tok(EOF, 2, 0)},
		},
		{
			name: "empty array",
			src:  `[]`,
			want: []Token{tok(ArrayBegin, 0, 1), tok(ArrayEnd, 1, 1), tok(EOF, 2, 0)},
		},
		{
			name: "flat array",
			src:  `[1,2,3]`,
			want: []Token{
				tok(ArrayBegin, 0, 1),
				tok(Number, 1, 1),
				tok(Number, 3, 1),
				tok(Number, 5, 1),
				tok(ArrayEnd, 6, 1),
				tok(EOF, 7, 0),
			},
		},
		{
			name: "object with members",
			src:  `{"a":1,"b":true}`,
			want: []Token{
				tok(ObjectBegin, 0, 1),
				tok(ObjectName, 1, 3),
				tok(Number, 5, 1),
				tok(ObjectName, 7, 3),
				tok(True, 11, 4),
				tok(ObjectEnd, 15, 1),
				tok(EOF, 16, 0),
			},
		},
		{
			name: "nested",
			src:  `[[1],{"a":null}]`,
			want: []Token{
				tok(ArrayBegin, 0, 1),
				tok(ArrayBegin, 1, 1),
				tok(Number, 2, 1),
				tok(ArrayEnd, 3, 1),
				tok(ObjectBegin, 5, 1),
				tok(ObjectName, 6, 3),
				tok(Null, 10, 4),
				tok(ObjectEnd, 14, 1),
				tok(ArrayEnd, 15, 1),
				tok(EOF, 16, 0),
			},
		},
		{
			name:    "trailing comma rejected in strict mode",
			src:     `[1,]`,
			want:    []Token{tok(ArrayBegin, 0, 1), tok(Number, 1, 1)},
			wantRes: BadSyntax,
		},
		{
			name: "trailing comma accepted with option",
			src:  `[1,]`,
			opts: []Option{WithTrailingCommas(true)},
			want: []Token{
				tok(ArrayBegin, 0, 1),
				tok(Number, 1, 1),
				tok(ArrayEnd, 3, 1),
				tok(EOF, 4, 0),
			},
		},
		{
			name: "whitespace between tokens",
			src:  "  [ 1 , 2 ]  ",
			want: []Token{
				tok(ArrayBegin, 2, 1),
				tok(Number, 4, 1),
				tok(Number, 8, 1),
				tok(ArrayEnd, 10, 1),
				tok(EOF, 13, 0),
			},
		},
		{
			name:    "bare scalar rejected under RFC4627",
			src:     `5`,
			opts:    []Option{WithDialect(RFC4627)},
			want:    nil,
			wantRes: BadSyntax,
		},
		{
			name: "bare scalar accepted under RFC8259",
			src:  `5`,
			want: []Token{tok(Number, 0, 1), tok(EOF, 1, 0)},
		},
		{
			name:    "trailing garbage after root value",
			src:     `1 2`,
			want:    []Token{tok(Number, 0, 1)},
			wantRes: BadSyntax,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sc := NewScanner([]byte(tc.src), tc.opts...)
			got, res, err := drain(t, sc)
			wantRes := tc.wantRes
			if wantRes == Success && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res != wantRes {
				t.Fatalf("result = %v, want %v (err=%v)", res, wantRes, err)
			}
			if diff := cmp.Diff(tc.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScanner_MaximumNesting(t *testing.T) {
	src := ""
	for i := 0; i < 16; i++ {
		src += "["
	}
	sc := NewScanner([]byte(src), WithMaxDepth(16))
	for i := 0; i < 16; i++ {
		_, res, err := sc.Step()
		if res != Success {
			t.Fatalf("token %d: result = %v, err = %v", i, res, err)
		}
	}
	if sc.StackDepth() != 16 {
		t.Fatalf("StackDepth() = %d, want 16", sc.StackDepth())
	}

	src2 := ""
	for i := 0; i < 17; i++ {
		src2 += "["
	}
	sc2 := NewScanner([]byte(src2), WithMaxDepth(16))
	var last Result
	var lastErr error
	for i := 0; i < 17; i++ {
		_, last, lastErr = sc2.Step()
		if last != Success {
			break
		}
	}
	if last != MaximumNesting {
		t.Fatalf("result = %v, want MaximumNesting (err=%v)", last, lastErr)
	}
	serr, ok := lastErr.(*SyntacticError)
	if !ok {
		t.Fatalf("error type = %T, want *SyntacticError", lastErr)
	}
	if serr.ByteOffset != 16 {
		t.Errorf("ByteOffset = %d, want 16", serr.ByteOffset)
	}
}

func TestScanner_AbsorbingErrorState(t *testing.T) {
	sc := NewScanner([]byte(`[1,]`))
	for i := 0; i < 2; i++ {
		if _, res, _ := sc.Step(); res != Success {
			t.Fatalf("setup step %d failed: %v", i, res)
		}
	}
	_, res1, err1 := sc.Step()
	if res1 != BadSyntax {
		t.Fatalf("result = %v, want BadSyntax", res1)
	}
	_, res2, err2 := sc.Step()
	if res2 != res1 || err2.Error() != err1.Error() {
		t.Fatalf("absorbing state did not repeat: (%v,%v) vs (%v,%v)", res1, err1, res2, err2)
	}
}

func TestScanner_SnapshotRestore(t *testing.T) {
	src := []byte(`[1,2,3]`)
	sc := NewScanner(src)
	sc.Step() // ArrayBegin
	sc.Step() // 1
	snap := sc.State()

	rest1, _, _ := drain(t, sc)

	sc2 := NewScanner(src)
	sc2.Restore(snap)
	rest2, _, _ := drain(t, sc2)

	if diff := cmp.Diff(rest1, rest2); diff != "" {
		t.Errorf("restored scanner diverged (-direct +restored):\n%s", diff)
	}
}

func TestScanner_JSON5(t *testing.T) {
	src := `{
		// a comment
		unquoted: 'single quoted',
		trailing: 1,
	}`
	sc := NewScanner([]byte(src), WithDialect(JSON5))
	toks, res, err := drain(t, sc)
	if res != Success {
		t.Fatalf("result = %v, err = %v", res, err)
	}
	if toks[0].Kind != ObjectBegin {
		t.Fatalf("first token = %v, want ObjectBegin", toks[0].Kind)
	}
	last := toks[len(toks)-1]
	if last.Kind != EOF {
		t.Fatalf("last token = %v, want EOF", last.Kind)
	}
}

func TestScanner_IllegalByteSequence(t *testing.T) {
	src := []byte{'"', 0xFF, '"'}
	sc := NewScanner(src)
	_, res, err := sc.Step()
	if res != IllegalByteSequence {
		t.Fatalf("result = %v, want IllegalByteSequence (err=%v)", res, err)
	}
}

func TestScanner_UnmatchedSurrogate(t *testing.T) {
	sc := NewScanner([]byte(`"\uD800"`))
	_, res, _ := sc.Step()
	if res != BadSyntax {
		t.Fatalf("result = %v, want BadSyntax for unmatched surrogate", res)
	}
}

func TestStringify(t *testing.T) {
	src := []byte(`"hello\nworld!"`)
	lexeme := Span{Offset: 0, Length: len(src)}
	n, err := Stringify(src, lexeme, nil)
	if err != nil {
		t.Fatalf("measuring pass failed: %v", err)
	}
	out := make([]byte, n)
	written, err := Stringify(src, lexeme, out)
	if err != nil {
		t.Fatalf("fill pass failed: %v", err)
	}
	if got := string(out[:written]); got != "hello\nworld!" {
		t.Errorf("decoded = %q, want %q", got, "hello\nworld!")
	}
}

func TestStringify_NoBufferSpace(t *testing.T) {
	src := []byte(`"hello"`)
	lexeme := Span{Offset: 0, Length: len(src)}
	_, err := Stringify(src, lexeme, make([]byte, 1))
	serr, ok := err.(*SyntacticError)
	if !ok || serr.Result != NoBufferSpace {
		t.Fatalf("err = %v, want NoBufferSpace", err)
	}
}

func TestNumberify(t *testing.T) {
	cases := map[string]float64{
		"1":      1,
		"-1":     -1,
		"1.5":    1.5,
		"1e10":   1e10,
		"-1.5e-3": -1.5e-3,
	}
	for text, want := range cases {
		src := []byte(text)
		got, err := Numberify(src, Span{Offset: 0, Length: len(src)})
		if err != nil {
			t.Fatalf("Numberify(%q) error: %v", text, err)
		}
		if got != want {
			t.Errorf("Numberify(%q) = %v, want %v", text, got, want)
		}
	}
}

func TestNumberify_JSON5HexAndSpecials(t *testing.T) {
	big := []byte("0x1A")
	got, err := Numberify(big, Span{Offset: 0, Length: len(big)})
	if err != nil || got != 26 {
		t.Fatalf("Numberify(0x1A) = %v, %v, want 26, nil", got, err)
	}
	nan := []byte("NaN")
	gotNaN, err := Numberify(nan, Span{Offset: 0, Length: len(nan)})
	if err != nil || gotNaN == gotNaN {
		t.Fatalf("Numberify(NaN) = %v, %v, want NaN, nil", gotNaN, err)
	}
}
