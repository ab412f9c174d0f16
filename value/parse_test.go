package value

import (
	"testing"

	"github.com/emberjson/emberjson/scan"
)

func TestParse_FlatArray(t *testing.T) {
	src := []byte(`[1,2,3]`)
	root, err := Parse(src, GCAllocator{})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if root.Kind() != KindArray {
		t.Fatalf("root kind = %v, want array", root.Kind())
	}
	n, err := root.Length()
	if err != nil || n != 3 {
		t.Fatalf("Length() = %d, %v, want 3, nil", n, err)
	}
	child, _ := root.FirstChild()
	var got []string
	for c := child; c != nil; c = c.NextSibling() {
		got = append(got, string(c.Span().Slice(src)))
	}
	want := []string{"1", "2", "3"}
	if len(got) != len(want) {
		t.Fatalf("children = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("child %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParse_ObjectMembers(t *testing.T) {
	src := []byte(`{"a":1,"b":[true,null]}`)
	root, err := Parse(src, GCAllocator{})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if root.Kind() != KindObject {
		t.Fatalf("root kind = %v, want object", root.Kind())
	}
	member, err := root.FirstMember()
	if err != nil {
		t.Fatalf("FirstMember error: %v", err)
	}
	var names []string
	for m := member; m != nil; m = m.NextMember() {
		names = append(names, string(m.NameSpan().Slice(src)))
	}
	want := []string{`"a"`, `"b"`}
	if len(names) != len(want) || names[0] != want[0] || names[1] != want[1] {
		t.Fatalf("member names = %v, want %v", names, want)
	}
	bNode := member.NextMember().Value()
	if bNode.Kind() != KindArray {
		t.Fatalf("b kind = %v, want array", bNode.Kind())
	}
	count, _ := bNode.Length()
	if count != 2 {
		t.Fatalf("b length = %d, want 2", count)
	}
}

func TestParse_DuplicateNamesPreserved(t *testing.T) {
	src := []byte(`{"a":1,"a":2}`)
	root, err := Parse(src, GCAllocator{})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	n, _ := root.Length()
	if n != 2 {
		t.Fatalf("Length() = %d, want 2 (duplicates preserved)", n)
	}
}

func TestParse_ScannerErrorSurfacedVerbatim(t *testing.T) {
	root, err := Parse([]byte(`[1,]`), GCAllocator{})
	if root != nil {
		t.Fatalf("root = %v, want nil on failure", root)
	}
	serr, ok := err.(*scan.SyntacticError)
	if !ok {
		t.Fatalf("error type = %T, want *scan.SyntacticError", err)
	}
	if serr.Result != scan.BadSyntax {
		t.Errorf("Result = %v, want BadSyntax", serr.Result)
	}
}

func TestParse_OutOfMemory(t *testing.T) {
	arena := NewArenaAllocator(2, 0) // root array + one element, then exhausted
	root, err := Parse([]byte(`[1,2,3]`), arena)
	if root != nil {
		t.Fatalf("root = %v, want nil on OOM", root)
	}
	serr, ok := err.(*SemanticError)
	if !ok {
		t.Fatalf("error type = %T, want *SemanticError", err)
	}
	if serr.Result != scan.OutOfMemory {
		t.Errorf("Result = %v, want OutOfMemory", serr.Result)
	}
}

func TestParse_SpanCoversWholeValue(t *testing.T) {
	src := []byte(`  [1, 2]  `)
	root, err := Parse(src, GCAllocator{})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	span := root.Span()
	if got := string(span.Slice(src)); got != "[1, 2]" {
		t.Errorf("root span = %q, want %q", got, "[1, 2]")
	}
}

func TestParse_PoolAllocatorRoundTrip(t *testing.T) {
	pool := NewPoolAllocator()
	root, err := Parse([]byte(`{"x":[1,2,{"y":true}]}`), pool)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	Free(root, pool)
}

func TestFree_NilRootIsNoop(t *testing.T) {
	Free(nil, GCAllocator{})
}
