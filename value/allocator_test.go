package value

import "testing"

func TestArenaAllocator_ExhaustsNodesThenMembers(t *testing.T) {
	a := NewArenaAllocator(1, 1)
	if n := a.NewNode(); n == nil {
		t.Fatal("first NewNode returned nil, want a Node")
	}
	if n := a.NewNode(); n != nil {
		t.Fatal("second NewNode returned non-nil, want exhaustion")
	}
	if m := a.NewMember(); m == nil {
		t.Fatal("first NewMember returned nil, want a Member")
	}
	if m := a.NewMember(); m != nil {
		t.Fatal("second NewMember returned non-nil, want exhaustion")
	}
}

func TestArenaAllocator_ReleaseIsNoop(t *testing.T) {
	a := NewArenaAllocator(1, 0)
	n := a.NewNode()
	a.ReleaseNode(n)
	if got := a.NewNode(); got != nil {
		t.Fatal("NewNode succeeded after exhaustion despite a Release call, want arena to stay exhausted")
	}
}

func TestPoolAllocator_ReleaseClearsBeforeReuse(t *testing.T) {
	pool := NewPoolAllocator()
	n := pool.NewNode()
	n.kind = KindString
	n.boolVal = true
	pool.ReleaseNode(n)

	got := pool.NewNode()
	if got.kind != KindNull || got.boolVal != false {
		t.Fatalf("reused node = %+v, want zero value", got)
	}
}

func TestGCAllocator_NeverFails(t *testing.T) {
	var a GCAllocator
	n := a.NewNode()
	m := a.NewMember()
	if n == nil || m == nil {
		t.Fatal("GCAllocator returned nil, want it to always succeed")
	}
	a.ReleaseNode(n)
	a.ReleaseMember(m)
}
