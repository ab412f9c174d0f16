package value

import "sync"

// PoolAllocator recycles Nodes and Members through sync.Pool instead of
// handing every allocation to the garbage collector, for callers parsing
// many short-lived documents back to back, the same idea a sync.Pool of
// encoder or decoder state applies to buffers instead of tree nodes.
type PoolAllocator struct {
	nodes   sync.Pool
	members sync.Pool
}

// NewPoolAllocator returns a ready-to-use PoolAllocator.
func NewPoolAllocator() *PoolAllocator {
	a := &PoolAllocator{}
	a.nodes.New = func() any { return new(Node) }
	a.members.New = func() any { return new(Member) }
	return a
}

func (a *PoolAllocator) NewNode() *Node { return a.nodes.Get().(*Node) }

func (a *PoolAllocator) NewMember() *Member { return a.members.Get().(*Member) }

func (a *PoolAllocator) ReleaseNode(n *Node) {
	*n = Node{}
	a.nodes.Put(n)
}

func (a *PoolAllocator) ReleaseMember(m *Member) {
	*m = Member{}
	a.members.Put(m)
}
