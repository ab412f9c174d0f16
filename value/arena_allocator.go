package value

// ArenaAllocator allocates Nodes and Members from two fixed-capacity
// slices and never releases them individually: a caller that knows a
// document's whole arena can be discarded at once, rather than walked
// and freed record by record, can skip Free entirely and just drop the
// allocator. It exhausts and returns nil once its capacity is used up,
// which is the path that exercises Parse's OutOfMemory handling;
// GCAllocator and PoolAllocator, backed by Go's heap, realistically never
// fail that way.
type ArenaAllocator struct {
	nodes   []Node
	members []Member
	nUsed   int
	mUsed   int
}

// NewArenaAllocator returns an ArenaAllocator that can hand out up to
// maxNodes Nodes and maxMembers Members before failing allocations.
func NewArenaAllocator(maxNodes, maxMembers int) *ArenaAllocator {
	return &ArenaAllocator{
		nodes:   make([]Node, maxNodes),
		members: make([]Member, maxMembers),
	}
}

func (a *ArenaAllocator) NewNode() *Node {
	if a.nUsed >= len(a.nodes) {
		return nil
	}
	n := &a.nodes[a.nUsed]
	a.nUsed++
	return n
}

func (a *ArenaAllocator) NewMember() *Member {
	if a.mUsed >= len(a.members) {
		return nil
	}
	m := &a.members[a.mUsed]
	a.mUsed++
	return m
}

func (a *ArenaAllocator) ReleaseNode(*Node)     {}
func (a *ArenaAllocator) ReleaseMember(*Member) {}
