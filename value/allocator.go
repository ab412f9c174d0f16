package value

// Allocator is the boundary contract between the tree builder and the
// caller's memory management. It is split into typed allocate and release
// methods, one pair for Nodes and one for Members, which is how a Go allocator boundary is
// normally shaped (compare sync.Pool's Get/Put, which PoolAllocator below
// is built on), rather than a single C-style alloc-or-free function,
// which would need an untyped pointer and buy nothing here since nothing
// needs to alias memory with a non-Go caller.
type Allocator interface {
	// NewNode returns a fresh, zero-valued Node, or nil if the allocator
	// is out of capacity.
	NewNode() *Node
	// NewMember returns a fresh, zero-valued Member, or nil if the
	// allocator is out of capacity.
	NewMember() *Member
	// ReleaseNode returns a Node to the allocator. Implementations backed
	// by the garbage collector may treat this as a no-op; an arena-backed
	// allocator may skip teardown entirely.
	ReleaseNode(*Node)
	// ReleaseMember returns a Member to the allocator.
	ReleaseMember(*Member)
}

// GCAllocator is the default Allocator: every allocation is an ordinary
// Go heap allocation, and release is a no-op left to the garbage
// collector. Use this unless you have a specific reason to bound or pool
// allocations.
type GCAllocator struct{}

func (GCAllocator) NewNode() *Node           { return &Node{} }
func (GCAllocator) NewMember() *Member       { return &Member{} }
func (GCAllocator) ReleaseNode(*Node)        {}
func (GCAllocator) ReleaseMember(*Member)    {}
