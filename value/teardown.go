package value

// Free tears down the tree rooted at root without recursion, releasing
// every Node and Member back to alloc. It is safe to call with a nil
// root. If alloc is an arena-style allocator that never frees individual
// records, ReleaseNode/ReleaseMember may be no-ops and this is just a
// traversal.
//
// The work stack here is an ordinary growable Go slice rather than a
// fixed-capacity array: unlike scan.State, nothing ever snapshots or
// memcpys this stack, so there is no reason to give up Go's native
// growable slice for a hand-sized array the way the scanner's resume
// stack needs to.
func Free(root *Node, alloc Allocator) {
	if root == nil {
		return
	}
	stack := make([]*Node, 0, 16)
	stack = append(stack, root)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch n.kind {
		case KindArray:
			for c := n.firstChild; c != nil; {
				next := c.next
				stack = append(stack, c)
				c = next
			}
		case KindObject:
			for m := n.firstMember; m != nil; {
				next := m.next
				if m.value != nil {
					stack = append(stack, m.value)
				}
				alloc.ReleaseMember(m)
				m = next
			}
		}
		alloc.ReleaseNode(n)
	}
}
