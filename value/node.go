package value

import "github.com/emberjson/emberjson/scan"

// Kind identifies the shape of a Node, a closed sum type rendered as a
// tagged byte the way scan.Kind is: plain data with no indirection, easy
// to switch on, cheap to compare.
type Kind byte

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "kind(?)"
	}
}

// Node is one value in the parsed tree. Numbers and strings are stored
// only as source spans; call scan.Numberify/scan.Stringify against the
// original source buffer to decode them. A Node owns its descendants
// exclusively — there is exactly one path to any Node from the tree
// root — so the graph is acyclic by construction.
type Node struct {
	kind Kind
	span scan.Span
	boolVal bool

	firstChild *Node // array elements, head
	lastChild  *Node // array elements, tail (O(1) append)
	childCount int

	firstMember *Member
	lastMember  *Member
	memberCount int

	next *Node // this node's next sibling, when it is an array element
}

// Kind reports the value's type.
func (n *Node) Kind() Kind { return n.kind }

// Span reports the byte span of this value's entire lexeme, including
// nested content for arrays and objects.
func (n *Node) Span() scan.Span { return n.span }

// Bool returns the node's boolean value. It returns ErrType if the node
// is not KindBool.
func (n *Node) Bool() (bool, error) {
	if n.kind != KindBool {
		return false, ErrType
	}
	return n.boolVal, nil
}

// Length returns the number of elements (KindArray) or members
// (KindObject) directly under this node. It returns ErrType for any
// other kind.
func (n *Node) Length() (int, error) {
	switch n.kind {
	case KindArray:
		return n.childCount, nil
	case KindObject:
		return n.memberCount, nil
	default:
		return 0, ErrType
	}
}

// FirstChild returns the first array element, or nil if the array is
// empty. It returns ErrType if the node is not KindArray.
func (n *Node) FirstChild() (*Node, error) {
	if n.kind != KindArray {
		return nil, ErrType
	}
	return n.firstChild, nil
}

// NextSibling returns the array element following n, or nil if n is the
// last element. n must itself be an array element (not the array node).
func (n *Node) NextSibling() *Node { return n.next }

// FirstMember returns the first object member, or nil if the object has
// none. It returns ErrType if the node is not KindObject.
func (n *Node) FirstMember() (*Member, error) {
	if n.kind != KindObject {
		return nil, ErrType
	}
	return n.firstMember, nil
}

// Member is one name/value pair of an object, in insertion order.
// Duplicate names are preserved verbatim; this package never deduplicates
// or rejects them.
type Member struct {
	name  scan.Span
	value *Node
	next  *Member
}

// NameSpan returns the span of the member's name lexeme (as emitted by
// the scanner: including quotes for a quoted name, bare for a JSON5
// unquoted identifier).
func (m *Member) NameSpan() scan.Span { return m.name }

// Value returns the member's value node.
func (m *Member) Value() *Node { return m.value }

// NextMember returns the next member in the enclosing object, or nil if
// m is the last one.
func (m *Member) NextMember() *Member { return m.next }
