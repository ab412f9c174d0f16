package value

import "github.com/emberjson/emberjson/scan"

// frame tracks one open compound while Parse is constructing the tree:
// the compound node itself, and, for an object, the member currently
// waiting for its value token to arrive.
type frame struct {
	node          *Node
	pendingMember *Member
}

// Parse drives a scan.Scanner over src to exhaustion, assembling a Value
// tree with alloc. On success it returns the root, which owns the entire
// graph and should eventually be released with Free. On failure the
// partial graph is torn down and Parse returns a nil root together with
// the scanner's error (surfaced verbatim) or, if alloc ran out of
// capacity, a *SemanticError carrying scan.OutOfMemory.
func Parse(src []byte, alloc Allocator, opts ...scan.Option) (*Node, error) {
	sc := scan.NewScanner(src, opts...)
	var frames [scan.MaxDepth + 1]frame
	depth := 0
	var root *Node

	fail := func(err error) (*Node, error) {
		if root != nil {
			Free(root, alloc)
		}
		return nil, err
	}

	link := func(n *Node, offset int) error {
		if root == nil {
			root = n
			return nil
		}
		top := &frames[depth-1]
		switch top.node.kind {
		case KindArray:
			if top.node.firstChild == nil {
				top.node.firstChild = n
			} else {
				top.node.lastChild.next = n
			}
			top.node.lastChild = n
			top.node.childCount++
			return nil
		case KindObject:
			if top.pendingMember == nil {
				return &SemanticError{Result: scan.Malfunction, ByteOffset: offset, Description: "value with no pending member"}
			}
			top.pendingMember.value = n
			top.pendingMember = nil
			return nil
		default:
			return &SemanticError{Result: scan.Malfunction, ByteOffset: offset, Description: "top frame is not a compound"}
		}
	}

	for {
		tok, res, err := sc.Step()
		if res != scan.Success {
			return fail(err)
		}
		switch tok.Kind {
		case scan.ArrayBegin, scan.ObjectBegin:
			n := alloc.NewNode()
			if n == nil {
				return fail(outOfMemory(tok.Span.Offset))
			}
			if tok.Kind == scan.ArrayBegin {
				n.kind = KindArray
			} else {
				n.kind = KindObject
			}
			n.span = scan.Span{Offset: tok.Span.Offset}
			if lerr := link(n, tok.Span.Offset); lerr != nil {
				return fail(lerr)
			}
			frames[depth] = frame{node: n}
			depth++
		case scan.ArrayEnd, scan.ObjectEnd:
			top := &frames[depth-1]
			top.node.span.Length = tok.Span.End() - top.node.span.Offset
			depth--
		case scan.ObjectName:
			m := alloc.NewMember()
			if m == nil {
				return fail(outOfMemory(tok.Span.Offset))
			}
			m.name = tok.Span
			top := &frames[depth-1]
			if top.node.firstMember == nil {
				top.node.firstMember = m
			} else {
				top.node.lastMember.next = m
			}
			top.node.lastMember = m
			top.node.memberCount++
			top.pendingMember = m
		case scan.Null, scan.True, scan.False, scan.Number, scan.String:
			n := alloc.NewNode()
			if n == nil {
				return fail(outOfMemory(tok.Span.Offset))
			}
			n.span = tok.Span
			switch tok.Kind {
			case scan.Null:
				n.kind = KindNull
			case scan.True:
				n.kind, n.boolVal = KindBool, true
			case scan.False:
				n.kind, n.boolVal = KindBool, false
			case scan.Number:
				n.kind = KindNumber
			case scan.String:
				n.kind = KindString
			}
			if lerr := link(n, tok.Span.Offset); lerr != nil {
				return fail(lerr)
			}
		case scan.EOF:
			return root, nil
		}
	}
}
