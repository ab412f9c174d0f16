package scan

// stateTag is one of the resume states the scanner's pushdown automaton
// can leave on top of its stack between Step calls.
type stateTag uint8

const (
	stRoot stateTag = iota
	stFinishedValue
	stArrayEndOrElement
	stFinishedArrayElement
	stObjectKeyOrObjectEnd
	stObjectValue
	stFinishedObjectValue
	stSyntaxError
	stEncodingError
	stNestingError
	stFinished
)

// State is the scanner's entire persistent, resumable state: a cursor,
// the most recently emitted token's kind and span, and a fixed-capacity
// stack of resume tags, one per pending compound context plus one for
// the top-level context at index 0, which always exists so push/pop never
// need a separate empty check. State holds no reference to the source
// buffer or to the Options that produced it, so copying a State by
// assignment is always a complete, independent snapshot that a caller
// can stash and restore later with no aliasing to worry about.
type State struct {
	cursor    int
	lastSpan  Span
	lastKind  Kind
	depth     int
	stack     [MaxDepth + 1]stateTag
	err       *SyntacticError
	sawBOM    bool
}

func newState() State {
	var s State
	s.stack[0] = stRoot
	return s
}

// Cursor returns the byte offset of the next undecoded code unit.
func (s State) Cursor() int { return s.cursor }

// LastSpan returns the span of the most recently emitted token.
func (s State) LastSpan() Span { return s.lastSpan }

// LastKind returns the kind of the most recently emitted token.
func (s State) LastKind() Kind { return s.lastKind }

// StackDepth returns the current nesting depth, in [0, MaxDepth]; it never
// exceeds the Options.MaxDepth the scanner was built with.
func (s State) StackDepth() int { return s.depth }

// Err returns the latched terminal error, or nil if the scanner has not
// entered an absorbing error state.
func (s State) Err() *SyntacticError { return s.err }

func (s *State) top() stateTag { return s.stack[s.depth] }

func (s *State) setTop(tag stateTag) { s.stack[s.depth] = tag }

// push sets the current frame to finishedTag (the state to resume into
// once the nested compound closes) and opens a new frame above it with
// openTag. It reports MaximumNesting without mutating state if doing so
// would exceed the effective ceiling.
func (s *State) push(finishedTag, openTag stateTag, ceiling int) bool {
	if s.depth >= ceiling {
		return false
	}
	s.stack[s.depth] = finishedTag
	s.depth++
	s.stack[s.depth] = openTag
	return true
}

// pop closes the current frame and returns control to the frame below.
func (s *State) pop() { s.depth-- }
