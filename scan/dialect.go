package scan

// Dialect selects the JSON grammar variant a Scanner accepts. It is
// configured through functional Options rather than compile-time flags,
// and is fixed once at NewScanner and never mutated afterward.
type Dialect int

const (
	// RFC4627 requires the root value to be an array or object.
	RFC4627 Dialect = iota
	// RFC8259 allows any value at the root.
	RFC8259
	// JSON5 allows any value at the root and implies Comments and
	// TrailingCommas.
	JSON5
)

func (d Dialect) String() string {
	switch d {
	case RFC4627:
		return "rfc4627"
	case RFC8259:
		return "rfc8259"
	case JSON5:
		return "json5"
	default:
		return "dialect(?)"
	}
}

// DefaultMaxDepth is the nesting ceiling a Scanner uses unless overridden
// with WithMaxDepth.
const DefaultMaxDepth = 16

// MaxDepth is the hard, compile-time array capacity backing every
// Scanner's state stack. An Options.MaxDepth narrows the effective
// ceiling but can never exceed it.
const MaxDepth = 64

// Options configures a Scanner. The zero value is not valid; construct
// one by passing Option values to NewScanner, and read it back with
// Scanner.Options.
type Options struct {
	Dialect        Dialect
	Comments       bool
	TrailingCommas bool
	MaxDepth       int
	nulTerminated  bool
}

// Option mutates an Options value during construction.
type Option func(*Options)

// WithDialect selects the grammar. JSON5 implies comments and trailing
// commas regardless of whether WithComments/WithTrailingCommas were also
// given.
func WithDialect(d Dialect) Option {
	return func(o *Options) { o.Dialect = d }
}

// WithComments enables "// " and "/* */" comments outside of JSON5.
func WithComments(enabled bool) Option {
	return func(o *Options) { o.Comments = enabled }
}

// WithTrailingCommas permits a trailing comma before ']' or '}' outside
// of JSON5.
func WithTrailingCommas(enabled bool) Option {
	return func(o *Options) { o.TrailingCommas = enabled }
}

// WithMaxDepth overrides the default nesting ceiling. Values outside
// [1, MaxDepth] are clamped into range.
func WithMaxDepth(n int) Option {
	return func(o *Options) { o.MaxDepth = n }
}

// WithNulTerminated tells the scanner that src has no reliable length and
// ends at the first NUL byte. Most Go callers should not need this; it
// exists so a span of memory obtained from cgo or a syscall without a
// trustworthy length can still be scanned safely.
func WithNulTerminated(enabled bool) Option {
	return func(o *Options) { o.nulTerminated = enabled }
}

func newOptions(opts []Option) Options {
	o := Options{Dialect: RFC8259, MaxDepth: DefaultMaxDepth}
	for _, apply := range opts {
		apply(&o)
	}
	if o.Dialect == JSON5 {
		o.Comments = true
		o.TrailingCommas = true
	}
	if o.MaxDepth < 1 {
		o.MaxDepth = 1
	}
	if o.MaxDepth > MaxDepth {
		o.MaxDepth = MaxDepth
	}
	return o
}

// commentsAllowed reports whether line and block comments are recognized.
func (o Options) commentsAllowed() bool { return o.Comments || o.Dialect == JSON5 }

// trailingCommasAllowed reports whether a trailing comma may precede a
// closing ']' or '}'.
func (o Options) trailingCommasAllowed() bool { return o.TrailingCommas || o.Dialect == JSON5 }

// rootMustBeCompound reports whether the grammar requires the top-level
// value to be an array or object.
func (o Options) rootMustBeCompound() bool { return o.Dialect == RFC4627 }
