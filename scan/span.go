package scan

// Span identifies a byte range within a source buffer, in UTF-8 code
// units. It is the only location information the scanner ever reports;
// line and column are not tracked. A caller that wants them recovers
// them by re-walking the source prefix and counting newline sequences.
type Span struct {
	Offset int
	Length int
}

// End returns the offset immediately after the span.
func (s Span) End() int { return s.Offset + s.Length }

// Slice returns the bytes of src covered by s. It panics if the span does
// not fit within src, which should never happen for a span produced by
// this package against the buffer it was produced from.
func (s Span) Slice(src []byte) []byte {
	return src[s.Offset:s.End()]
}
