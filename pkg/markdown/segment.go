package markdown

// Segment is a zero-copy view into a source string. Relocating a
// segment changes only the offsets; the underlying text is never
// copied until a leaf node takes ownership of its content.
//
// Invariant: 0 <= Start <= Start+Length <= len(Source).
type Segment struct {
	Source string
	Start  int
	Length int
}

// NewSegment returns a segment spanning the whole source string.
func NewSegment(source string) Segment {
	return Segment{Source: source, Length: len(source)}
}

// End returns the exclusive end offset of the segment.
func (s Segment) End() int {
	return s.Start + s.Length
}

// Relocate returns a view of the same source with new bounds.
func (s Segment) Relocate(start, length int) Segment {
	return Segment{Source: s.Source, Start: start, Length: length}
}

// String returns the text covered by the segment. Go string slicing
// shares the backing array, so this does not copy.
func (s Segment) String() string {
	return s.Source[s.Start:s.End()]
}

// atLineStart reports whether the segment begins at the start of a
// line in the original source. Matchers for line-anchored constructs
// need this because a slice of the source hides what precedes it.
func (s Segment) atLineStart() bool {
	return s.Start == 0 || s.Source[s.Start-1] == '\n'
}
