package markdown

import (
	"regexp"
	"strings"
)

// parsedMatch is one matcher hit: the segment the token occupies and
// the node built from it. The cursor advances past seg, so matchers
// emulating lookahead must keep trailing context out of it.
type parsedMatch struct {
	seg  Segment
	node Node
}

// matcher scans a segment for the earliest occurrence of its token.
// depth is the current recursion depth, forwarded so transforms that
// re-parse matched content keep counting.
type matcher func(depth int, seg Segment) (parsedMatch, bool)

// newStringMatcher matches a fixed literal and maps it to a node.
func newStringMatcher(token string, build func(seg Segment) Node) matcher {
	return func(depth int, seg Segment) (parsedMatch, bool) {
		i := strings.Index(seg.String(), token)
		if i < 0 {
			return parsedMatch{}, false
		}
		found := seg.Relocate(seg.Start+i, len(token))
		return parsedMatch{seg: found, node: build(found)}, true
	}
}

// regexMatcherOpts tunes newRegexMatcher beyond the plain pattern.
type regexMatcherOpts struct {
	// span names the capture group whose extent the token actually
	// consumes. RE2 has no lookahead, so patterns that need trailing
	// context match it and capture the real token in a group; the
	// cursor then advances past that group only. Zero means the whole
	// match is the token.
	span int

	// lineAnchored marks patterns carrying a `(?m)^` anchor. The
	// anchor also matches the start of a relocated segment even when
	// that offset sits mid-line in the original source, so anchored
	// matchers verify against the source and, on a false anchor,
	// resume searching past the next newline.
	lineAnchored bool
}

// newRegexMatcher matches a compiled pattern and maps submatches to a
// node. transform receives the matched segment and the submatch
// indexes converted to absolute source offsets (use groupSegment).
// Returning false fails the matcher for the whole segment; the
// aggregate then treats the region as plain text unless another
// matcher claims it.
func newRegexMatcher(re *regexp.Regexp, opts regexMatcherOpts, transform func(depth int, seg Segment, m []int) (Node, bool)) matcher {
	return func(depth int, seg Segment) (parsedMatch, bool) {
		text := seg.String()
		off := 0
		for off <= len(text) {
			m := re.FindStringSubmatchIndex(text[off:])
			if m == nil {
				return parsedMatch{}, false
			}
			for i := range m {
				if m[i] >= 0 {
					m[i] += off + seg.Start
				}
			}
			if opts.lineAnchored && m[0] == off+seg.Start && !seg.Relocate(m[0], 0).atLineStart() {
				nl := strings.IndexByte(text[off:], '\n')
				if nl < 0 {
					return parsedMatch{}, false
				}
				off += nl + 1
				continue
			}
			start, end := m[0], m[1]
			if opts.span > 0 {
				start, end = m[2*opts.span], m[2*opts.span+1]
			}
			tokenSeg := seg.Relocate(start, end-start)
			node, ok := transform(depth, tokenSeg, m)
			if !ok {
				return parsedMatch{}, false
			}
			return parsedMatch{seg: tokenSeg, node: node}, true
		}
		return parsedMatch{}, false
	}
}

// groupSegment returns the segment covered by capture group g of a
// regex match. ok is false when the group did not participate.
func groupSegment(seg Segment, m []int, g int) (Segment, bool) {
	if 2*g+1 >= len(m) || m[2*g] < 0 {
		return Segment{}, false
	}
	return seg.Relocate(m[2*g], m[2*g+1]-m[2*g]), true
}

// groupText returns the text of capture group g, or "" when absent.
func groupText(seg Segment, m []int, g int) string {
	gs, ok := groupSegment(seg, m, g)
	if !ok {
		return ""
	}
	return gs.String()
}

// newAggregateMatcher runs matchers in priority order and returns the
// earliest match; ties go to the earlier-listed matcher. A match at
// the very start of the segment cannot be beaten, so the scan stops
// there without consulting the remaining matchers.
func newAggregateMatcher(matchers ...matcher) matcher {
	return func(depth int, seg Segment) (parsedMatch, bool) {
		var best parsedMatch
		found := false
		for _, m := range matchers {
			pm, ok := m(depth, seg)
			if !ok {
				continue
			}
			if !found || pm.seg.Start < best.seg.Start {
				best = pm
				found = true
				if best.seg.Start == seg.Start {
					break
				}
			}
		}
		return best, found
	}
}
