package markdown

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/chatlogkit/discolog/pkg/discord"
	"github.com/chatlogkit/discolog/pkg/discord/emojiindex"
)

// maxDepth bounds recursion into nested markup. Past the limit the
// remaining text is taken verbatim.
const maxDepth = 32

// The formatting patterns port Discord's matchers to RE2, which has
// neither lookarounds nor backreferences. Lookarounds become trailing
// context captured outside the span group (see regexMatcherOpts.span);
// the two backreference patterns, inline code fences and list
// indentation, become an ordered alternation and a hand-rolled line
// scanner.
var (
	boldRe            = regexp.MustCompile(`(?s)(\*\*(.+?)\*\*)(?:[^*]|$)`)
	italicRe          = regexp.MustCompile(`(?s)(\*([^\s*]|[^\s].*?[^\s*])\*)(?:[^*]|$)`)
	italicBoldRe      = regexp.MustCompile(`(?s)(\*(\*\*.+?\*\*)\*)(?:[^*]|$)`)
	underlineRe       = regexp.MustCompile(`(?s)(__(.+?)__)(?:[^_]|$)`)
	italicUnderlineRe = regexp.MustCompile(`(?s)(_(__.+?__)_)(?:[^_]|$)`)
	italicAltRe       = regexp.MustCompile(`(?s)(_(.+?)_)(?:[^0-9A-Za-z_]|$)`)
	strikethroughRe   = regexp.MustCompile(`(?s)~~(.+?)~~`)
	spoilerRe         = regexp.MustCompile(`(?s)\|\|(.+?)\|\|`)

	singleQuoteRe   = regexp.MustCompile(`(?m)^>\s(.+\n?)`)
	repeatedQuoteRe = regexp.MustCompile(`(?m)(?:^>\s(?:.*\n?)){2,}`)
	quoteLineRe     = regexp.MustCompile(`(?m)^>\s(.*\n?)`)
	multiQuoteRe    = regexp.MustCompile(`(?sm)^>>>\s(.+)`)
	headingRe       = regexp.MustCompile(`(?m)^(#{1,3})\s(.+)\n`)
	listStartRe     = regexp.MustCompile(`(?m)^([ \t]*)[-*]\s`)

	multiLineCodeRe = regexp.MustCompile("(?s)```" + `(?:(\w*)\n)?(.+?)` + "```")
	inlineCodeRe    = regexp.MustCompile("``([^`]+)``|`([^`]+)`")

	userMentionRe    = regexp.MustCompile(`<@!?(\d+)>`)
	channelMentionRe = regexp.MustCompile(`<#!?(\d+)>`)
	roleMentionRe    = regexp.MustCompile(`<@&(\d+)>`)

	maskedLinkRe = regexp.MustCompile(`\[(.+?)\]\((.+?)\)`)
	autoLinkRe   = regexp.MustCompile(`(https?://\S*[^.,:;"'\s])`)
	hiddenLinkRe = regexp.MustCompile(`<(https?://\S*[^.,:;"'\s])>`)

	// Country flags, keycap digits, the astral emoji planes and the
	// miscellaneous BMP emoji ranges Discord treats as jumbo-able.
	standardEmojiRe = regexp.MustCompile(`([\x{1F1E6}-\x{1F1FF}]{2}` +
		`|\d\x{FE0F}?\x{20E3}` +
		`|[\x{1F000}-\x{1FAFF}]` +
		`|[\x{2600}-\x{2604}\x{260E}\x{2611}\x{2614}-\x{2615}\x{2618}\x{261D}\x{2620}` +
		`\x{2622}-\x{2623}\x{2626}\x{262A}\x{262E}-\x{262F}\x{2638}-\x{263A}\x{2640}\x{2642}` +
		`\x{2648}-\x{2653}\x{265F}-\x{2660}\x{2663}\x{2665}-\x{2666}\x{2668}\x{267B}` +
		`\x{267E}-\x{267F}\x{2692}-\x{2697}\x{2699}\x{269B}-\x{269C}\x{26A0}-\x{26A1}\x{26A7}` +
		`\x{26AA}-\x{26AB}\x{26B0}-\x{26B1}\x{26BD}-\x{26BE}\x{26C4}-\x{26C5}\x{26C8}` +
		`\x{26CE}-\x{26CF}\x{26D1}\x{26D3}-\x{26D4}\x{26E9}-\x{26EA}\x{26F0}-\x{26F5}` +
		`\x{26F7}-\x{26FA}\x{26FD}])`)
	codedEmojiRe  = regexp.MustCompile(`:(\w+):`)
	customEmojiRe = regexp.MustCompile(`<(a)?:(.+?):(\d+?)>`)

	ignoredEmojiRe  = regexp.MustCompile(`([\x{26A7}\x{2640}\x{2642}\x{2695}\x{267E}\x{00A9}\x{00AE}\x{2122}])`)
	escapedSymbolRe = regexp.MustCompile(`\\([\x{10000}-\x{10FFFF}]` +
		`|[\x{2000}-\x{2BFF}\x{2E00}-\x{2E7F}\x{3000}-\x{303F}\x{FE00}-\x{FE0F}]` +
		`|[\x{00A0}-\x{00FF}])`)
	escapedCharRe = regexp.MustCompile(`\\([^a-zA-Z0-9\s])`)

	timestampRe = regexp.MustCompile(`<t:(-?\d+)(?::(\w))?>`)
)

// The aggregates are assembled in init because the transforms close
// over fullMatcher before it exists.
var (
	fullMatcher    matcher
	minimalMatcher matcher
)

func init() {
	boldMatcher := newFormattingMatcher(boldRe, Bold, nil)
	underlineMatcher := newFormattingMatcher(underlineRe, Underline, nil)

	fullMatcher = newAggregateMatcher(
		// Escaped text.
		newShrugMatcher(),
		newTextLiteralMatcher(ignoredEmojiRe),
		newTextLiteralMatcher(escapedSymbolRe),
		newTextLiteralMatcher(escapedCharRe),
		// Formatting, most specific first.
		newFormattingMatcher(italicBoldRe, Italic, boldMatcher),
		newFormattingMatcher(italicUnderlineRe, Italic, underlineMatcher),
		boldMatcher,
		newFormattingMatcher(italicRe, Italic, nil),
		underlineMatcher,
		newFormattingMatcher(italicAltRe, Italic, nil),
		newSymmetricFormattingMatcher(strikethroughRe, Strikethrough),
		newSymmetricFormattingMatcher(spoilerRe, Spoiler),
		newSymmetricQuoteMatcher(multiQuoteRe),
		newRepeatedQuoteMatcher(),
		newSymmetricQuoteMatcher(singleQuoteRe),
		newHeadingMatcher(),
		matchList,
		// Code blocks.
		newMultiLineCodeMatcher(),
		newInlineCodeMatcher(),
		// Mentions.
		newStringMatcher("@everyone", func(Segment) Node { return MentionNode{Kind: MentionEveryone} }),
		newStringMatcher("@here", func(Segment) Node { return MentionNode{Kind: MentionHere} }),
		newMentionMatcher(userMentionRe, MentionUser),
		newMentionMatcher(channelMentionRe, MentionChannel),
		newMentionMatcher(roleMentionRe, MentionRole),
		// Links.
		newMaskedLinkMatcher(),
		newBareLinkMatcher(autoLinkRe),
		newBareLinkMatcher(hiddenLinkRe),
		// Emoji.
		newStandardEmojiMatcher(),
		newCustomEmojiMatcher(),
		newCodedEmojiMatcher(),
		// Misc.
		newTimestampMatcher(),
	)

	minimalMatcher = newAggregateMatcher(
		newStringMatcher("@everyone", func(Segment) Node { return MentionNode{Kind: MentionEveryone} }),
		newStringMatcher("@here", func(Segment) Node { return MentionNode{Kind: MentionHere} }),
		newMentionMatcher(userMentionRe, MentionUser),
		newMentionMatcher(channelMentionRe, MentionChannel),
		newMentionMatcher(roleMentionRe, MentionRole),
		newCustomEmojiMatcher(),
		newTimestampMatcher(),
	)
}

// newFormattingMatcher builds a matcher for span-group patterns whose
// content sits in group 2. child selects the matcher used to parse
// the content; nil means the full matcher.
func newFormattingMatcher(re *regexp.Regexp, kind FormattingKind, child matcher) matcher {
	return newRegexMatcher(re, regexMatcherOpts{span: 1}, func(depth int, seg Segment, m []int) (Node, bool) {
		content, _ := groupSegment(seg, m, 2)
		inner := child
		if inner == nil {
			inner = fullMatcher
		}
		return FormattingNode{Kind: kind, Children: parseSegment(depth, content, inner)}, true
	})
}

// newSymmetricFormattingMatcher handles delimiters that need no
// trailing context; content sits in group 1.
func newSymmetricFormattingMatcher(re *regexp.Regexp, kind FormattingKind) matcher {
	return newRegexMatcher(re, regexMatcherOpts{}, func(depth int, seg Segment, m []int) (Node, bool) {
		content, _ := groupSegment(seg, m, 1)
		return FormattingNode{Kind: kind, Children: parseSegment(depth, content, fullMatcher)}, true
	})
}

func newSymmetricQuoteMatcher(re *regexp.Regexp) matcher {
	return newRegexMatcher(re, regexMatcherOpts{lineAnchored: true}, func(depth int, seg Segment, m []int) (Node, bool) {
		content, _ := groupSegment(seg, m, 1)
		return FormattingNode{Kind: Quote, Children: parseSegment(depth, content, fullMatcher)}, true
	})
}

// newRepeatedQuoteMatcher folds a run of two or more "> " lines into a
// single quote. RE2 reports only the last capture of a repeated
// group, so the matched run is rescanned line by line.
func newRepeatedQuoteMatcher() matcher {
	return newRegexMatcher(repeatedQuoteRe, regexMatcherOpts{lineAnchored: true}, func(depth int, seg Segment, m []int) (Node, bool) {
		var children []Node
		for _, lm := range quoteLineRe.FindAllStringSubmatchIndex(seg.String(), -1) {
			line := seg.Relocate(seg.Start+lm[2], lm[3]-lm[2])
			children = append(children, parseSegment(depth, line, fullMatcher)...)
		}
		return FormattingNode{Kind: Quote, Children: children}, true
	})
}

func newHeadingMatcher() matcher {
	return newRegexMatcher(headingRe, regexMatcherOpts{lineAnchored: true}, func(depth int, seg Segment, m []int) (Node, bool) {
		level := m[3] - m[2]
		content, _ := groupSegment(seg, m, 2)
		return HeadingNode{Level: level, Children: parseSegment(depth, content, fullMatcher)}, true
	})
}

func newMultiLineCodeMatcher() matcher {
	return newRegexMatcher(multiLineCodeRe, regexMatcherOpts{}, func(depth int, seg Segment, m []int) (Node, bool) {
		return MultiLineCodeBlockNode{
			Language: groupText(seg, m, 1),
			Code:     strings.Trim(groupText(seg, m, 2), "\r\n"),
		}, true
	})
}

// Inline code fences: Discord accepts one or two backticks with the
// closer mirroring the opener. The double-tick branch is listed first
// so it wins where both could match.
func newInlineCodeMatcher() matcher {
	return newRegexMatcher(inlineCodeRe, regexMatcherOpts{}, func(depth int, seg Segment, m []int) (Node, bool) {
		code := groupText(seg, m, 1)
		if code == "" {
			code = groupText(seg, m, 2)
		}
		return InlineCodeBlockNode{Code: code}, true
	})
}

func newMentionMatcher(re *regexp.Regexp, kind MentionKind) matcher {
	return newRegexMatcher(re, regexMatcherOpts{}, func(depth int, seg Segment, m []int) (Node, bool) {
		node := MentionNode{Kind: kind}
		if id, ok := discord.TryParseSnowflake(groupText(seg, m, 1)); ok {
			node.TargetID = &id
		}
		return node, true
	})
}

func newMaskedLinkMatcher() matcher {
	return newRegexMatcher(maskedLinkRe, regexMatcherOpts{}, func(depth int, seg Segment, m []int) (Node, bool) {
		title, _ := groupSegment(seg, m, 1)
		return NewLinkNode(groupText(seg, m, 2), parseSegment(depth, title, fullMatcher)...), true
	})
}

func newBareLinkMatcher(re *regexp.Regexp) matcher {
	return newRegexMatcher(re, regexMatcherOpts{}, func(depth int, seg Segment, m []int) (Node, bool) {
		return NewLinkNode(groupText(seg, m, 1)), true
	})
}

func newStandardEmojiMatcher() matcher {
	return newRegexMatcher(standardEmojiRe, regexMatcherOpts{}, func(depth int, seg Segment, m []int) (Node, bool) {
		return EmojiNode{Name: groupText(seg, m, 1)}, true
	})
}

// Coded emoji only match names present in the index; anything else
// stays literal text.
func newCodedEmojiMatcher() matcher {
	return newRegexMatcher(codedEmojiRe, regexMatcherOpts{}, func(depth int, seg Segment, m []int) (Node, bool) {
		literal, ok := emojiindex.FromCode(groupText(seg, m, 1))
		if !ok {
			return nil, false
		}
		return EmojiNode{Name: literal}, true
	})
}

func newCustomEmojiMatcher() matcher {
	return newRegexMatcher(customEmojiRe, regexMatcherOpts{}, func(depth int, seg Segment, m []int) (Node, bool) {
		node := EmojiNode{
			Name:       groupText(seg, m, 2),
			IsAnimated: groupText(seg, m, 1) != "",
		}
		if id, ok := discord.TryParseSnowflake(groupText(seg, m, 3)); ok {
			node.ID = &id
		}
		return node, true
	})
}

func newShrugMatcher() matcher {
	return newStringMatcher(`¯\_(ツ)_/¯`, func(seg Segment) Node {
		return TextNode{Content: seg.String()}
	})
}

// newTextLiteralMatcher unwraps escapes: the node carries group 1,
// the escaped character without its backslash.
func newTextLiteralMatcher(re *regexp.Regexp) matcher {
	return newRegexMatcher(re, regexMatcherOpts{}, func(depth int, seg Segment, m []int) (Node, bool) {
		return TextNode{Content: groupText(seg, m, 1)}, true
	})
}

func newTimestampMatcher() matcher {
	return newRegexMatcher(timestampRe, regexMatcherOpts{}, func(depth int, seg Segment, m []int) (Node, bool) {
		epoch, err := strconv.ParseInt(groupText(seg, m, 1), 10, 64)
		if err != nil {
			return TimestampInvalid, true
		}
		instant := time.Unix(epoch, 0).UTC()
		if y := instant.Year(); y < 1 || y > 9999 {
			return TimestampInvalid, true
		}
		format := byte(0)
		if f := groupText(seg, m, 2); f != "" {
			switch f[0] {
			case 't', 'T', 'd', 'D', 'f', 'F':
				format = f[0]
			case 'r', 'R':
				// Relative styles have no meaning in a static export.
				format = 0
			default:
				return TimestampInvalid, true
			}
		}
		return TimestampNode{Instant: instant, Valid: true, Format: format}, true
	})
}

// matchList is the list matcher. Discord's pattern backreferences the
// captured indent of the first bullet, which RE2 cannot express, so
// items and their continuation lines are scanned by hand.
func matchList(depth int, seg Segment) (parsedMatch, bool) {
	text := seg.String()
	off := 0
	for off <= len(text) {
		m := listStartRe.FindStringSubmatchIndex(text[off:])
		if m == nil {
			return parsedMatch{}, false
		}
		start := off + m[0]
		if !seg.Relocate(seg.Start+start, 0).atLineStart() {
			nl := strings.IndexByte(text[off:], '\n')
			if nl < 0 {
				return parsedMatch{}, false
			}
			off += nl + 1
			continue
		}
		indent := text[off+m[2] : off+m[3]]
		items, end := scanListItems(depth, seg, text, off+m[1], indent)
		return parsedMatch{
			seg:  seg.Relocate(seg.Start+start, end-start),
			node: ListNode{Items: items},
		}, true
	}
	return parsedMatch{}, false
}

// scanListItems consumes bullet items starting just past the first
// "-(space)". An item is the rest of its line plus any continuation
// lines indented one whitespace character deeper than the list; a
// following bullet attaches only when it starts immediately on the
// next line.
func scanListItems(depth int, seg Segment, text string, pos int, indent string) ([]ListItemNode, int) {
	var items []ListItemNode
	for {
		cStart := pos
		lineEnd := pos
		for lineEnd < len(text) && text[lineEnd] != '\n' {
			lineEnd++
		}
		cEnd := cStart
		if lineEnd > cStart {
			cEnd = lineEnd
			for lineEnd < len(text) && text[lineEnd] == '\n' {
				rest := text[lineEnd+1:]
				if len(rest) == 0 || !isSpaceByte(rest[0]) || !strings.HasPrefix(rest[1:], indent) {
					break
				}
				next := lineEnd + 2 + len(indent)
				for next < len(text) && text[next] != '\n' {
					next++
				}
				cEnd = next
				lineEnd = next
			}
		}
		content := seg.Relocate(seg.Start+cStart, cEnd-cStart)
		items = append(items, ListItemNode{Children: parseSegment(depth, content, fullMatcher)})
		pos = cEnd
		if pos < len(text) && text[pos] == '\n' {
			pos++
		}
		if pos+1 < len(text) && (text[pos] == '-' || text[pos] == '*') && isSpaceByte(text[pos+1]) {
			pos += 2
			continue
		}
		return items, pos
	}
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// matchAll applies the matcher across the segment, filling the gaps
// between matches with text nodes.
func matchAll(m matcher, depth int, seg Segment) []Node {
	var nodes []Node
	cur := seg.Start
	for cur < seg.End() {
		pm, ok := m(depth, seg.Relocate(cur, seg.End()-cur))
		if !ok {
			break
		}
		if pm.seg.Start > cur {
			nodes = append(nodes, TextNode{Content: seg.Source[cur:pm.seg.Start]})
		}
		nodes = append(nodes, pm.node)
		cur = pm.seg.End()
	}
	if cur < seg.End() {
		nodes = append(nodes, TextNode{Content: seg.Source[cur:seg.End()]})
	}
	return nodes
}

func parseSegment(depth int, seg Segment, m matcher) []Node {
	if depth >= maxDepth {
		return []Node{TextNode{Content: seg.String()}}
	}
	return matchAll(m, depth+1, seg)
}

// Parse parses Discord-flavored markdown into a node tree with the
// full set of matchers.
func Parse(source string) []Node {
	return parseSegment(0, NewSegment(source), fullMatcher)
}

// ParseMinimal parses with the reduced matcher set used by plain-text
// output: mentions, custom emoji and timestamps. Everything else
// stays literal.
func ParseMinimal(source string) []Node {
	return parseSegment(0, NewSegment(source), minimalMatcher)
}
