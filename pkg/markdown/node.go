// Package markdown implements the Discord-flavored markdown engine:
// a matcher-priority parser producing an immutable node tree, and
// visitors that render the tree to HTML or plain text.
//
// Discord does not parse markdown with a conventional grammar. Its
// observable behavior is that of an ordered set of independent pattern
// matchers applied to a span of text, earliest match winning and
// matcher order breaking ties, recursing into matched content. This
// package reproduces that algorithm rather than unifying it into a
// grammar, because ambiguous inputs only come out right when the
// matching strategy is the same.
package markdown

import (
	"time"

	"github.com/chatlogkit/discolog/pkg/discord"
)

// Node is one node of a parsed markdown tree. The set of
// implementations is closed; consumers dispatch with a type switch
// (see Visit). Nodes are constructed once during parsing and never
// mutated afterwards.
type Node interface {
	isNode()
}

// FormattingKind classifies a FormattingNode.
type FormattingKind uint8

const (
	Bold FormattingKind = iota
	Italic
	Underline
	Strikethrough
	Spoiler
	Quote
)

func (k FormattingKind) String() string {
	switch k {
	case Bold:
		return "Bold"
	case Italic:
		return "Italic"
	case Underline:
		return "Underline"
	case Strikethrough:
		return "Strikethrough"
	case Spoiler:
		return "Spoiler"
	case Quote:
		return "Quote"
	default:
		return "Unknown"
	}
}

// MentionKind classifies a MentionNode.
type MentionKind uint8

const (
	MentionEveryone MentionKind = iota
	MentionHere
	MentionUser
	MentionChannel
	MentionRole
)

func (k MentionKind) String() string {
	switch k {
	case MentionEveryone:
		return "Everyone"
	case MentionHere:
		return "Here"
	case MentionUser:
		return "User"
	case MentionChannel:
		return "Channel"
	case MentionRole:
		return "Role"
	default:
		return "Unknown"
	}
}

// TextNode is a literal run of text.
type TextNode struct {
	Content string
}

// FormattingNode wraps children in an inline or block style.
type FormattingNode struct {
	Kind     FormattingKind
	Children []Node
}

// HeadingNode is a heading of level 1-3.
type HeadingNode struct {
	Level    int
	Children []Node
}

// ListItemNode is a single bullet of a list.
type ListItemNode struct {
	Children []Node
}

// ListNode is a run of bulleted items.
type ListNode struct {
	Items []ListItemNode
}

// InlineCodeBlockNode holds inline code. Its content is never parsed
// for nested markup.
type InlineCodeBlockNode struct {
	Code string
}

// MultiLineCodeBlockNode holds fenced code with an optional language
// tag. Its content is never parsed for nested markup.
type MultiLineCodeBlockNode struct {
	Language string
	Code     string
}

// LinkNode is a hyperlink. Construct with NewLinkNode so a bare URL
// gets a text child showing the URL itself.
type LinkNode struct {
	URL      string
	Children []Node
}

// NewLinkNode builds a LinkNode, defaulting children to the URL text
// when none are given.
func NewLinkNode(url string, children ...Node) LinkNode {
	if len(children) == 0 {
		children = []Node{TextNode{Content: url}}
	}
	return LinkNode{URL: url, Children: children}
}

// MentionNode references a user, channel, role or broadcast target.
// TargetID is nil for the everyone/here broadcasts. The id is a
// resolution key: the parser never looks anything up.
type MentionNode struct {
	Kind     MentionKind
	TargetID *discord.Snowflake
}

// EmojiNode is a custom emoji (ID set, Name is the short name) or a
// standard emoji (ID nil, Name holds the literal characters).
type EmojiNode struct {
	ID         *discord.Snowflake
	Name       string
	IsAnimated bool
}

// IsCustom reports whether the node references a custom guild emoji.
func (n EmojiNode) IsCustom() bool {
	return n.ID != nil
}

// Code returns the emoji short code.
func (n EmojiNode) Code() string {
	return discord.Emoji{ID: n.ID, Name: n.Name, IsAnimated: n.IsAnimated}.Code()
}

// ImageURL returns the CDN image URL for the emoji.
func (n EmojiNode) ImageURL() string {
	return discord.Emoji{ID: n.ID, Name: n.Name, IsAnimated: n.IsAnimated}.ImageURL()
}

// TimestampNode is a <t:...> token. Valid is false for the reserved
// invalid sentinel, which renders as a fixed "Invalid date" string.
// Format is one of 't','T','d','D','f','F', or 0 for the default
// style (relative-style tokens collapse to 0: relative time has no
// meaning in a static export).
type TimestampNode struct {
	Instant time.Time
	Valid   bool
	Format  byte
}

// TimestampInvalid is the sentinel produced for unparsable timestamp
// tokens (unknown format code, unrepresentable epoch).
var TimestampInvalid = TimestampNode{}

func (TextNode) isNode()               {}
func (FormattingNode) isNode()         {}
func (HeadingNode) isNode()            {}
func (ListItemNode) isNode()           {}
func (ListNode) isNode()               {}
func (InlineCodeBlockNode) isNode()    {}
func (MultiLineCodeBlockNode) isNode() {}
func (LinkNode) isNode()               {}
func (MentionNode) isNode()            {}
func (EmojiNode) isNode()              {}
func (TimestampNode) isNode()          {}

// NodeChildren returns the child sequence of a container node, or nil
// for leaves. List items are reachable through ListNode.Items, which
// extraction handles separately.
func NodeChildren(n Node) []Node {
	switch n := n.(type) {
	case FormattingNode:
		return n.Children
	case HeadingNode:
		return n.Children
	case ListItemNode:
		return n.Children
	case LinkNode:
		return n.Children
	default:
		return nil
	}
}
