package markdown

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/chatlogkit/discolog/pkg/discord"
)

// messageLinkRe recognizes Discord message permalinks so the anchor
// can scroll to the referenced message inside the exported log.
var messageLinkRe = regexp.MustCompile(`^https?://(?:discord|discordapp)\.com/channels/.*?/(\d+)/?$`)

// LanguageDetector guesses the language of an untagged code block,
// returning "" when it cannot tell.
type LanguageDetector func(code string) string

// HTMLRenderer renders markdown to the HTML fragment embedded in a
// chat log. The zero value is not usable; Resolver is required.
type HTMLRenderer struct {
	Resolver Resolver

	// JumboAllowed enables the enlarged emoji style for messages
	// consisting only of emoji and blank text.
	JumboAllowed bool

	// DetectLanguage, when set, supplies a highlight class for code
	// blocks without a language tag.
	DetectLanguage LanguageDetector
}

// Render parses source with the full matcher set and renders it.
func (r HTMLRenderer) Render(ctx context.Context, source string) (string, error) {
	nodes := Parse(source)
	v := &htmlVisitor{
		res:    r.Resolver,
		detect: r.DetectLanguage,
		jumbo:  r.JumboAllowed && isEmojiOnly(nodes),
	}
	if err := VisitAll(ctx, v, nodes); err != nil {
		return "", err
	}
	return v.buf.String(), nil
}

// RenderHTML renders markdown to HTML with default options.
func RenderHTML(ctx context.Context, res Resolver, source string, jumboAllowed bool) (string, error) {
	return HTMLRenderer{Resolver: res, JumboAllowed: jumboAllowed}.Render(ctx, source)
}

// isEmojiOnly reports whether the message consists solely of emoji
// and whitespace-only text, the condition for jumbo rendering.
func isEmojiOnly(nodes []Node) bool {
	for _, n := range nodes {
		switch n := n.(type) {
		case EmojiNode:
		case TextNode:
			if strings.TrimSpace(n.Content) != "" {
				return false
			}
		default:
			return false
		}
	}
	return true
}

type htmlVisitor struct {
	res    Resolver
	detect LanguageDetector
	jumbo  bool
	buf    strings.Builder
}

func (v *htmlVisitor) VisitText(ctx context.Context, n TextNode) error {
	v.buf.WriteString(html.EscapeString(n.Content))
	return nil
}

func (v *htmlVisitor) VisitFormatting(ctx context.Context, n FormattingNode) error {
	var opening, closing string
	switch n.Kind {
	case Bold:
		opening, closing = "<strong>", "</strong>"
	case Italic:
		opening, closing = "<em>", "</em>"
	case Underline:
		opening, closing = "<u>", "</u>"
	case Strikethrough:
		opening, closing = "<s>", "</s>"
	case Spoiler:
		opening = `<span class="chatlog__markdown-spoiler chatlog__markdown-spoiler--hidden" onclick="showSpoiler(event, this)">`
		closing = "</span>"
	case Quote:
		opening = `<div class="chatlog__markdown-quote"><div class="chatlog__markdown-quote-border"></div><div class="chatlog__markdown-quote-content">`
		closing = "</div></div>"
	default:
		return fmt.Errorf("markdown: unknown formatting kind %v", n.Kind)
	}
	v.buf.WriteString(opening)
	if err := VisitAll(ctx, v, n.Children); err != nil {
		return err
	}
	v.buf.WriteString(closing)
	return nil
}

func (v *htmlVisitor) VisitHeading(ctx context.Context, n HeadingNode) error {
	fmt.Fprintf(&v.buf, "<h%d>", n.Level)
	if err := VisitAll(ctx, v, n.Children); err != nil {
		return err
	}
	fmt.Fprintf(&v.buf, "</h%d>", n.Level)
	return nil
}

func (v *htmlVisitor) VisitList(ctx context.Context, n ListNode) error {
	v.buf.WriteString("<ul>")
	for _, item := range n.Items {
		if err := v.VisitListItem(ctx, item); err != nil {
			return err
		}
	}
	v.buf.WriteString("</ul>")
	return nil
}

func (v *htmlVisitor) VisitListItem(ctx context.Context, n ListItemNode) error {
	v.buf.WriteString("<li>")
	if err := VisitAll(ctx, v, n.Children); err != nil {
		return err
	}
	v.buf.WriteString("</li>")
	return nil
}

func (v *htmlVisitor) VisitInlineCodeBlock(ctx context.Context, n InlineCodeBlockNode) error {
	v.buf.WriteString(`<code class="chatlog__markdown-pre chatlog__markdown-pre--inline">`)
	v.buf.WriteString(html.EscapeString(n.Code))
	v.buf.WriteString("</code>")
	return nil
}

func (v *htmlVisitor) VisitMultiLineCodeBlock(ctx context.Context, n MultiLineCodeBlockNode) error {
	lang := strings.TrimSpace(n.Language)
	if lang == "" && v.detect != nil {
		lang = v.detect(n.Code)
	}
	highlight := "nohighlight"
	if lang != "" {
		highlight = "language-" + lang
	}
	fmt.Fprintf(&v.buf, `<code class="chatlog__markdown-pre chatlog__markdown-pre--multiline %s">`, highlight)
	v.buf.WriteString(html.EscapeString(n.Code))
	v.buf.WriteString("</code>")
	return nil
}

func (v *htmlVisitor) VisitLink(ctx context.Context, n LinkNode) error {
	if m := messageLinkRe.FindStringSubmatch(n.URL); m != nil {
		fmt.Fprintf(&v.buf, `<a href="%s" onclick="scrollToMessage(event, '%s')">`, html.EscapeString(n.URL), m[1])
	} else {
		fmt.Fprintf(&v.buf, `<a href="%s">`, html.EscapeString(n.URL))
	}
	if err := VisitAll(ctx, v, n.Children); err != nil {
		return err
	}
	v.buf.WriteString("</a>")
	return nil
}

func (v *htmlVisitor) VisitEmoji(ctx context.Context, n EmojiNode) error {
	class := "chatlog__emoji"
	if v.jumbo {
		class += " chatlog__emoji--large"
	}
	url := v.res.ResolveAssetURL(ctx, n.ImageURL())
	fmt.Fprintf(&v.buf, `<img loading="lazy" class="%s" alt="%s" title="%s" src="%s">`,
		class, html.EscapeString(n.Name), html.EscapeString(n.Code()), html.EscapeString(url))
	return nil
}

func (v *htmlVisitor) VisitMention(ctx context.Context, n MentionNode) error {
	switch n.Kind {
	case MentionEveryone:
		v.buf.WriteString(`<span class="chatlog__markdown-mention">@everyone</span>`)

	case MentionHere:
		v.buf.WriteString(`<span class="chatlog__markdown-mention">@here</span>`)

	case MentionUser:
		fullName, displayName := PlaceholderUnknownUser, PlaceholderUnknownUser
		if n.TargetID != nil {
			member, err := v.res.ResolveMember(ctx, *n.TargetID)
			if err != nil {
				return err
			}
			if member != nil {
				fullName = member.User.FullName()
				displayName = member.DisplayName()
			}
		}
		fmt.Fprintf(&v.buf, `<span class="chatlog__markdown-mention" title="%s">@%s</span>`,
			html.EscapeString(fullName), html.EscapeString(displayName))

	case MentionChannel:
		var channel *discord.Channel
		if n.TargetID != nil {
			channel = v.res.ResolveChannel(*n.TargetID)
		}
		symbol, name := "#", PlaceholderDeletedChannel
		if channel != nil {
			name = channel.Name
			if channel.IsVoice() {
				symbol = "\U0001F50A"
			}
		}
		fmt.Fprintf(&v.buf, `<span class="chatlog__markdown-mention">%s%s</span>`,
			symbol, html.EscapeString(name))

	case MentionRole:
		var role *discord.Role
		if n.TargetID != nil {
			role = v.res.ResolveRole(*n.TargetID)
		}
		name, style := PlaceholderDeletedRole, ""
		if role != nil {
			name = role.Name
			if r, g, b, ok := role.ColorRGB(); ok {
				style = fmt.Sprintf("color: rgb(%d, %d, %d); background-color: rgba(%d, %d, %d, 0.1);", r, g, b, r, g, b)
			}
		}
		fmt.Fprintf(&v.buf, `<span class="chatlog__markdown-mention" style="%s">@%s</span>`,
			style, html.EscapeString(name))
	}
	return nil
}

func (v *htmlVisitor) VisitTimestamp(ctx context.Context, n TimestampNode) error {
	formatted, title := PlaceholderInvalidDate, ""
	if n.Valid {
		style := n.Format
		if style == 0 {
			style = 'g'
		}
		formatted = v.res.FormatTimestamp(n.Instant, style)
		title = v.res.FormatTimestamp(n.Instant, 'f')
	}
	fmt.Fprintf(&v.buf, `<span class="chatlog__markdown-timestamp" title="%s">%s</span>`,
		html.EscapeString(title), html.EscapeString(formatted))
	return nil
}
