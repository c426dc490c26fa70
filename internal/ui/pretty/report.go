package pretty

import (
	"fmt"
	"strings"

	"github.com/chatlogkit/discolog/pkg/markdown"
)

// Table formatting constants.
const (
	tablePadding = 2
	minKindWidth = 5
	minNameWidth = 12
)

// FormatRenderSummary formats a one-line summary for a completed
// render. Example: "Rendered html (1532 bytes) to chat.html".
func (s *Styles) FormatRenderSummary(format string, size int, path string) string {
	return s.Success.Render("Rendered "+format) +
		s.Dim.Render(fmt.Sprintf(" (%d bytes) ", size)) +
		"to " + s.Bold.Render(path) + "\n"
}

// FormatExtractTable formats extracted emoji and links as an aligned
// table. Emoji rows show the short code and image URL, link rows the
// URL. Returns "" when there is nothing to show.
func (s *Styles) FormatExtractTable(emojis []markdown.EmojiNode, links []markdown.LinkNode) string {
	type row struct {
		kind, name, detail string
	}

	var rows []row
	for _, e := range emojis {
		rows = append(rows, row{"emoji", ":" + e.Code() + ":", e.ImageURL()})
	}
	for _, l := range links {
		rows = append(rows, row{"link", linkTitle(l), l.URL})
	}
	if len(rows) == 0 {
		return ""
	}

	kindWidth, nameWidth := minKindWidth, minNameWidth
	for _, r := range rows {
		if len(r.kind) > kindWidth {
			kindWidth = len(r.kind)
		}
		if len(r.name) > nameWidth {
			nameWidth = len(r.name)
		}
	}

	var b strings.Builder
	pad := strings.Repeat(" ", tablePadding)
	b.WriteString(s.TableHeader.Render(
		fmt.Sprintf("%-*s%s%-*s%s%s", kindWidth, "KIND", pad, nameWidth, "NAME", pad, "DETAIL")))
	b.WriteString("\n")
	b.WriteString(s.TableBorder.Render(
		strings.Repeat("-", kindWidth+nameWidth+2*tablePadding+6)))
	b.WriteString("\n")

	detailWidth := 0
	if s.Width > 0 {
		detailWidth = s.Width - kindWidth - nameWidth - 2*tablePadding
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%-*s%s%-*s%s%s\n",
			kindWidth, r.kind, pad, nameWidth, r.name, pad, s.Dim.Render(truncate(r.detail, detailWidth))))
	}
	return b.String()
}

// linkTitle returns the display text of a link, or its URL when the
// text is just the URL again.
func linkTitle(l markdown.LinkNode) string {
	if len(l.Children) == 1 {
		if text, ok := l.Children[0].(markdown.TextNode); ok {
			return text.Content
		}
	}
	return l.URL
}
