package markdown

import (
	"context"
	"strings"

	"github.com/chatlogkit/discolog/pkg/discord"
)

// RenderPlainText renders markdown as plain text using the minimal
// matcher set: mentions and timestamps resolve through the resolver,
// custom emoji collapse to :name:, everything else stays literal.
func RenderPlainText(ctx context.Context, res Resolver, source string) (string, error) {
	nodes := ParseMinimal(source)
	v := &plainTextVisitor{res: res}
	if err := VisitAll(ctx, v, nodes); err != nil {
		return "", err
	}
	return v.buf.String(), nil
}

type plainTextVisitor struct {
	res Resolver
	buf strings.Builder
}

func (v *plainTextVisitor) VisitText(ctx context.Context, n TextNode) error {
	v.buf.WriteString(n.Content)
	return nil
}

func (v *plainTextVisitor) VisitEmoji(ctx context.Context, n EmojiNode) error {
	if n.IsCustom() {
		v.buf.WriteString(":" + n.Name + ":")
	} else {
		v.buf.WriteString(n.Name)
	}
	return nil
}

func (v *plainTextVisitor) VisitMention(ctx context.Context, n MentionNode) error {
	switch n.Kind {
	case MentionEveryone:
		v.buf.WriteString("@everyone")

	case MentionHere:
		v.buf.WriteString("@here")

	case MentionUser:
		name := PlaceholderUnknownUser
		if n.TargetID != nil {
			member, err := v.res.ResolveMember(ctx, *n.TargetID)
			if err != nil {
				return err
			}
			if member != nil {
				name = member.DisplayName()
			}
		}
		v.buf.WriteString("@" + name)

	case MentionChannel:
		var channel *discord.Channel
		if n.TargetID != nil {
			channel = v.res.ResolveChannel(*n.TargetID)
		}
		if channel != nil {
			v.buf.WriteString("#" + channel.Name)
			if channel.IsVoice() {
				v.buf.WriteString(" [voice]")
			}
		} else {
			v.buf.WriteString("#" + PlaceholderDeletedChannel)
		}

	case MentionRole:
		name := PlaceholderDeletedRole
		if n.TargetID != nil {
			if role := v.res.ResolveRole(*n.TargetID); role != nil {
				name = role.Name
			}
		}
		v.buf.WriteString("@" + name)
	}
	return nil
}

func (v *plainTextVisitor) VisitTimestamp(ctx context.Context, n TimestampNode) error {
	if !n.Valid {
		v.buf.WriteString(PlaceholderInvalidDate)
		return nil
	}
	style := n.Format
	if style == 0 {
		style = 'g'
	}
	v.buf.WriteString(v.res.FormatTimestamp(n.Instant, style))
	return nil
}

// The minimal matcher set never yields the remaining node kinds; the
// hooks recurse anyway so the visitor behaves on any tree.

func (v *plainTextVisitor) VisitFormatting(ctx context.Context, n FormattingNode) error {
	return VisitAll(ctx, v, n.Children)
}

func (v *plainTextVisitor) VisitHeading(ctx context.Context, n HeadingNode) error {
	return VisitAll(ctx, v, n.Children)
}

func (v *plainTextVisitor) VisitList(ctx context.Context, n ListNode) error {
	return VisitChildren(ctx, v, n)
}

func (v *plainTextVisitor) VisitListItem(ctx context.Context, n ListItemNode) error {
	return VisitAll(ctx, v, n.Children)
}

func (v *plainTextVisitor) VisitLink(ctx context.Context, n LinkNode) error {
	return VisitAll(ctx, v, n.Children)
}

func (v *plainTextVisitor) VisitInlineCodeBlock(ctx context.Context, n InlineCodeBlockNode) error {
	return nil
}

func (v *plainTextVisitor) VisitMultiLineCodeBlock(ctx context.Context, n MultiLineCodeBlockNode) error {
	return nil
}
