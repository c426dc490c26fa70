package markdown

import (
	"context"
	"fmt"
)

// Visitor walks a parsed node tree. Hooks take a context because
// renderers resolve mentions and assets through lookups that may
// block; returning an error aborts the walk.
type Visitor interface {
	VisitText(ctx context.Context, n TextNode) error
	VisitFormatting(ctx context.Context, n FormattingNode) error
	VisitHeading(ctx context.Context, n HeadingNode) error
	VisitList(ctx context.Context, n ListNode) error
	VisitListItem(ctx context.Context, n ListItemNode) error
	VisitInlineCodeBlock(ctx context.Context, n InlineCodeBlockNode) error
	VisitMultiLineCodeBlock(ctx context.Context, n MultiLineCodeBlockNode) error
	VisitLink(ctx context.Context, n LinkNode) error
	VisitEmoji(ctx context.Context, n EmojiNode) error
	VisitMention(ctx context.Context, n MentionNode) error
	VisitTimestamp(ctx context.Context, n TimestampNode) error
}

// Visit dispatches a single node to the matching visitor hook.
func Visit(ctx context.Context, v Visitor, n Node) error {
	switch n := n.(type) {
	case TextNode:
		return v.VisitText(ctx, n)
	case FormattingNode:
		return v.VisitFormatting(ctx, n)
	case HeadingNode:
		return v.VisitHeading(ctx, n)
	case ListNode:
		return v.VisitList(ctx, n)
	case ListItemNode:
		return v.VisitListItem(ctx, n)
	case InlineCodeBlockNode:
		return v.VisitInlineCodeBlock(ctx, n)
	case MultiLineCodeBlockNode:
		return v.VisitMultiLineCodeBlock(ctx, n)
	case LinkNode:
		return v.VisitLink(ctx, n)
	case EmojiNode:
		return v.VisitEmoji(ctx, n)
	case MentionNode:
		return v.VisitMention(ctx, n)
	case TimestampNode:
		return v.VisitTimestamp(ctx, n)
	default:
		return fmt.Errorf("markdown: unknown node type %T", n)
	}
}

// VisitAll visits a node sequence in order, stopping at the first
// error.
func VisitAll(ctx context.Context, v Visitor, nodes []Node) error {
	for _, n := range nodes {
		if err := Visit(ctx, v, n); err != nil {
			return err
		}
	}
	return nil
}

// VisitChildren recurses into a container node's children, the
// default behavior for container hooks. Leaves are a no-op.
func VisitChildren(ctx context.Context, v Visitor, n Node) error {
	if list, ok := n.(ListNode); ok {
		for _, item := range list.Items {
			if err := v.VisitListItem(ctx, item); err != nil {
				return err
			}
		}
		return nil
	}
	return VisitAll(ctx, v, NodeChildren(n))
}
