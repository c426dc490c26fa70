package markdown_test

import (
	"strings"
	"testing"

	"github.com/chatlogkit/discolog/pkg/markdown"
)

// textContent joins the text of all TextNodes in a sequence.
func textContent(nodes []markdown.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		if t, ok := n.(markdown.TextNode); ok {
			b.WriteString(t.Content)
		}
	}
	return b.String()
}

func firstFormatting(t *testing.T, nodes []markdown.Node) markdown.FormattingNode {
	t.Helper()
	for _, n := range nodes {
		if f, ok := n.(markdown.FormattingNode); ok {
			return f
		}
	}
	t.Fatalf("no FormattingNode in %#v", nodes)
	return markdown.FormattingNode{}
}

func TestParsePlainText(t *testing.T) {
	t.Parallel()

	nodes := markdown.Parse("hello world")
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes))
	}
	text, ok := nodes[0].(markdown.TextNode)
	if !ok {
		t.Fatalf("expected TextNode, got %T", nodes[0])
	}
	if text.Content != "hello world" {
		t.Errorf("content = %q", text.Content)
	}
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	if nodes := markdown.Parse(""); len(nodes) != 0 {
		t.Errorf("expected no nodes, got %#v", nodes)
	}
}

func TestParseFormatting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		kind   markdown.FormattingKind
		inner  string
	}{
		{"bold", "**bold**", markdown.Bold, "bold"},
		{"italic asterisk", "*italic*", markdown.Italic, "italic"},
		{"italic underscore", "_italic_", markdown.Italic, "italic"},
		{"underline", "__underline__", markdown.Underline, "underline"},
		{"strikethrough", "~~strike~~", markdown.Strikethrough, "strike"},
		{"spoiler", "||spoiler||", markdown.Spoiler, "spoiler"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			nodes := markdown.Parse(tt.source)
			if len(nodes) != 1 {
				t.Fatalf("expected 1 node, got %d: %#v", len(nodes), nodes)
			}
			f, ok := nodes[0].(markdown.FormattingNode)
			if !ok {
				t.Fatalf("expected FormattingNode, got %T", nodes[0])
			}
			if f.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", f.Kind, tt.kind)
			}
			if got := textContent(f.Children); got != tt.inner {
				t.Errorf("inner text = %q, want %q", got, tt.inner)
			}
		})
	}
}

func TestParseBoldItalic(t *testing.T) {
	t.Parallel()

	nodes := markdown.Parse("***bold italic***")
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes))
	}
	outer, ok := nodes[0].(markdown.FormattingNode)
	if !ok {
		t.Fatalf("expected FormattingNode, got %T", nodes[0])
	}
	if outer.Kind != markdown.Italic {
		t.Errorf("outer kind = %v, want Italic", outer.Kind)
	}
	inner := firstFormatting(t, outer.Children)
	if inner.Kind != markdown.Bold {
		t.Errorf("inner kind = %v, want Bold", inner.Kind)
	}
}

func TestParseMixedFormattingWithText(t *testing.T) {
	t.Parallel()

	nodes := markdown.Parse("hello **bold** world")
	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d: %#v", len(nodes), nodes)
	}
	if _, ok := nodes[0].(markdown.TextNode); !ok {
		t.Errorf("nodes[0] = %T, want TextNode", nodes[0])
	}
	if _, ok := nodes[1].(markdown.FormattingNode); !ok {
		t.Errorf("nodes[1] = %T, want FormattingNode", nodes[1])
	}
	if _, ok := nodes[2].(markdown.TextNode); !ok {
		t.Errorf("nodes[2] = %T, want TextNode", nodes[2])
	}
}

func TestParseInlineCode(t *testing.T) {
	t.Parallel()

	t.Run("single backtick", func(t *testing.T) {
		t.Parallel()

		nodes := markdown.Parse("`code`")
		if len(nodes) != 1 {
			t.Fatalf("expected 1 node, got %d", len(nodes))
		}
		code, ok := nodes[0].(markdown.InlineCodeBlockNode)
		if !ok {
			t.Fatalf("expected InlineCodeBlockNode, got %T", nodes[0])
		}
		if code.Code != "code" {
			t.Errorf("code = %q", code.Code)
		}
	})

	t.Run("double backtick", func(t *testing.T) {
		t.Parallel()

		nodes := markdown.Parse("``double``")
		if len(nodes) == 0 {
			t.Fatal("expected nodes")
		}
		code, ok := nodes[0].(markdown.InlineCodeBlockNode)
		if !ok {
			t.Fatalf("expected InlineCodeBlockNode, got %T", nodes[0])
		}
		if code.Code != "double" {
			t.Errorf("code = %q", code.Code)
		}
	})

	t.Run("content is not reparsed", func(t *testing.T) {
		t.Parallel()

		nodes := markdown.Parse("`**not bold**`")
		code, ok := nodes[0].(markdown.InlineCodeBlockNode)
		if !ok {
			t.Fatalf("expected InlineCodeBlockNode, got %T", nodes[0])
		}
		if code.Code != "**not bold**" {
			t.Errorf("code = %q", code.Code)
		}
	})
}

func TestParseMultiLineCode(t *testing.T) {
	t.Parallel()

	t.Run("with language", func(t *testing.T) {
		t.Parallel()

		nodes := markdown.Parse("```python\nprint('hello')\n```")
		if len(nodes) != 1 {
			t.Fatalf("expected 1 node, got %d", len(nodes))
		}
		code, ok := nodes[0].(markdown.MultiLineCodeBlockNode)
		if !ok {
			t.Fatalf("expected MultiLineCodeBlockNode, got %T", nodes[0])
		}
		if code.Language != "python" {
			t.Errorf("language = %q", code.Language)
		}
		if !strings.Contains(code.Code, "print") {
			t.Errorf("code = %q", code.Code)
		}
	})

	t.Run("without language", func(t *testing.T) {
		t.Parallel()

		nodes := markdown.Parse("```\nsome code\n```")
		code, ok := nodes[0].(markdown.MultiLineCodeBlockNode)
		if !ok {
			t.Fatalf("expected MultiLineCodeBlockNode, got %T", nodes[0])
		}
		if code.Language != "" {
			t.Errorf("language = %q, want empty", code.Language)
		}
		if code.Code != "some code" {
			t.Errorf("code = %q", code.Code)
		}
	})
}

func TestParseMentions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		kind   markdown.MentionKind
		id     int64
	}{
		{"user", "<@123456789>", markdown.MentionUser, 123456789},
		{"user with exclamation", "<@!123456789>", markdown.MentionUser, 123456789},
		{"channel", "<#987654321>", markdown.MentionChannel, 987654321},
		{"role", "<@&111222333>", markdown.MentionRole, 111222333},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			nodes := markdown.Parse(tt.source)
			if len(nodes) != 1 {
				t.Fatalf("expected 1 node, got %d", len(nodes))
			}
			mention, ok := nodes[0].(markdown.MentionNode)
			if !ok {
				t.Fatalf("expected MentionNode, got %T", nodes[0])
			}
			if mention.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", mention.Kind, tt.kind)
			}
			if mention.TargetID == nil || int64(*mention.TargetID) != tt.id {
				t.Errorf("target id = %v, want %d", mention.TargetID, tt.id)
			}
		})
	}

	t.Run("everyone", func(t *testing.T) {
		t.Parallel()

		nodes := markdown.Parse("@everyone")
		mention, ok := nodes[0].(markdown.MentionNode)
		if !ok || mention.Kind != markdown.MentionEveryone {
			t.Errorf("nodes[0] = %#v, want everyone mention", nodes[0])
		}
		if mention.TargetID != nil {
			t.Error("broadcast mention must have nil target")
		}
	})

	t.Run("here", func(t *testing.T) {
		t.Parallel()

		nodes := markdown.Parse("@here")
		mention, ok := nodes[0].(markdown.MentionNode)
		if !ok || mention.Kind != markdown.MentionHere {
			t.Errorf("nodes[0] = %#v, want here mention", nodes[0])
		}
	})
}

func TestParseCustomEmoji(t *testing.T) {
	t.Parallel()

	t.Run("static", func(t *testing.T) {
		t.Parallel()

		nodes := markdown.Parse("<:LUL:123456789>")
		if len(nodes) != 1 {
			t.Fatalf("expected 1 node, got %d", len(nodes))
		}
		emoji, ok := nodes[0].(markdown.EmojiNode)
		if !ok {
			t.Fatalf("expected EmojiNode, got %T", nodes[0])
		}
		if emoji.Name != "LUL" {
			t.Errorf("name = %q", emoji.Name)
		}
		if emoji.ID == nil || int64(*emoji.ID) != 123456789 {
			t.Errorf("id = %v", emoji.ID)
		}
		if emoji.IsAnimated {
			t.Error("emoji should not be animated")
		}
	})

	t.Run("animated", func(t *testing.T) {
		t.Parallel()

		nodes := markdown.Parse("<a:dance:123456789>")
		emoji, ok := nodes[0].(markdown.EmojiNode)
		if !ok {
			t.Fatalf("expected EmojiNode, got %T", nodes[0])
		}
		if !emoji.IsAnimated {
			t.Error("emoji should be animated")
		}
	})
}

func TestParseStandardEmoji(t *testing.T) {
	t.Parallel()

	nodes := markdown.Parse("\U0001F914")
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes))
	}
	emoji, ok := nodes[0].(markdown.EmojiNode)
	if !ok {
		t.Fatalf("expected EmojiNode, got %T", nodes[0])
	}
	if emoji.IsCustom() {
		t.Error("standard emoji must not be custom")
	}
	if emoji.Code() != "thinking" {
		t.Errorf("code = %q, want thinking", emoji.Code())
	}
}

func TestParseCodedEmoji(t *testing.T) {
	t.Parallel()

	t.Run("known code becomes emoji", func(t *testing.T) {
		t.Parallel()

		nodes := markdown.Parse(":thinking:")
		emoji, ok := nodes[0].(markdown.EmojiNode)
		if !ok {
			t.Fatalf("expected EmojiNode, got %T", nodes[0])
		}
		if emoji.Name != "\U0001F914" {
			t.Errorf("name = %q", emoji.Name)
		}
	})

	t.Run("unknown code stays literal", func(t *testing.T) {
		t.Parallel()

		nodes := markdown.Parse(":notarealemoji:")
		if len(nodes) != 1 {
			t.Fatalf("expected 1 node, got %d", len(nodes))
		}
		if _, ok := nodes[0].(markdown.TextNode); !ok {
			t.Fatalf("expected TextNode, got %T", nodes[0])
		}
	})
}

func TestParseGenderSymbolStaysText(t *testing.T) {
	t.Parallel()

	nodes := markdown.Parse("♀")
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes))
	}
	if _, ok := nodes[0].(markdown.TextNode); !ok {
		t.Errorf("expected TextNode, got %T", nodes[0])
	}
}

func TestParseLinks(t *testing.T) {
	t.Parallel()

	t.Run("auto link", func(t *testing.T) {
		t.Parallel()

		nodes := markdown.Parse("https://example.com")
		link, ok := nodes[0].(markdown.LinkNode)
		if !ok {
			t.Fatalf("expected LinkNode, got %T", nodes[0])
		}
		if link.URL != "https://example.com" {
			t.Errorf("url = %q", link.URL)
		}
		if textContent(link.Children) != "https://example.com" {
			t.Errorf("children = %#v", link.Children)
		}
	})

	t.Run("auto link drops trailing punctuation", func(t *testing.T) {
		t.Parallel()

		nodes := markdown.Parse("see https://example.com/docs.")
		links := markdown.Extract[markdown.LinkNode](nodes)
		if len(links) != 1 {
			t.Fatalf("expected 1 link, got %d", len(links))
		}
		if links[0].URL != "https://example.com/docs" {
			t.Errorf("url = %q", links[0].URL)
		}
	})

	t.Run("masked link", func(t *testing.T) {
		t.Parallel()

		nodes := markdown.Parse("[click here](https://example.com)")
		link, ok := nodes[0].(markdown.LinkNode)
		if !ok {
			t.Fatalf("expected LinkNode, got %T", nodes[0])
		}
		if link.URL != "https://example.com" {
			t.Errorf("url = %q", link.URL)
		}
		if textContent(link.Children) != "click here" {
			t.Errorf("title = %q", textContent(link.Children))
		}
	})

	t.Run("hidden link", func(t *testing.T) {
		t.Parallel()

		nodes := markdown.Parse("<https://example.com>")
		links := markdown.Extract[markdown.LinkNode](nodes)
		if len(links) != 1 {
			t.Fatalf("expected 1 link, got %d", len(links))
		}
		if links[0].URL != "https://example.com" {
			t.Errorf("url = %q", links[0].URL)
		}
	})
}

func TestParseHeadings(t *testing.T) {
	t.Parallel()

	t.Run("levels", func(t *testing.T) {
		t.Parallel()

		for level, source := range map[int]string{
			1: "# Heading\n",
			2: "## Heading\n",
			3: "### Heading\n",
		} {
			nodes := markdown.Parse(source)
			heading, ok := nodes[0].(markdown.HeadingNode)
			if !ok {
				t.Fatalf("%q: expected HeadingNode, got %T", source, nodes[0])
			}
			if heading.Level != level {
				t.Errorf("%q: level = %d, want %d", source, heading.Level, level)
			}
		}
	})

	t.Run("requires trailing newline", func(t *testing.T) {
		t.Parallel()

		nodes := markdown.Parse("# Heading")
		if _, ok := nodes[0].(markdown.TextNode); !ok {
			t.Errorf("expected TextNode, got %T", nodes[0])
		}
	})
}

func TestParseQuotes(t *testing.T) {
	t.Parallel()

	t.Run("single line", func(t *testing.T) {
		t.Parallel()

		nodes := markdown.Parse("> quoted text")
		quote, ok := nodes[0].(markdown.FormattingNode)
		if !ok || quote.Kind != markdown.Quote {
			t.Fatalf("expected quote, got %#v", nodes[0])
		}
		if textContent(quote.Children) != "quoted text" {
			t.Errorf("content = %q", textContent(quote.Children))
		}
	})

	t.Run("repeated lines fold into one quote", func(t *testing.T) {
		t.Parallel()

		nodes := markdown.Parse("> first\n> second\n")
		if len(nodes) != 1 {
			t.Fatalf("expected 1 node, got %d: %#v", len(nodes), nodes)
		}
		quote, ok := nodes[0].(markdown.FormattingNode)
		if !ok || quote.Kind != markdown.Quote {
			t.Fatalf("expected quote, got %#v", nodes[0])
		}
		content := textContent(quote.Children)
		if !strings.Contains(content, "first") || !strings.Contains(content, "second") {
			t.Errorf("content = %q", content)
		}
	})

	t.Run("multi quote consumes everything", func(t *testing.T) {
		t.Parallel()

		nodes := markdown.Parse(">>> first\nsecond")
		quote, ok := nodes[0].(markdown.FormattingNode)
		if !ok || quote.Kind != markdown.Quote {
			t.Fatalf("expected quote, got %#v", nodes[0])
		}
		content := textContent(quote.Children)
		if content != "first\nsecond" {
			t.Errorf("content = %q", content)
		}
	})

	t.Run("only at line start", func(t *testing.T) {
		t.Parallel()

		nodes := markdown.Parse("a*b*> q")
		for _, n := range nodes {
			if f, ok := n.(markdown.FormattingNode); ok && f.Kind == markdown.Quote {
				t.Fatalf("mid-line > must not start a quote: %#v", nodes)
			}
		}
		if got := textContent(nodes); !strings.Contains(got, "> q") {
			t.Errorf("text = %q", got)
		}
	})
}

func TestParseLists(t *testing.T) {
	t.Parallel()

	t.Run("bullets", func(t *testing.T) {
		t.Parallel()

		nodes := markdown.Parse("- item one\n- item two\n- item three")
		list, ok := nodes[0].(markdown.ListNode)
		if !ok {
			t.Fatalf("expected ListNode, got %T", nodes[0])
		}
		if len(list.Items) != 3 {
			t.Fatalf("expected 3 items, got %d", len(list.Items))
		}
		if got := textContent(list.Items[1].Children); got != "item two" {
			t.Errorf("item[1] = %q", got)
		}
	})

	t.Run("continuation lines join their item", func(t *testing.T) {
		t.Parallel()

		nodes := markdown.Parse("- first\n  second\n- third")
		list, ok := nodes[0].(markdown.ListNode)
		if !ok {
			t.Fatalf("expected ListNode, got %T", nodes[0])
		}
		if len(list.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(list.Items))
		}
		if got := textContent(list.Items[0].Children); !strings.Contains(got, "second") {
			t.Errorf("item[0] = %q", got)
		}
	})

	t.Run("asterisk bullets", func(t *testing.T) {
		t.Parallel()

		nodes := markdown.Parse("* one\n* two")
		list, ok := nodes[0].(markdown.ListNode)
		if !ok {
			t.Fatalf("expected ListNode, got %T", nodes[0])
		}
		if len(list.Items) != 2 {
			t.Errorf("expected 2 items, got %d", len(list.Items))
		}
	})
}

func TestParseTimestamps(t *testing.T) {
	t.Parallel()

	t.Run("default style", func(t *testing.T) {
		t.Parallel()

		nodes := markdown.Parse("<t:1234567890>")
		ts, ok := nodes[0].(markdown.TimestampNode)
		if !ok {
			t.Fatalf("expected TimestampNode, got %T", nodes[0])
		}
		if !ts.Valid {
			t.Error("timestamp should be valid")
		}
		if ts.Format != 0 {
			t.Errorf("format = %q, want default", ts.Format)
		}
		if ts.Instant.Unix() != 1234567890 {
			t.Errorf("instant = %v", ts.Instant)
		}
	})

	t.Run("explicit style", func(t *testing.T) {
		t.Parallel()

		nodes := markdown.Parse("<t:1234567890:f>")
		ts := nodes[0].(markdown.TimestampNode)
		if ts.Format != 'f' {
			t.Errorf("format = %q, want f", ts.Format)
		}
	})

	t.Run("relative collapses to default", func(t *testing.T) {
		t.Parallel()

		nodes := markdown.Parse("<t:1234567890:R>")
		ts := nodes[0].(markdown.TimestampNode)
		if !ts.Valid {
			t.Error("timestamp should be valid")
		}
		if ts.Format != 0 {
			t.Errorf("format = %q, want default", ts.Format)
		}
	})

	t.Run("unknown style is invalid", func(t *testing.T) {
		t.Parallel()

		nodes := markdown.Parse("<t:1234567890:x>")
		ts := nodes[0].(markdown.TimestampNode)
		if ts.Valid {
			t.Error("timestamp should be invalid")
		}
	})

	t.Run("unrepresentable epoch is invalid", func(t *testing.T) {
		t.Parallel()

		nodes := markdown.Parse("<t:99999999999999999:f>")
		ts := nodes[0].(markdown.TimestampNode)
		if ts.Valid {
			t.Error("timestamp should be invalid")
		}
	})
}

func TestParseEscapes(t *testing.T) {
	t.Parallel()

	t.Run("escaped asterisks never format", func(t *testing.T) {
		t.Parallel()

		nodes := markdown.Parse(`\*hi\*`)
		for _, n := range nodes {
			if _, ok := n.(markdown.FormattingNode); ok {
				t.Fatalf("escaped markup must stay literal: %#v", nodes)
			}
		}
		if got := textContent(nodes); got != "*hi*" {
			t.Errorf("text = %q, want *hi*", got)
		}
	})

	t.Run("shrug survives intact", func(t *testing.T) {
		t.Parallel()

		nodes := markdown.Parse(`¯\_(ツ)_/¯`)
		got := textContent(nodes)
		if !strings.Contains(got, "¯") || !strings.Contains(got, "ツ") || !strings.Contains(got, `\_`) {
			t.Errorf("text = %q", got)
		}
	})
}

func TestParseMinimal(t *testing.T) {
	t.Parallel()

	nodes := markdown.ParseMinimal("hello **bold** <@123>")

	var hasMention, hasFormatting bool
	for _, n := range nodes {
		switch n.(type) {
		case markdown.MentionNode:
			hasMention = true
		case markdown.FormattingNode:
			hasFormatting = true
		}
	}
	if !hasMention {
		t.Error("expected a mention node")
	}
	if hasFormatting {
		t.Error("minimal parse must not produce formatting")
	}
	if got := textContent(nodes); got != "hello **bold** " {
		t.Errorf("text = %q", got)
	}
}

func TestExtract(t *testing.T) {
	t.Parallel()

	t.Run("emojis", func(t *testing.T) {
		t.Parallel()

		emojis := markdown.ExtractEmojis("hello <:LUL:123> world <:KEK:456>")
		if len(emojis) != 2 {
			t.Fatalf("expected 2 emojis, got %d", len(emojis))
		}
		if emojis[0].Name != "LUL" || emojis[1].Name != "KEK" {
			t.Errorf("names = %q, %q", emojis[0].Name, emojis[1].Name)
		}
	})

	t.Run("links", func(t *testing.T) {
		t.Parallel()

		links := markdown.ExtractLinks("visit https://a.com and https://b.com")
		if len(links) != 2 {
			t.Fatalf("expected 2 links, got %d", len(links))
		}
		urls := map[string]bool{}
		for _, l := range links {
			urls[l.URL] = true
		}
		if !urls["https://a.com"] || !urls["https://b.com"] {
			t.Errorf("urls = %v", urls)
		}
	})

	t.Run("descends into nested markup", func(t *testing.T) {
		t.Parallel()

		emojis := markdown.ExtractEmojis("**bold <:LUL:123>**\n- item <:KEK:456>")
		if len(emojis) != 2 {
			t.Errorf("expected 2 emojis, got %d", len(emojis))
		}
	})
}
