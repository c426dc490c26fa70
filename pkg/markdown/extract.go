package markdown

// Extract collects every node of type T from the tree in document
// order, descending into container children and list items.
func Extract[T Node](nodes []Node) []T {
	var out []T
	var walk func(nodes []Node)
	walk = func(nodes []Node) {
		for _, n := range nodes {
			if hit, ok := n.(T); ok {
				out = append(out, hit)
			}
			if children := NodeChildren(n); children != nil {
				walk(children)
			}
			if list, ok := n.(ListNode); ok {
				for _, item := range list.Items {
					walk([]Node{item})
				}
			}
		}
	}
	walk(nodes)
	return out
}

// ExtractEmojis parses source with the full matcher set and returns
// all emoji nodes.
func ExtractEmojis(source string) []EmojiNode {
	return Extract[EmojiNode](Parse(source))
}

// ExtractLinks parses source with the full matcher set and returns
// all link nodes.
func ExtractLinks(source string) []LinkNode {
	return Extract[LinkNode](Parse(source))
}
