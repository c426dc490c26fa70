package discord

import "github.com/chatlogkit/discolog/pkg/discord/emojiindex"

// Emoji is either a custom guild emoji (ID != nil, Name is the short
// name like "LUL") or a standard Unicode emoji (ID == nil, Name holds
// the literal character sequence).
type Emoji struct {
	ID         *Snowflake
	Name       string
	IsAnimated bool
}

// IsCustom reports whether the emoji is a custom guild emoji.
func (e Emoji) IsCustom() bool {
	return e.ID != nil
}

// Code returns the short code: the custom emoji's own name, or the
// indexed short code of a standard emoji ("slight_smile"). Standard
// emoji missing from the index fall back to their literal form.
func (e Emoji) Code() string {
	if e.IsCustom() {
		return e.Name
	}
	if code, ok := emojiindex.ToCode(e.Name); ok {
		return code
	}
	return e.Name
}

// ImageURL returns the CDN image for the emoji: Discord's emoji CDN
// for custom emoji, Twemoji for standard ones.
func (e Emoji) ImageURL() string {
	if e.IsCustom() {
		return CustomEmojiURL(*e.ID, e.IsAnimated)
	}
	return StandardEmojiURL(e.Name)
}
