package discord_test

import (
	"testing"

	"github.com/chatlogkit/discolog/pkg/discord"
)

func TestEmojiCode(t *testing.T) {
	t.Parallel()

	id := discord.Snowflake(123)
	custom := discord.Emoji{ID: &id, Name: "LUL"}
	if !custom.IsCustom() {
		t.Error("emoji with id must be custom")
	}
	if got := custom.Code(); got != "LUL" {
		t.Errorf("Code() = %q", got)
	}

	standard := discord.Emoji{Name: "\U0001F914"}
	if standard.IsCustom() {
		t.Error("emoji without id must not be custom")
	}
	if got := standard.Code(); got != "thinking" {
		t.Errorf("Code() = %q", got)
	}

	// Unindexed standard emoji keep their literal form.
	obscure := discord.Emoji{Name: "\U0001FAF6"}
	if got := obscure.Code(); got != "\U0001FAF6" {
		t.Errorf("Code() = %q", got)
	}
}

func TestEmojiImageURL(t *testing.T) {
	t.Parallel()

	id := discord.Snowflake(123)
	animated := discord.Emoji{ID: &id, Name: "dance", IsAnimated: true}
	if got := animated.ImageURL(); got != "https://cdn.discordapp.com/emojis/123.gif" {
		t.Errorf("ImageURL() = %q", got)
	}

	standard := discord.Emoji{Name: "\U0001F914"}
	if got := standard.ImageURL(); got != "https://cdn.jsdelivr.net/gh/twitter/twemoji@latest/assets/svg/1f914.svg" {
		t.Errorf("ImageURL() = %q", got)
	}
}
