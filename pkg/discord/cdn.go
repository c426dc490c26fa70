package discord

import (
	"fmt"
	"strconv"
	"strings"
)

// CDN URL helpers for Discord-hosted and Twemoji-hosted images.

const cdnBase = "https://cdn.discordapp.com"

// StandardEmojiURL returns the Twemoji SVG URL for a standard Unicode
// emoji literal. The variation selector (U+FE0F) is dropped from the
// codepoint sequence unless a zero-width joiner is present, matching
// Twemoji's asset naming.
func StandardEmojiURL(emoji string) string {
	runes := []rune(emoji)

	hasZWJ := false
	for _, r := range runes {
		if r == 0x200D {
			hasZWJ = true
			break
		}
	}

	var parts []string
	for _, r := range runes {
		if r == 0xFE0F && !hasZWJ {
			continue
		}
		parts = append(parts, strconv.FormatInt(int64(r), 16))
	}

	return "https://cdn.jsdelivr.net/gh/twitter/twemoji@latest/assets/svg/" +
		strings.Join(parts, "-") + ".svg"
}

// CustomEmojiURL returns the CDN URL for a custom guild emoji.
func CustomEmojiURL(id Snowflake, animated bool) string {
	ext := "png"
	if animated {
		ext = "gif"
	}
	return fmt.Sprintf("%s/emojis/%s.%s", cdnBase, id, ext)
}

// GuildIconURL returns the CDN URL for a guild icon.
func GuildIconURL(guildID Snowflake, iconHash string, size int) string {
	return fmt.Sprintf("%s/icons/%s/%s.%s?size=%d", cdnBase, guildID, iconHash, hashExt(iconHash), size)
}

// ChannelIconURL returns the CDN URL for a group channel icon.
func ChannelIconURL(channelID Snowflake, iconHash string, size int) string {
	return fmt.Sprintf("%s/channel-icons/%s/%s.%s?size=%d", cdnBase, channelID, iconHash, hashExt(iconHash), size)
}

// UserAvatarURL returns the CDN URL for a user avatar.
func UserAvatarURL(userID Snowflake, avatarHash string, size int) string {
	return fmt.Sprintf("%s/avatars/%s/%s.%s?size=%d", cdnBase, userID, avatarHash, hashExt(avatarHash), size)
}

// MemberAvatarURL returns the CDN URL for a guild-specific member avatar.
func MemberAvatarURL(guildID, userID Snowflake, avatarHash string, size int) string {
	return fmt.Sprintf("%s/guilds/%s/users/%s/avatars/%s.%s?size=%d",
		cdnBase, guildID, userID, avatarHash, hashExt(avatarHash), size)
}

// FallbackAvatarURL returns one of the default embed avatars.
func FallbackAvatarURL(index int) string {
	return fmt.Sprintf("%s/embed/avatars/%d.png", cdnBase, index)
}

// hashExt picks gif for animated asset hashes (prefixed "a_"), png otherwise.
func hashExt(hash string) string {
	if strings.HasPrefix(hash, "a_") {
		return "gif"
	}
	return "png"
}
