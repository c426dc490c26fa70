package markdown

import (
	"context"
	"time"

	"github.com/chatlogkit/discolog/pkg/discord"
)

// Placeholders rendered when a lookup comes back empty. Misses never
// fail a render.
const (
	PlaceholderUnknownUser    = "Unknown"
	PlaceholderDeletedChannel = "deleted-channel"
	PlaceholderDeletedRole    = "deleted-role"
	PlaceholderInvalidDate    = "Invalid date"
)

// Resolver supplies the contextual lookups renderers need: entity
// resolution for mentions, asset URL rewriting for emoji images and
// timestamp formatting. export.Context is the standard
// implementation.
type Resolver interface {
	// ResolveMember returns the guild member for a user id, or nil
	// when the member is unknown. It may block on a backing fetch.
	ResolveMember(ctx context.Context, id discord.Snowflake) (*discord.Member, error)

	// ResolveChannel returns the channel for an id, or nil.
	ResolveChannel(id discord.Snowflake) *discord.Channel

	// ResolveRole returns the role for an id, or nil.
	ResolveRole(id discord.Snowflake) *discord.Role

	// ResolveAssetURL rewrites a remote asset URL, typically to a
	// local download. On any failure the input comes back unchanged.
	ResolveAssetURL(ctx context.Context, url string) string

	// FormatTimestamp renders an instant in one of the Discord
	// timestamp styles t, T, d, D, f, F or the default g.
	FormatTimestamp(t time.Time, style byte) string
}
