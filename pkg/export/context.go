// Package export holds the state shared by everything rendered into
// one chat log: entity caches backing mention resolution, asset URL
// rewriting and timestamp formatting. Context is the standard
// markdown.Resolver implementation.
package export

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/chatlogkit/discolog/pkg/discord"
)

// MemberFetcher resolves a member that is not cached yet, typically
// against an API client. Returning (nil, nil) marks the member
// unknown; the miss is cached either way.
type MemberFetcher func(ctx context.Context, id discord.Snowflake) (*discord.Member, error)

// AssetRewriter maps a remote asset URL to its exported location.
type AssetRewriter func(ctx context.Context, url string) (string, error)

// Context caches guild entities for the duration of an export and
// resolves lookups for the renderers. It is safe for concurrent use;
// population is idempotent and duplicate fetches are tolerated, the
// last stored value winning.
type Context struct {
	// NormalizeToUTC renders timestamps in UTC instead of local time.
	NormalizeToUTC bool

	// FetchMember, when set, backs cache misses on member lookups.
	FetchMember MemberFetcher

	// RewriteAsset, when set, redirects asset URLs. Failures fall
	// back to the original URL.
	RewriteAsset AssetRewriter

	mu       sync.RWMutex
	members  map[discord.Snowflake]*discord.Member
	channels map[discord.Snowflake]*discord.Channel
	roles    map[discord.Snowflake]*discord.Role
}

// NewContext returns an empty context with no fetcher or rewriter.
func NewContext() *Context {
	return &Context{
		members:  make(map[discord.Snowflake]*discord.Member),
		channels: make(map[discord.Snowflake]*discord.Channel),
		roles:    make(map[discord.Snowflake]*discord.Role),
	}
}

// PutChannel caches a channel.
func (c *Context) PutChannel(ch discord.Channel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.channels[ch.ID] = &ch
}

// PutRole caches a role.
func (c *Context) PutRole(r discord.Role) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.roles[r.ID] = &r
}

// PutMember caches a member, replacing any previous entry.
func (c *Context) PutMember(m discord.Member) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.members[m.ID()] = &m
}

// PopulateMember seeds the cache for a user already known from the
// message stream, falling back to a synthetic member when the fetch
// comes back empty.
func (c *Context) PopulateMember(ctx context.Context, user discord.User) error {
	c.mu.RLock()
	_, ok := c.members[user.ID]
	c.mu.RUnlock()
	if ok {
		return nil
	}

	member, err := c.fetch(ctx, user.ID)
	if err != nil {
		return err
	}
	if member == nil {
		fallback := discord.FallbackMember(user)
		member = &fallback
	}

	c.mu.Lock()
	c.members[user.ID] = member
	c.mu.Unlock()
	return nil
}

// ResolveMember implements markdown.Resolver. A miss is fetched once
// and then cached, including negative results.
func (c *Context) ResolveMember(ctx context.Context, id discord.Snowflake) (*discord.Member, error) {
	c.mu.RLock()
	member, ok := c.members[id]
	c.mu.RUnlock()
	if ok {
		return member, nil
	}

	member, err := c.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.members[id] = member
	c.mu.Unlock()
	return member, nil
}

func (c *Context) fetch(ctx context.Context, id discord.Snowflake) (*discord.Member, error) {
	if c.FetchMember == nil {
		return nil, nil
	}
	return c.FetchMember(ctx, id)
}

// ResolveChannel implements markdown.Resolver.
func (c *Context) ResolveChannel(id discord.Snowflake) *discord.Channel {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.channels[id]
}

// ResolveRole implements markdown.Resolver.
func (c *Context) ResolveRole(id discord.Snowflake) *discord.Role {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.roles[id]
}

// ResolveAssetURL implements markdown.Resolver. Without a rewriter,
// and on any rewrite failure, the URL passes through unchanged.
func (c *Context) ResolveAssetURL(ctx context.Context, url string) string {
	if c.RewriteAsset == nil {
		return url
	}
	rewritten, err := c.RewriteAsset(ctx, url)
	if err != nil {
		return url
	}
	return rewritten
}

// UserRoles returns the cached roles of a user, highest position
// first. Unknown users and unknown role ids yield nothing.
func (c *Context) UserRoles(id discord.Snowflake) []discord.Role {
	c.mu.RLock()
	defer c.mu.RUnlock()

	member := c.members[id]
	if member == nil {
		return nil
	}
	var roles []discord.Role
	for _, rid := range member.RoleIDs {
		if r := c.roles[rid]; r != nil {
			roles = append(roles, *r)
		}
	}
	sort.SliceStable(roles, func(i, j int) bool {
		return roles[i].Position > roles[j].Position
	})
	return roles
}

// UserColor returns the color of the highest colored role of a user,
// or "" when none applies.
func (c *Context) UserColor(id discord.Snowflake) string {
	for _, role := range c.UserRoles(id) {
		if role.Color != "" {
			return role.Color
		}
	}
	return ""
}

// Timestamp style tokens mapped to Go reference layouts. The g style
// is the default short date-time.
var timestampLayouts = map[byte]string{
	't': "15:04",
	'T': "15:04:05",
	'd': "01/02/2006",
	'D': "January 02, 2006",
	'f': "January 02, 2006 15:04",
	'F': "Monday, January 02, 2006 15:04",
	'g': "01/02/2006 15:04",
}

// FormatTimestamp implements markdown.Resolver. Unknown styles fall
// back to g.
func (c *Context) FormatTimestamp(t time.Time, style byte) string {
	layout, ok := timestampLayouts[style]
	if !ok {
		layout = timestampLayouts['g']
	}
	if c.NormalizeToUTC {
		t = t.UTC()
	} else {
		t = t.Local()
	}
	return t.Format(layout)
}
