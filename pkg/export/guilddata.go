package export

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chatlogkit/discolog/pkg/discord"
)

// GuildData is the offline guild metadata file: the channels, roles
// and members a rendered log resolves mentions against. The format
// mirrors the Discord wire shapes closely enough that an exported
// metadata dump converts mechanically.
type GuildData struct {
	Guild    GuildRecord     `yaml:"guild"`
	Channels []ChannelRecord `yaml:"channels"`
	Roles    []RoleRecord    `yaml:"roles"`
	Members  []MemberRecord  `yaml:"members"`
}

type GuildRecord struct {
	ID      int64  `yaml:"id"`
	Name    string `yaml:"name"`
	IconURL string `yaml:"icon_url,omitempty"`
}

type ChannelRecord struct {
	ID       int64  `yaml:"id"`
	Kind     int    `yaml:"kind"`
	Name     string `yaml:"name"`
	ParentID int64  `yaml:"parent_id,omitempty"`
	Position int    `yaml:"position,omitempty"`
	Topic    string `yaml:"topic,omitempty"`
}

type RoleRecord struct {
	ID       int64  `yaml:"id"`
	Name     string `yaml:"name"`
	Position int    `yaml:"position,omitempty"`
	Color    int    `yaml:"color,omitempty"`
}

type MemberRecord struct {
	ID            int64   `yaml:"id"`
	Name          string  `yaml:"name"`
	DisplayName   string  `yaml:"display_name,omitempty"`
	Nick          string  `yaml:"nick,omitempty"`
	Discriminator int     `yaml:"discriminator,omitempty"`
	IsBot         bool    `yaml:"bot,omitempty"`
	AvatarURL     string  `yaml:"avatar_url,omitempty"`
	RoleIDs       []int64 `yaml:"roles,omitempty"`
}

// ParseGuildData decodes guild metadata from YAML bytes.
func ParseGuildData(data []byte) (*GuildData, error) {
	gd := &GuildData{}
	if err := yaml.Unmarshal(data, gd); err != nil {
		return nil, fmt.Errorf("parse guild data: %w", err)
	}
	return gd, nil
}

// LoadGuildData reads and decodes a guild metadata file.
func LoadGuildData(path string) (*GuildData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read guild data: %w", err)
	}
	gd, err := ParseGuildData(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return gd, nil
}

// Apply seeds a context with the loaded entities. Channel parent
// references are linked where the parent appears in the same file.
func (gd *GuildData) Apply(c *Context) {
	byID := make(map[discord.Snowflake]*discord.Channel, len(gd.Channels))
	for _, cr := range gd.Channels {
		ch := &discord.Channel{
			ID:       discord.Snowflake(cr.ID),
			Kind:     discord.ChannelKind(cr.Kind),
			GuildID:  discord.Snowflake(gd.Guild.ID),
			Name:     cr.Name,
			Position: cr.Position,
			Topic:    cr.Topic,
		}
		byID[ch.ID] = ch
	}
	for _, cr := range gd.Channels {
		if cr.ParentID != 0 {
			byID[discord.Snowflake(cr.ID)].Parent = byID[discord.Snowflake(cr.ParentID)]
		}
	}
	for _, ch := range byID {
		c.PutChannel(*ch)
	}

	for _, rr := range gd.Roles {
		c.PutRole(discord.Role{
			ID:       discord.Snowflake(rr.ID),
			Name:     rr.Name,
			Position: rr.Position,
			Color:    discord.RoleColorFromInt(rr.Color),
		})
	}

	for _, mr := range gd.Members {
		roleIDs := make([]discord.Snowflake, 0, len(mr.RoleIDs))
		for _, rid := range mr.RoleIDs {
			roleIDs = append(roleIDs, discord.Snowflake(rid))
		}
		c.PutMember(discord.Member{
			User: discord.User{
				ID:            discord.Snowflake(mr.ID),
				Name:          mr.Name,
				DisplayName:   mr.DisplayName,
				Discriminator: mr.Discriminator,
				IsBot:         mr.IsBot,
				AvatarURL:     mr.AvatarURL,
			},
			Nick:    mr.Nick,
			RoleIDs: roleIDs,
		})
	}
}

// NewContextFromFile loads guild metadata and returns a context
// seeded with it.
func NewContextFromFile(path string) (*Context, error) {
	gd, err := LoadGuildData(path)
	if err != nil {
		return nil, err
	}
	c := NewContext()
	gd.Apply(c)
	return c, nil
}
