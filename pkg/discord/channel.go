package discord

import "strings"

// ChannelKind mirrors the wire values of the Discord channel "type" field.
type ChannelKind int

const (
	ChannelGuildText ChannelKind = iota
	ChannelDirectText
	ChannelGuildVoice
	ChannelDirectGroupText
	ChannelGuildCategory
	ChannelGuildNews

	ChannelGuildNewsThread    ChannelKind = 10
	ChannelGuildPublicThread  ChannelKind = 11
	ChannelGuildPrivateThread ChannelKind = 12
	ChannelGuildStageVoice    ChannelKind = 13
	ChannelGuildDirectory     ChannelKind = 14
	ChannelGuildForum         ChannelKind = 15
)

// Channel is a guild channel, DM channel or thread.
type Channel struct {
	ID            Snowflake
	Kind          ChannelKind
	GuildID       Snowflake
	Parent        *Channel
	Name          string
	Position      int
	IconURL       string
	Topic         string
	IsArchived    bool
	LastMessageID Snowflake
}

// IsDirect reports whether the channel is a DM or group DM.
func (c Channel) IsDirect() bool {
	return c.Kind == ChannelDirectText || c.Kind == ChannelDirectGroupText
}

// IsVoice reports whether the channel carries audio.
func (c Channel) IsVoice() bool {
	return c.Kind == ChannelGuildVoice || c.Kind == ChannelGuildStageVoice
}

// IsCategory reports whether the channel is a grouping category.
func (c Channel) IsCategory() bool {
	return c.Kind == ChannelGuildCategory
}

// IsThread reports whether the channel is a thread.
func (c Channel) IsThread() bool {
	switch c.Kind {
	case ChannelGuildNewsThread, ChannelGuildPublicThread, ChannelGuildPrivateThread:
		return true
	default:
		return false
	}
}

// IsEmpty reports whether the channel has never had a message.
func (c Channel) IsEmpty() bool {
	return c.LastMessageID == SnowflakeZero
}

// Parents returns the chain of parent channels, nearest first.
func (c Channel) Parents() []*Channel {
	var parents []*Channel
	for cur := c.Parent; cur != nil; cur = cur.Parent {
		parents = append(parents, cur)
	}
	return parents
}

// HierarchicalName joins the parent chain and the channel name with " / ".
func (c Channel) HierarchicalName() string {
	parents := c.Parents()
	parts := make([]string, 0, len(parents)+1)
	for i := len(parents) - 1; i >= 0; i-- {
		parts = append(parts, parents[i].Name)
	}
	parts = append(parts, c.Name)
	return strings.Join(parts, " / ")
}
