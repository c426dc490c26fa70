package discord

// Member is a user's guild-scoped identity: nickname, guild avatar and
// role assignments layered over the underlying User.
type Member struct {
	User      User
	Nick      string
	AvatarURL string
	RoleIDs   []Snowflake
}

// ID returns the underlying user's id.
func (m Member) ID() Snowflake {
	return m.User.ID
}

// DisplayName returns the guild nickname when set, falling back to the
// user's own display name.
func (m Member) DisplayName() string {
	if m.Nick != "" {
		return m.Nick
	}
	return m.User.EffectiveDisplayName()
}

// FallbackMember wraps a bare user as a member with no guild-specific
// data, used when the member fetch fails but the user is known from a
// message payload.
func FallbackMember(user User) Member {
	return Member{User: user}
}
