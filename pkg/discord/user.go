package discord

import "fmt"

// User is a Discord account. Discriminator 0 means the account has
// migrated to the unique-username system and carries no discriminator.
type User struct {
	ID            Snowflake
	IsBot         bool
	Discriminator int
	Name          string
	DisplayName   string
	AvatarURL     string
}

// FullName returns the historical name#discriminator form, or the bare
// name for accounts without a discriminator.
func (u User) FullName() string {
	if u.Discriminator > 0 {
		return fmt.Sprintf("%s#%04d", u.Name, u.Discriminator)
	}
	return u.Name
}

// EffectiveDisplayName prefers the global display name over the username.
func (u User) EffectiveDisplayName() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Name
}
