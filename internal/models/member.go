package models

import "fmt"

// Member represents a user inside a guild
type Member struct {
	// ID is the Discord user ID
	ID string

	// Username is the account username
	Username string

	// Discriminator is the legacy four digit tag, "0" or empty for migrated accounts
	Discriminator string

	// Bot marks automated accounts
	Bot bool
}

// Tag returns the username with its discriminator when the account still has one
func (m *Member) Tag() string {
	if m.Discriminator == "" || m.Discriminator == "0" {
		return m.Username
	}
	return fmt.Sprintf("%s#%s", m.Username, m.Discriminator)
}

// Mention returns the chat mention for the member
func (m *Member) Mention() string {
	return MentionUser(m.ID)
}

// MentionUser returns the chat mention for a user ID
func MentionUser(userID string) string {
	return fmt.Sprintf("<@%s>", userID)
}
