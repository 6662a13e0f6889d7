package models

// ChannelMessage is a text message received from the gateway
type ChannelMessage struct {
	GuildID   string
	ChannelID string
	MessageID string
	AuthorID  string
	Content   string

	// AuthorIsBot marks messages posted by automated accounts
	AuthorIsBot bool
}

// SessionKey returns the flow identity of the message author in its channel
func (m *ChannelMessage) SessionKey() SessionKey {
	return SessionKey{ChannelID: m.ChannelID, UserID: m.AuthorID}
}

// VoiceStateChange is a voice state transition for one user.
// Empty channel IDs mean "not connected".
type VoiceStateChange struct {
	GuildID         string
	UserID          string
	BeforeChannelID string
	AfterChannelID  string

	// Member is the member snapshot carried by the event, when the gateway sent one
	Member *Member
}
