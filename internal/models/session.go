package models

import "fmt"

// SessionKey identifies one judgment flow: a requester inside a channel
type SessionKey struct {
	// ChannelID is the text channel the flow runs in
	ChannelID string

	// UserID is the user who started the flow
	UserID string
}

// String renders the key as channel:user
func (k SessionKey) String() string {
	return fmt.Sprintf("%s:%s", k.ChannelID, k.UserID)
}
