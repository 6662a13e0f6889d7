package models

import "time"

// DeferredKind identifies what a deferred action does when it comes due
type DeferredKind string

const (
	// DeferredKindUnmute lifts a temporary voice mute
	DeferredKindUnmute DeferredKind = "unmute"
)

// DeferredAction is a moderation reversal scheduled for later
type DeferredAction struct {
	ID        string       `json:"id"`
	Kind      DeferredKind `json:"kind"`
	GuildID   string       `json:"guild_id"`
	UserID    string       `json:"user_id"`
	Reason    string       `json:"reason"`
	DueAt     time.Time    `json:"due_at"`
	CreatedAt time.Time    `json:"created_at"`
}
