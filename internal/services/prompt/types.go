package prompt

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/voicewatcher/internal/common/clock"
	"github.com/KirkDiggler/voicewatcher/internal/platform"
)

// Config holds the dependencies of the prompter
type Config struct {
	Messenger platform.Messenger
	Clock     clock.Clock
	Logger    *slog.Logger

	// BufferSize is how many replies may queue for one waiter before Deliver drops them
	BufferSize int
}

// AwaitInput describes one question put to one author
type AwaitInput struct {
	ChannelID string
	AuthorID  string

	// Prompt is posted to the channel once the waiter is registered. Optional.
	Prompt string

	// Timeout is restarted after every reply, valid or not
	Timeout time.Duration

	// InvalidReply is posted when a reply is rejected. Optional.
	InvalidReply string
}
