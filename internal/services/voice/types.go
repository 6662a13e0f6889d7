package voice

import (
	"log/slog"

	"github.com/KirkDiggler/voicewatcher/internal/common/clock"
	"github.com/KirkDiggler/voicewatcher/internal/platform"
	"github.com/KirkDiggler/voicewatcher/internal/services/webhook"
)

// Config holds the watcher's dependencies
type Config struct {
	// MonitoredChannelID is the voice channel whose joins are reported
	MonitoredChannelID string

	Directory  platform.Directory
	Dispatcher webhook.Dispatcher
	Clock      clock.Clock
	Logger     *slog.Logger
}
