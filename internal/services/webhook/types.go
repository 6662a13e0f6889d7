package webhook

import (
	"log/slog"
	"time"
)

// Config holds the endpoint and transport settings
type Config struct {
	URL    string
	Secret string

	// InsecureSkipVerify turns off certificate verification
	InsecureSkipVerify bool

	// DisableRedirects counts 3xx responses as failures instead of following them
	DisableRedirects bool

	// Timeout bounds each attempt
	Timeout time.Duration

	Policy  *RetryPolicy
	Sleeper Sleeper
	Logger  *slog.Logger
}

// Stats counts Send outcomes
type Stats struct {
	Delivered int64 `json:"delivered"`
	Failed    int64 `json:"failed"`
}
