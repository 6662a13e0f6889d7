package moderation

// ModerationError is a custom error type for moderation failures
type ModerationError string

// Error implements the error interface
func (e ModerationError) Error() string {
	return string(e)
}

const (
	ErrUnknownAction ModerationError = "unknown moderation action"
)
