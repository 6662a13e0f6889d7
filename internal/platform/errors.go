package platform

// PlatformError is a custom error type for chat platform failures
type PlatformError string

// Error implements the error interface
func (e PlatformError) Error() string {
	return string(e)
}

const (
	// ErrForbidden is returned when the bot lacks the permission for a call
	ErrForbidden PlatformError = "missing permission"

	// ErrNotFound is returned when a guild, channel or member does not exist
	ErrNotFound PlatformError = "not found"
)
