package prompt

// PromptError is a custom error type for prompt failures
type PromptError string

// Error implements the error interface
func (e PromptError) Error() string {
	return string(e)
}

const (
	// ErrAlreadyWaiting is returned when the same author already has a pending prompt in the channel
	ErrAlreadyWaiting PromptError = "a reply is already awaited for this author in this channel"

	// ErrInvalidTimeout is returned when a prompt is awaited without a positive timeout
	ErrInvalidTimeout PromptError = "timeout must be positive"
)
