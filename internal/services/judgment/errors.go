package judgment

// JudgmentError is a custom error type for judgment flow failures
type JudgmentError string

// Error implements the error interface
func (e JudgmentError) Error() string {
	return string(e)
}

const (
	ErrActorNotFound JudgmentError = "command author could not be resolved"
)
