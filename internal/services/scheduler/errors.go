package scheduler

// SchedulerError is a custom error type for scheduler failures
type SchedulerError string

// Error implements the error interface
func (e SchedulerError) Error() string {
	return string(e)
}

const (
	ErrUnknownKind    SchedulerError = "no handler registered for deferred action kind"
	ErrInvalidGuildID SchedulerError = "guild ID is required"
	ErrInvalidUserID  SchedulerError = "user ID is required"
)
