package webhook

// WebhookError is a custom error type for delivery failures
type WebhookError string

// Error implements the error interface
func (e WebhookError) Error() string {
	return string(e)
}

const (
	ErrUnexpectedStatus WebhookError = "webhook returned a non-2xx status"
	ErrInvalidURL       WebhookError = "webhook URL is required"
)
