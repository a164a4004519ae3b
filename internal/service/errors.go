package service

// ValidationError is a user-correctable request error. Its message is
// surfaced verbatim in the HTTP response body.
type ValidationError struct {
	Message string
}

// Error implements error.
func (e *ValidationError) Error() string {
	return e.Message
}
