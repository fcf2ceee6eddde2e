package services

// Error is a domain rule violation the API reports with a specific status
// and machine-readable code. Anything else bubbling out of a service is an
// unexpected failure and becomes a generic 500 at the handler.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

func NewError(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}
