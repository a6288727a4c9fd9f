package services

// ServiceError is a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

func newError(status int, msg string) *ServiceError {
	return &ServiceError{StatusCode: status, Message: msg}
}
