package scrape

import "fmt"

const UNKNOWN_ERROR = "Unknown error"

// RequestError is a transport failure or a non-2xx response from the service.
type RequestError struct {
	// StatusCode is 0 when no response was received.
	StatusCode int
	Err        error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed: %s", e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// ServiceError means the service answered but reported success: false.
// Message is the service's own error text.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}
