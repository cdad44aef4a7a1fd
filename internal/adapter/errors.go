package adapter

import (
	"errors"
)

var (
	// ErrTransport means the backend could not be reached or the connection
	// broke mid-exchange.
	ErrTransport = errors.New("recommendation server unreachable")
	// ErrTimeout means the caller's deadline expired before an answer arrived.
	ErrTimeout = errors.New("recommendation request timed out")
	// ErrMalformedPayload means a 2xx body could not be decoded.
	ErrMalformedPayload = errors.New("malformed response payload")
	// ErrUnexpectedStatus wraps every non-2xx answer.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrUnprocessable       = errors.New("unprocessable request")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

const genericBackendMessage = "the recommendation service reported an error"

// BackendError is an application-level failure reported by the backend
// inside a well-formed response.
type BackendError struct {
	Message string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return genericBackendMessage
	}
	return e.Message
}

// NewBackendError returns a [BackendError] carrying msg.
func NewBackendError(msg string) *BackendError {
	return &BackendError{Message: msg}
}
