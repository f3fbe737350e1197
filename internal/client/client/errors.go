package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrMalformedResponse = errors.New("malformed response")
)

// APIError is a non-2xx answer from the API. Message is the "message" field
// of the response body, when the API sent one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// UserMessage returns the message the API meant for the user.
func (e *APIError) UserMessage() string { return e.Message }
