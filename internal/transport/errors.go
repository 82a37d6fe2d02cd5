package transport

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNetwork marks failures where the request never produced a response.
// The underlying cause is wrapped alongside it.
var ErrNetwork = errors.New("network failure")

// StatusError is a 4xx/5xx response. Fields carries the structured
// validation messages from the response body when the API sent them.
type StatusError struct {
	Code    int
	Message string
	Fields  []string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api returned %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("api returned %d", e.Code)
}

// DecodeError is a response body that did not match the expected shape
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsStatus reports whether err is a StatusError with the given code
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}

// IsUnauthorized reports whether err is a 401 response
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}
