package errors

import "fmt"

// HTTPError is an error that already knows its HTTP status and the detail
// to send back to the caller.
type HTTPError struct {
	StatusCode int
	Message    string
	Detail     any
}

// NewHTTPError returns an HTTPError whose detail is the message itself.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message, Detail: message}
}

// NewHTTPErrorWithDetail returns an HTTPError carrying a structured detail,
// e.g. a list of field errors.
func NewHTTPErrorWithDetail(statusCode int, message string, detail any) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message, Detail: detail}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}
