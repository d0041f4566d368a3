package analysis

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyText = errors.New("task text is empty")

	// ErrMisconfigured means no collaborator credential is configured.
	ErrMisconfigured = errors.New("collaborator credential is not configured")

	// ErrCollaborator marks a failed collaborator call.
	ErrCollaborator = errors.New("collaborator call failed")

	// ErrInvalidJSON marks collaborator output that is not a JSON object.
	ErrInvalidJSON = errors.New("invalid JSON from model")
)

// GatewayError is a failure on the collaborator side of the request:
// the call itself failed (Kind == ErrCollaborator) or its output could not be
// decoded (Kind == ErrInvalidJSON).
type GatewayError struct {
	Kind error
	Err  error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

func (e *GatewayError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// SchemaError lists every field of the defaulted object that violates the
// TaskAnalysis shape.
type SchemaError struct {
	Fields []FieldError
}

func (e *SchemaError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return "schema validation failed: " + strings.Join(names, ", ")
}

// DueDateError reports a due_date that is not a valid ISO-8601 date-time.
type DueDateError struct {
	Value string
	Err   error
}

func (e *DueDateError) Error() string {
	return fmt.Sprintf("invalid due_date: %v", e.Err)
}

func (e *DueDateError) Unwrap() error {
	return e.Err
}
