package parser

import (
	"errors"
	"fmt"
)

// ErrRemoteUnavailable indicates the remote path is not configured (no API
// key). The orchestrator treats it like any other remote failure.
var ErrRemoteUnavailable = errors.New("remote parser unavailable: no API key configured")

// RemoteCallError indicates the remote endpoint could not be reached or
// returned a non-success status. Status is 0 for transport-level failures,
// including timeouts.
type RemoteCallError struct {
	Status int
	Body   string
	Err    error
}

func (e *RemoteCallError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("remote call failed: %v", e.Err)
	}
	return fmt.Sprintf("remote call failed (status %d): %s", e.Status, e.Body)
}

func (e *RemoteCallError) Unwrap() error {
	return e.Err
}

// FormatError indicates the remote response carried no parseable JSON payload
// after response cleaning.
type FormatError struct {
	Raw string
	Err error
}

func (e *FormatError) Error() string {
	if e.Err == nil {
		return "remote response is not valid JSON"
	}
	return fmt.Sprintf("remote response is not valid JSON: %v (raw: %s)", e.Err, truncate(e.Raw, 200))
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// SchemaError indicates well-formed remote JSON that failed schema validation.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("remote response failed schema validation: %v", e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// ValidationError describes a single schema violation in a candidate result.
// Validation never yields a partial result.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid extraction result: %s", e.Reason)
	}
	return fmt.Sprintf("invalid extraction result: field %q %s", e.Field, e.Reason)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
