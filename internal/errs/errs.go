// Package errs defines the failure kinds a pipeline run can surface. The
// HTTP layer maps these to statuses with errors.As; the pipeline itself
// never decides status codes.
package errs

import "fmt"

// UpstreamFetch is a transport-level failure or non-success status from an
// outbound call. Category is set for listing fetches, empty for the detail
// API.
type UpstreamFetch struct {
	URL      string
	Category string
	Err      error
}

func (e *UpstreamFetch) Error() string {
	if e.Category != "" {
		return fmt.Sprintf("fetching %q listing from %s: %v", e.Category, e.URL, e.Err)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *UpstreamFetch) Unwrap() error { return e.Err }

// MalformedResponse means an upstream body arrived but was not shaped as
// expected: invalid JSON, or a missing envelope key or nested field.
type MalformedResponse struct {
	URL    string
	Reason string
	Err    error
}

func (e *MalformedResponse) Error() string {
	msg := "malformed upstream response"
	if e.URL != "" {
		msg = fmt.Sprintf("malformed response from %s", e.URL)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", msg, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", msg, e.Reason)
}

func (e *MalformedResponse) Unwrap() error { return e.Err }

// GameNotFound means the resolver scanned every category without an exact
// name match.
type GameNotFound struct {
	Name string
}

func (e *GameNotFound) Error() string {
	return fmt.Sprintf("no top seller named %q (name matching is case- and whitespace-sensitive)", e.Name)
}
