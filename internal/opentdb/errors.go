package opentdb

import (
	"encoding/json"
	"fmt"
)

// ErrUnavailable indicates the trivia API could not be reached: connection
// failure, timeout, or the request being cancelled mid-flight.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	return fmt.Sprintf("trivia API unavailable: %v", e.Err)
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrBadStatus indicates the API returned a non-success HTTP status.
type ErrBadStatus struct {
	StatusCode int
}

func (e *ErrBadStatus) Error() string {
	return fmt.Sprintf("trivia API returned HTTP %d", e.StatusCode)
}

// ErrBadData indicates the API answered successfully but the body was not
// usable: unparseable JSON, a shape that fails schema validation, or a
// non-zero API response code.
type ErrBadData struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrBadData) Error() string {
	return fmt.Sprintf("bad trivia API response: %v", e.Err)
}

func (e *ErrBadData) Unwrap() error { return e.Err }
