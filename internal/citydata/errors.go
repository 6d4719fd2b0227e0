package citydata

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks against the typed errors below
var (
	ErrFetch   = errors.New("fetch failed")
	ErrParse   = errors.New("malformed response")
	ErrNoMatch = errors.New("no matching city")
)

// FetchError is a transport failure or a non-success HTTP status
type FetchError struct {
	URL        string
	StatusCode int // 0 when the request never got a response
	Msg        string
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
	case e.Msg != "":
		return fmt.Sprintf("fetch %s: %s", e.URL, e.Msg)
	default:
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool { return target == ErrFetch }

// ParseError is a response body that is not the expected JSON envelope
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// NoMatchError means the data source has no entry for the requested city
type NoMatchError struct {
	City string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no entry for city %q", e.City)
}

func (e *NoMatchError) Is(target error) bool { return target == ErrNoMatch }

// Kind names the error class for logging
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoMatch):
		return "no_match"
	case errors.Is(err, ErrParse):
		return "parse"
	case errors.Is(err, ErrFetch):
		return "fetch"
	default:
		return "unknown"
	}
}
