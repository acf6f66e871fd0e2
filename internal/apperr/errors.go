package apperr

import (
	"context"
	"errors"
	"fmt"
	"net"
)

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// NetworkError means the backend could not be reached at all
// (connection refused, DNS, reset).
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure calling %s: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

type TimeoutError struct {
	Endpoint string
	Err      error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request to %s timed out: %v", e.Endpoint, e.Err)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// HTTPStatusError carries a non-2xx status, or a 2xx body that reported an
// error in its payload.
type HTTPStatusError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *HTTPStatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s returned status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("%s returned status %d: %s", e.Endpoint, e.StatusCode, e.Message)
}

// EmptyResultError is raised when at least one record was expected and none
// came back.
type EmptyResultError struct {
	What string
}

func (e *EmptyResultError) Error() string {
	if e.What == "" {
		return "no results returned"
	}
	return "no results returned for " + e.What
}

func NewEmptyResult(what string) *EmptyResultError {
	return &EmptyResultError{What: what}
}

type Kind string

const (
	KindNone       Kind = ""
	KindValidation Kind = "validation"
	KindNetwork    Kind = "network"
	KindTimeout    Kind = "timeout"
	KindHTTPStatus Kind = "http_status"
	KindEmpty      Kind = "empty_result"
	KindCanceled   Kind = "canceled"
	KindUnknown    Kind = "unknown"
)

// Classify reports which class of failure err belongs to.
func Classify(err error) Kind {
	if err == nil {
		return KindNone
	}

	var (
		te *TimeoutError
		ne *NetworkError
		he *HTTPStatusError
		ee *EmptyResultError
		ve *ValidationError
	)
	switch {
	case errors.As(err, &te):
		return KindTimeout
	case errors.As(err, &ne):
		return KindNetwork
	case errors.As(err, &he):
		return KindHTTPStatus
	case errors.As(err, &ee):
		return KindEmpty
	case errors.As(err, &ve):
		return KindValidation
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.Is(err, context.Canceled):
		return KindCanceled
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return KindTimeout
		}
		return KindNetwork
	}
	return KindUnknown
}

// Recoverable is true for every failure the dashboard degrades from by
// switching to synthetic data.
func Recoverable(err error) bool {
	switch Classify(err) {
	case KindNetwork, KindTimeout, KindHTTPStatus, KindEmpty, KindUnknown:
		return true
	}
	return false
}
