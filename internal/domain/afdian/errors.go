package afdian

import (
	"errors"
	"fmt"
)

var (
	ErrAPINotAvailable = errors.New("afdian: api not available")
	ErrMissingToken    = errors.New("afdian: bot has no api token")
	ErrNetwork         = errors.New("afdian: network error")
)

type ParseReason string

const (
	ParseEmptyBody     ParseReason = "empty body"
	ParseNotJSON       ParseReason = "body is not valid json"
	ParseNotObject     ParseReason = "json body is not an object"
	ParseNoShapeMatch  ParseReason = "body matches no known response shape"
	ParseShapeMismatch ParseReason = "body does not match the requested shape"
)

// ParseError reports a body that could not be turned into a known payload.
// Body keeps the raw bytes for diagnostics.
type ParseError struct {
	Reason ParseReason
	Body   []byte
	Cause  error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("afdian: parse response: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("afdian: parse response: %s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// APINotAvailableError is returned before any network call for endpoints
// outside the open API whitelist.
type APINotAvailableError struct {
	Endpoint string
}

func (e *APINotAvailableError) Error() string {
	return fmt.Sprintf("afdian: unsupported api %q", e.Endpoint)
}

func (e *APINotAvailableError) Is(target error) bool {
	return target == ErrAPINotAvailable
}

// ActionFailed is a failed signed call: either the platform answered with a
// non-200 HTTP status, or it answered with an error envelope.
type ActionFailed struct {
	Endpoint   string
	StatusCode int
	Code       int
	Message    string
	Explain    string
	Debug      string
	Body       []byte
}

func (e *ActionFailed) Error() string {
	msg := fmt.Sprintf("afdian: %s failed: status=%d", e.Endpoint, e.StatusCode)
	if e.Code != 0 {
		msg += fmt.Sprintf(" ec=%d em=%q", e.Code, e.Message)
	}
	if e.Explain != "" {
		msg += fmt.Sprintf(" explain=%q", e.Explain)
	}
	return msg
}

// IsRemote tells a business error envelope from a transport level failure.
func (e *ActionFailed) IsRemote() bool {
	return e.Code != 0
}
