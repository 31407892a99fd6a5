package parsing

import "fmt"

// APICallError represents a failed call to the Gemini API: timeout, quota,
// auth, or transport failure. The hybrid layer treats it as a fallback
// trigger, never as a user-visible error.
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ParseError represents a Gemini response that is not usable: invalid JSON
// after fence stripping, schema violations, or token-limit truncation.
// Truncated responses are never partially trusted.
type ParseError struct {
	Message   string
	Truncated bool
	RawPrefix string // first bytes of the raw response, for diagnosis
	Cause     error
}

func (e *ParseError) Error() string {
	msg := e.Message
	if e.Truncated {
		msg = "truncated response: " + msg
	}
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", msg)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
