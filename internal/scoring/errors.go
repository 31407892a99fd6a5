package scoring

import "fmt"

// APICallError represents a failed call to the Gemini API. The hybrid layer
// treats it as a fallback trigger, never as a user-visible error.
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

// ResponseError represents a Gemini scoring response that is not usable:
// truncation, malformed JSON, or schema violations.
type ResponseError struct {
	Message   string
	Truncated bool
	Cause     error
}

func (e *ResponseError) Error() string {
	msg := e.Message
	if e.Truncated {
		msg = "truncated response: " + msg
	}
	if e.Cause != nil {
		return fmt.Sprintf("scoring response error: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("scoring response error: %s", msg)
}

func (e *ResponseError) Unwrap() error {
	return e.Cause
}
