package extraction

import "fmt"

// Error represents a document that cannot be decoded or parsed: corrupted
// archives, password-protected files, or files with no extractable text.
// It is surfaced to the caller immediately and never retried internally.
type Error struct {
	Filename string
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Filename != "" {
		msg = fmt.Sprintf("%s: %s", e.Filename, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("extraction failed: %s", msg)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// UnsupportedTypeError represents a content type no extractor handles.
type UnsupportedTypeError struct {
	ContentType string
	Filename    string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported document type %q (%s)", e.ContentType, e.Filename)
}
