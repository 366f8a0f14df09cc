package core

import (
	"fmt"
)

// Sentinel error kinds. Handlers map every one of them to a 400 response;
// none is retried. The messages of the bare sentinels double as the exact
// strings the API returns.
var (
	ErrNoFile             = fmt.Errorf("No file provided")
	ErrEmptyFilename      = fmt.Errorf("No file selected")
	ErrUnsupportedType    = fmt.Errorf("Only PDF, TXT, and DOCX files are supported")
	ErrUnreadableDocument = fmt.Errorf("unreadable document")
	ErrDocumentTooShort   = fmt.Errorf("Document appears to be empty or unreadable")
	ErrExtractionFailed   = fmt.Errorf("extraction failed")
	ErrServiceError       = fmt.Errorf("model service error")
)

// kindError carries a descriptive message while still matching its kind
// through errors.Is. The message alone reaches the caller; the kind never
// leaks into the response body.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// Unreadable builds an ErrUnreadableDocument carrying the parser's cause.
func Unreadable(format string, args ...any) error {
	return &kindError{kind: ErrUnreadableDocument, msg: fmt.Sprintf(format, args...)}
}

// ExtractionFailure builds an ErrExtractionFailed with a descriptive message.
func ExtractionFailure(format string, args ...any) error {
	return &kindError{kind: ErrExtractionFailed, msg: fmt.Sprintf(format, args...)}
}

// ServiceFailure builds an ErrServiceError for upstream model call failures
// (auth, network, quota).
func ServiceFailure(format string, args ...any) error {
	return &kindError{kind: ErrServiceError, msg: fmt.Sprintf(format, args...)}
}
