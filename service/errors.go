package service

import (
	"errors"
	"fmt"
)

// ErrorKind classifies fatal document decoding failures.
type ErrorKind int

const (
	DocumentProcessingFailed ErrorKind = iota
	DocumentAccessDenied
	DocumentCorrupt
)

func (k ErrorKind) String() string {
	switch k {
	case DocumentAccessDenied:
		return "document access denied"
	case DocumentCorrupt:
		return "document corrupt"
	default:
		return "document processing failed"
	}
}

// Sentinels for errors.Is; every *DocumentError matches the one of its kind.
var (
	ErrDocumentAccessDenied     = errors.New("document is password protected")
	ErrDocumentCorrupt          = errors.New("document structure cannot be decoded")
	ErrDocumentProcessingFailed = errors.New("document processing failed")
)

// DocumentError aborts an analysis run. Err is the decoder's error.
type DocumentError struct {
	Kind ErrorKind
	Err  error
}

func (e *DocumentError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error's kind.
func (e *DocumentError) Is(target error) bool {
	switch target {
	case ErrDocumentAccessDenied:
		return e.Kind == DocumentAccessDenied
	case ErrDocumentCorrupt:
		return e.Kind == DocumentCorrupt
	case ErrDocumentProcessingFailed:
		return e.Kind == DocumentProcessingFailed
	}
	return false
}

func newDocumentError(kind ErrorKind, err error) *DocumentError {
	return &DocumentError{Kind: kind, Err: err}
}

// KindOf returns the kind of a *DocumentError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var docErr *DocumentError
	if errors.As(err, &docErr) {
		return docErr.Kind, true
	}
	return 0, false
}
