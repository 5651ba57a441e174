package common

import "fmt"

// ValidationError is any rule failure on the draft pipeline. It maps
// to a 400 with the first violated rule's message and guarantees the
// request had no side effects.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError wraps a rule failure message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// Media error kinds.
const (
	MediaTooLarge         = "too_large"
	MediaWrongType        = "wrong_type"
	MediaStoreUnavailable = "store_unavailable"
)

// MediaError is a file ingestion failure. TooLarge and WrongType are
// caller faults; StoreUnavailable propagates an object-store failure
// without retrying (retries belong to the caller).
type MediaError struct {
	Kind string
	Err  error
}

func (e *MediaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("media %s: %v", e.Kind, e.Err)
	}
	return "media " + e.Kind
}

func (e *MediaError) Unwrap() error {
	return e.Err
}

// ClientFault reports whether the media failure was caused by the
// uploaded file rather than the store.
func (e *MediaError) ClientFault() bool {
	return e.Kind == MediaTooLarge || e.Kind == MediaWrongType
}
