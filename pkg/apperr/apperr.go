package apperr

import "errors"

// Kind classifies an error for HTTP mapping and caller branching.
type Kind int

const (
	// KindInternal is the fallback for unexpected failures (database errors etc).
	KindInternal Kind = iota
	// KindValidation covers malformed input and unique/foreign-key violations.
	KindValidation
	// KindNotFound means the addressed record does not exist.
	KindNotFound
	// KindBusinessRule covers workflow violations such as illegal status
	// transitions or the exactly-one-reference rule on payments.
	KindBusinessRule
	// KindUnavailable means the requested physical resource (room, ambulance)
	// is not available.
	KindUnavailable
	// KindAlreadyConfirmed means a payment confirmation was repeated.
	KindAlreadyConfirmed
)

// Error carries a classified, caller-facing error message. Validation errors
// additionally carry a field-keyed detail map.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

// Validation creates a field-level input error. fields may be nil.
func Validation(message string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

// NotFound creates a missing-record error for the named resource.
func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: resource + " not found"}
}

// BusinessRule creates a workflow violation error.
func BusinessRule(message string) *Error {
	return &Error{Kind: KindBusinessRule, Message: message}
}

// Unavailable creates a resource-unavailable error.
func Unavailable(message string) *Error {
	return &Error{Kind: KindUnavailable, Message: message}
}

// AlreadyConfirmed creates a duplicate-confirmation error.
func AlreadyConfirmed(message string) *Error {
	return &Error{Kind: KindAlreadyConfirmed, Message: message}
}

// KindOf extracts the Kind of err, or KindInternal if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// FieldsOf extracts the validation field map of err, if any.
func FieldsOf(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}
