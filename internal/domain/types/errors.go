package types

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies pipeline failures.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindNotFound: a required attribute or embedded token is absent.
	KindNotFound
	// KindSignature: undecodable signature/payload or a crypto library failure.
	KindSignature
	// KindInvalidMessage: malformed input, failed verification or identity mismatch.
	KindInvalidMessage
)

// String returns the human-readable label used in error messages.
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "Not Found"
	case KindSignature:
		return "Signature Error"
	case KindInvalidMessage:
		return "Invalid Message"
	default:
		return "Unknown Error"
	}
}

// HTTPStatus maps the kind to the status code reported to clients.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindSignature:
		return http.StatusUnauthorized
	case KindInvalidMessage:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified pipeline failure with a detail message.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.Message) }

// Is matches any *Error of the same kind, so the sentinels below work with
// errors.Is regardless of message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrNotFound       = &Error{Kind: KindNotFound}
	ErrSignature      = &Error{Kind: KindSignature}
	ErrInvalidMessage = &Error{Kind: KindInvalidMessage}
)

// NotFound returns a KindNotFound error.
func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// SignatureError returns a KindSignature error.
func SignatureError(format string, args ...any) error {
	return &Error{Kind: KindSignature, Message: fmt.Sprintf(format, args...)}
}

// InvalidMessage returns a KindInvalidMessage error.
func InvalidMessage(format string, args ...any) error {
	return &Error{Kind: KindInvalidMessage, Message: fmt.Sprintf(format, args...)}
}

// KindOf reports the kind of err, or KindUnknown if err is not classified.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// MessageOf returns the detail message of a classified error, or err.Error().
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
