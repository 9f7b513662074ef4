package apiclient

import (
	"errors"
	"fmt"
)

// Kind classifies a normalized gateway failure.
type Kind int

const (
	// KindFetch covers transport failures and non-2xx responses without a
	// structured error body.
	KindFetch Kind = iota
	// KindAuth covers a missing or rejected credential and invalid login
	// attempts (401/403).
	KindAuth
	// KindValidation covers submissions rejected by backend business rules,
	// e.g. a malformed URL or a custom code already in use.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindValidation:
		return "validation"
	default:
		return "fetch"
	}
}

// Error is the single error shape every gateway call fails with. Message
// carries the backend's error string verbatim when one was provided.
type Error struct {
	Kind    Kind
	Status  int // HTTP status code, 0 on transport failure
	Message string
	Err     error // underlying transport error, if any
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return fmt.Sprintf("request failed: %v", e.Err)
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

// IsAuth reports whether err is a gateway error caused by a missing or
// rejected credential.
func IsAuth(err error) bool { return hasKind(err, KindAuth) }

// IsValidation reports whether err is a backend business-rule rejection.
func IsValidation(err error) bool { return hasKind(err, KindValidation) }

// IsFetch reports whether err is a transport-level or unstructured failure.
func IsFetch(err error) bool { return hasKind(err, KindFetch) }

func hasKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}
