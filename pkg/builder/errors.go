package builder

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/hashicorp-forge/soundboard/pkg/rest"
)

// Kind classifies an execution failure.
type Kind int

const (
	// KindTransportFailure means the exchange could not be completed: network
	// errors, server errors, or a response that could not be decoded.
	KindTransportFailure Kind = iota + 1

	// KindValidationRejected means the service refused the request content:
	// out-of-range values, missing permissions, unknown references. Rate
	// limiting (429) is not a content rejection and counts as a transport
	// failure.
	KindValidationRejected
)

func (k Kind) String() string {
	switch k {
	case KindTransportFailure:
		return "transport failure"
	case KindValidationRejected:
		return "rejected by service"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is returned by every Execute method.
//
//	var buildErr *builder.Error
//	if errors.As(err, &buildErr) && buildErr.Kind == builder.KindValidationRejected {
//	    ...
//	}
type Error struct {
	// Op names the operation, e.g. "edit soundboard sound".
	Op   string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap wraps a transport error once as an *Error, classifying it by the HTTP
// status carried in an *rest.APIError. Operations outside this package use
// it to report failures the same way Execute does.
func Wrap(op string, err error) error {
	kind := KindTransportFailure
	if rejected(rest.StatusCode(err)) {
		kind = KindValidationRejected
	}
	return &Error{Op: op, Kind: kind, Err: err}
}

func rejected(status int) bool {
	if status == http.StatusTooManyRequests {
		return false
	}
	return status >= http.StatusBadRequest && status < http.StatusInternalServerError
}

// IsValidationRejected reports whether err is an *Error of KindValidationRejected.
func IsValidationRejected(err error) bool {
	return hasKind(err, KindValidationRejected)
}

// IsTransportFailure reports whether err is an *Error of KindTransportFailure.
func IsTransportFailure(err error) bool {
	return hasKind(err, KindTransportFailure)
}

func hasKind(err error, kind Kind) bool {
	var buildErr *Error
	if errors.As(err, &buildErr) {
		return buildErr.Kind == kind
	}
	return false
}
