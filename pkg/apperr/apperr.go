// Package apperr defines the error kinds returned by domain systems and
// their mapping onto HTTP status codes.
package apperr

import (
	"errors"
	"maps"
	"net/http"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Kind classifies a failure for the request layer.
type Kind int

// Error kinds. Internal is the zero value so untagged errors are treated as unexpected.
const (
	Internal Kind = iota
	InvalidInput
	NotFound
	Conflict
	Forbidden
)

// String returns the wire code for the kind.
func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "INVALID_INPUT"
	case NotFound:
		return "NOT_FOUND"
	case Conflict:
		return "CONFLICT"
	case Forbidden:
		return "FORBIDDEN"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}

// HTTPStatus returns the transport status for the kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case InvalidInput:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case Forbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Error is a tagged failure carrying a user-facing message and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// New creates an Error without a cause. Domain packages use it for sentinels.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap tags cause with kind and message.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the outermost *Error in err's chain.
// Errors without one are Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// Message returns the user-facing message for err. Untagged errors
// collapse to a generic message so internal details are not exposed.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Erro interno do servidor"
}

// HTTPStatus maps err onto a transport status code.
func HTTPStatus(err error) int {
	return KindOf(err).HTTPStatus()
}

// FromValidation tags a field validation failure as InvalidInput. Field
// messages are joined in field-name order.
func FromValidation(err error) error {
	if err == nil {
		return nil
	}

	var fields validation.Errors
	if !errors.As(err, &fields) {
		return Wrap(InvalidInput, err.Error(), err)
	}

	msgs := make([]string, 0, len(fields))
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		if fields[key] != nil {
			msgs = append(msgs, fields[key].Error())
		}
	}
	return Wrap(InvalidInput, strings.Join(msgs, "; "), err)
}
