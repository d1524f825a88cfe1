package expression

import (
	"errors"
	"fmt"
)

// Error kinds. Every validation failure unwraps to exactly one of these.
var (
	ErrMissingArgument     = errors.New("missing argument")
	ErrMalformedExpression = errors.New("malformed expression")
	ErrUnknownField        = errors.New("unknown field")
	ErrInvalidCharacter    = errors.New("invalid character")
	ErrInvalidRange        = errors.New("invalid range")
	ErrRangeTooSmall       = errors.New("value below field minimum")
	ErrRangeTooLarge       = errors.New("value above field maximum")
	ErrInvalidSymbol       = errors.New("invalid symbol")
	ErrRangeTypeMismatch   = errors.New("range endpoints of different types")
	ErrWildcardInList      = errors.New("wildcard in list")
	ErrInvalidListMember   = errors.New("invalid list member")
	ErrCannotModifyDefault = errors.New("cannot modify default interval")
	ErrTypeMismatch        = errors.New("type mismatch")
)

// Error is a validation failure. Message is meant for humans, Kind for errors.Is.
type Error struct {
	Kind    error
	Field   Field
	Value   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Errorf builds an *Error of the given kind with a formatted message.
func Errorf(kind error, field Field, value string, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	}
}
