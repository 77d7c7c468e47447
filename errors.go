package datebuilder

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the sentinel matched (via errors.Is) by every error
// this package produces. It covers malformed MM_dd_yyyy strings, calendar-
// invalid dates, and out-of-range field values passed to setters.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports a value that cannot produce a valid calendar
// date/time.
type InvalidArgumentError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s %v: %s", e.Field, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidArgument) succeed for this type.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func newInvalidArgument(field string, value any, reason string) error {
	return &InvalidArgumentError{Field: field, Value: value, Reason: reason}
}
