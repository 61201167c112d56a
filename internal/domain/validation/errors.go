package validation

import (
	"errors"
	"fmt"
)

type Cause int

const (
	CauseMissingField Cause = iota + 1
	CauseMalformedBody
)

func (c Cause) String() string {
	switch c {
	case CauseMissingField:
		return "missing_field"
	case CauseMalformedBody:
		return "malformed_body"
	default:
		return "unknown"
	}
}

// Error is returned by Deserialize whenever inbound data cannot populate an entity.
// Field is set for missing keys and, when known, for the value that failed to decode.
type Error struct {
	Entity string
	Cause  Cause
	Field  string
}

func MissingField(entity, field string) *Error {
	return &Error{Entity: entity, Cause: CauseMissingField, Field: field}
}

func MalformedBody(entity, field string) *Error {
	return &Error{Entity: entity, Cause: CauseMalformedBody, Field: field}
}

func (e *Error) Error() string {
	if e.Cause == CauseMissingField {
		return fmt.Sprintf("Invalid %s: missing %s", e.Entity, e.Field)
	}
	return fmt.Sprintf("Invalid %s: body of request contained bad or no data", e.Entity)
}

func AsError(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
