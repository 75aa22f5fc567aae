package errors

import (
	"fmt"
)

// Field wraps err with the name of the field it was returned for. It returns
// nil if err is nil. Description is optional and accepts formatting
// arguments.
//
// Use Go naming for the field name, for example Owner or Recipients. Nested
// fields are separated with a dot and list elements are referenced by their
// index starting with 0, for example Recipients.3.
func Field(fieldName string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}
	if len(args) > 0 {
		description = fmt.Sprintf(description, args...)
	}
	return &fieldError{
		parent: withStack(err),
		field:  fieldName,
		desc:   description,
	}
}

// AppendField adds the field error, if not nil, to the collection of errors.
// It is a shortcut for validation methods that check several fields:
//
//   var errs error
//   errs = errors.AppendField(errs, "Source", m.Source.Validate())
//   errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
//   return errs
func AppendField(errorsOrNil error, fieldName string, fieldErrOrNil error) error {
	return Append(errorsOrNil, Field(fieldName, fieldErrOrNil, ""))
}

type fieldError struct {
	parent error
	field  string
	desc   string
}

func (err *fieldError) Error() string {
	if err.desc == "" {
		return fmt.Sprintf("field %q: %s", err.field, err.parent)
	}
	return fmt.Sprintf("field %q: %s: %s", err.field, err.desc, err.parent)
}

func (err *fieldError) Cause() error {
	return err.parent
}

func (err *fieldError) Field() string {
	return err.field
}

// fielder is implemented by errors created for a single field.
type fielder interface {
	Field() string
}

// FieldErrors returns all errors created for the given field name. Errors
// wrapped by a matching field error are not searched further.
func FieldErrors(err error, fieldName string) []error {
	var res []error
	walk(err, func(e error) bool {
		if f, ok := e.(fielder); ok && f.Field() == fieldName {
			res = append(res, e)
			return false
		}
		return true
	})
	return res
}
