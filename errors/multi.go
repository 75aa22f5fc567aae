package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If given error implements unpacker interface, it is flattened. All
// contained errors are extracted and appended to the result set.
//
// Append returns nil if no non nil errors were given.
func Append(errs ...error) error {
	var res multiErr
	for _, err := range errs {
		if isNilErr(err) {
			continue
		}
		if u, ok := err.(unpacker); ok {
			res = append(res, u.Unpack()...)
		} else {
			res = append(res, err)
		}
	}
	if len(res) == 0 {
		return nil
	}
	return res
}

// multiErr is a collection of errors that is an error itself. Order of
// appended errors is preserved.
type multiErr []error

var (
	_ unpacker = multiErr(nil)
	_ coder    = multiErr(nil)
)

// Unpack returns all contained errors.
func (errs multiErr) Unpack() []error {
	return errs
}

func (errs multiErr) Error() string {
	if len(errs) == 1 {
		return fmt.Sprintf("1 error occurred:\n\t* %s\n", errs[0])
	}
	points := make([]string, len(errs))
	for i, err := range errs {
		points[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s\n",
		len(errs), strings.Join(points, "\n\t"))
}

// ABCICode returns the code of the first contained error, consistent with a
// fail-fast approach.
func (errs multiErr) ABCICode() uint32 {
	if len(errs) == 0 {
		return SuccessABCICode
	}
	return abciCode(errs[0])
}
