package errors

import (
	"reflect"
	"testing"
)

func TestAppend(t *testing.T) {
	cases := map[string]struct {
		errs []error
		want error
	}{
		"nothing": {
			errs: nil,
			want: nil,
		},
		"only nils": {
			errs: []error{nil, (*Error)(nil)},
			want: nil,
		},
		"single error": {
			errs: []error{ErrNotFound},
			want: multiErr{ErrNotFound},
		},
		"order is preserved": {
			errs: []error{ErrNotFound, ErrMsg},
			want: multiErr{ErrNotFound, ErrMsg},
		},
		"nested collections are flattened": {
			errs: []error{Append(ErrNotFound, ErrMsg), ErrState},
			want: multiErr{ErrNotFound, ErrMsg, ErrState},
		},
		"duplicates are kept": {
			errs: []error{ErrNotFound, nil, ErrNotFound},
			want: multiErr{ErrNotFound, ErrNotFound},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got := Append(tc.errs...)
			if !reflect.DeepEqual(tc.want, got) {
				t.Fatalf("want %#v, got %#v", tc.want, got)
			}
		})
	}
}

func TestMultiErrABCICode(t *testing.T) {
	err := Append(Wrap(ErrOutOfGas, "first"), ErrNotFound)
	code, _ := ABCIInfo(err, false)
	if code != ErrOutOfGas.ABCICode() {
		t.Fatalf("want code of the first error, got %d", code)
	}
}
