package errors

// causer is implemented by an error that wraps another error instance.
type causer interface {
	Cause() error
}

// unpacker is implemented by errors that are a collection of errors.
type unpacker interface {
	Unpack() []error
}

// walk calls fn for err and then for every error it wraps, depth first.
// Members of a collection are visited in order. When fn returns false, errors
// wrapped by the visited one are skipped.
func walk(err error, fn func(error) bool) {
	for !isNilErr(err) {
		if !fn(err) {
			return
		}
		if u, ok := err.(unpacker); ok {
			// Unpack returns all children, Cause must not be
			// consulted on top of it.
			for _, e := range u.Unpack() {
				walk(e, fn)
			}
			return
		}
		c, ok := err.(causer)
		if !ok {
			return
		}
		err = c.Cause()
	}
}

// Find returns the first error wrapped by err, or err itself, for which match
// returns true. Collections created with Append are searched in order. Find
// returns nil if nothing matches.
//
// Use it to extract a typed error from a wrapped chain:
//
//   if te, ok := errors.Find(err, isTransferError).(*TransferError); ok {
//   	...
//   }
func Find(err error, match func(error) bool) error {
	var found error
	walk(err, func(e error) bool {
		if found != nil {
			return false
		}
		if match(e) {
			found = e
			return false
		}
		return true
	})
	return found
}
