package splittertest

import "github.com/iov-one/splitter"

// Tx represents a transaction that holds a single message.
type Tx struct {
	// Msg is the message that is to be processed by this transaction.
	Msg splitter.Msg
	// Err if set is returned by any method call.
	Err error
}

var _ splitter.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (splitter.Msg, error) {
	return tx.Msg, tx.Err
}

// Msg represents a message routed by its path.
type Msg struct {
	// RoutePath is returned by the path method, consumed by the router.
	RoutePath string
	// Err if set is returned by Validate.
	Err error
}

var _ splitter.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}
