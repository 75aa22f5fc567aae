package app

import "github.com/iov-one/splitter"

// Tx is a transaction carrying a single message. Authorization is provided
// by the caller through the signer stored in the context.
type Tx struct {
	Msg splitter.Msg
}

var _ splitter.Tx = (*Tx)(nil)

// NewTx returns a transaction for the given message.
func NewTx(msg splitter.Msg) *Tx {
	return &Tx{Msg: msg}
}

// GetMsg returns the message of this transaction.
func (tx *Tx) GetMsg() (splitter.Msg, error) {
	return tx.Msg, nil
}
