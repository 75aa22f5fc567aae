package splitter

import (
	"math"

	"github.com/iov-one/splitter/errors"
)

// GasMeter tracks the amount of gas consumed by a single call. Every call
// is granted a limited amount of gas up front and each operation is charged
// against it. Once the limit is reached all further consumption fails.
type GasMeter interface {
	// ConsumeGas charges given amount of gas. If the amount exceeds the
	// remaining gas, the meter is exhausted (remaining gas drops to zero)
	// and ErrOutOfGas is returned.
	ConsumeGas(amount uint64, descriptor string) error

	// GasConsumed returns the total amount of gas consumed so far.
	GasConsumed() uint64

	// GasLimit returns the amount of gas this meter was created with.
	GasLimit() uint64

	// GasRemaining returns the amount of gas that can still be consumed.
	GasRemaining() uint64
}

// NewGasMeter returns a meter that allows to consume up to limit gas.
func NewGasMeter(limit uint64) GasMeter {
	return &basicGasMeter{limit: limit}
}

// NewInfiniteGasMeter returns a meter without a practical limit. Use it only
// for operations that are not triggered by an untrusted party, for example
// the genesis initialization.
func NewInfiniteGasMeter() GasMeter {
	return NewGasMeter(math.MaxUint64)
}

type basicGasMeter struct {
	limit    uint64
	consumed uint64
}

var _ GasMeter = (*basicGasMeter)(nil)

func (m *basicGasMeter) ConsumeGas(amount uint64, descriptor string) error {
	if amount > m.limit-m.consumed {
		m.consumed = m.limit
		return errors.Wrapf(errors.ErrOutOfGas, "%s: %d required", descriptor, amount)
	}
	m.consumed += amount
	return nil
}

func (m *basicGasMeter) GasConsumed() uint64 {
	return m.consumed
}

func (m *basicGasMeter) GasLimit() uint64 {
	return m.limit
}

func (m *basicGasMeter) GasRemaining() uint64 {
	return m.limit - m.consumed
}
