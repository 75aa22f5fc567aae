package splitter

import (
	"testing"

	"github.com/iov-one/splitter/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGasMeter(t *testing.T) {
	m := NewGasMeter(100)
	assert.Equal(t, uint64(100), m.GasLimit())

	require.NoError(t, m.ConsumeGas(60, "first"))
	require.NoError(t, m.ConsumeGas(40, "second"))
	assert.Equal(t, uint64(100), m.GasConsumed())
	assert.Equal(t, uint64(0), m.GasRemaining())

	// nothing can be consumed once the limit is reached
	err := m.ConsumeGas(1, "third")
	assert.True(t, errors.ErrOutOfGas.Is(err))
	require.NoError(t, m.ConsumeGas(0, "free"))
}

func TestGasMeterExhausted(t *testing.T) {
	m := NewGasMeter(100)
	require.NoError(t, m.ConsumeGas(30, "first"))

	err := m.ConsumeGas(71, "too much")
	assert.True(t, errors.ErrOutOfGas.Is(err))
	assert.Equal(t, uint64(100), m.GasConsumed())
	assert.Equal(t, uint64(0), m.GasRemaining())
}

func TestInfiniteGasMeter(t *testing.T) {
	m := NewInfiniteGasMeter()
	require.NoError(t, m.ConsumeGas(1<<62, "a lot"))
	require.NoError(t, m.ConsumeGas(1<<62, "a lot more"))
	assert.True(t, m.GasRemaining() > 1<<62)
}
