package app

import (
	"testing"

	"github.com/iov-one/splitter/errors"
	"github.com/iov-one/splitter/splittertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter(t *testing.T) {
	r := NewRouter()
	good := &splittertest.Handler{}
	bad := &splittertest.Handler{DeliverErr: errors.ErrHuman}
	r.Handle("good", good)
	r.Handle("bad", bad)

	// invalid registrations panic
	assert.Panics(t, func() { r.Handle("good", good) })
	assert.Panics(t, func() { r.Handle("l:7", good) })

	_, err := r.Handler("good").Check(nil, nil, nil)
	require.NoError(t, err)
	_, err = r.Handler("good").Deliver(nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, good.CheckCallCount())
	assert.Equal(t, 1, good.DeliverCallCount())

	_, err = r.Handler("bad").Deliver(nil, nil, nil)
	assert.True(t, errors.ErrHuman.Is(err))
	assert.Equal(t, 1, bad.DeliverCallCount())

	_, err = r.Handler("missing").Deliver(nil, nil, nil)
	assert.True(t, errors.ErrNotFound.Is(err))
	_, err = r.Handler("missing").Check(nil, nil, nil)
	assert.True(t, errors.ErrNotFound.Is(err))
}
