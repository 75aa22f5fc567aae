package store

import (
	"testing"

	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCosts = GasCosts{
	ReadFlat:     10,
	ReadPerByte:  1,
	WriteFlat:    100,
	WritePerByte: 2,
	Delete:       50,
}

func TestGasStoreCharges(t *testing.T) {
	cases := map[string]struct {
		run      func(kv CacheableKVStore) error
		wantUsed uint64
	}{
		"read missing": {
			run: func(kv CacheableKVStore) error {
				_, err := kv.Get([]byte("key"))
				return err
			},
			wantUsed: 10,
		},
		"read existing": {
			run: func(kv CacheableKVStore) error {
				_, err := kv.Get([]byte("present"))
				return err
			},
			// flat plus one per byte of "value"
			wantUsed: 10 + 5,
		},
		"has": {
			run: func(kv CacheableKVStore) error {
				_, err := kv.Has([]byte("present"))
				return err
			},
			wantUsed: 10,
		},
		"write": {
			run: func(kv CacheableKVStore) error {
				return kv.Set([]byte("key"), []byte("value"))
			},
			// flat plus two per byte of key and value
			wantUsed: 100 + 2*8,
		},
		"delete": {
			run: func(kv CacheableKVStore) error {
				return kv.Delete([]byte("present"))
			},
			wantUsed: 50,
		},
		"writes in a cache wrap are charged once": {
			run: func(kv CacheableKVStore) error {
				cache := kv.CacheWrap()
				if err := cache.Set([]byte("key"), []byte("value")); err != nil {
					return err
				}
				return cache.Write()
			},
			wantUsed: 100 + 2*8,
		},
		"batch writes": {
			run: func(kv CacheableKVStore) error {
				b := kv.NewBatch()
				if err := b.Set([]byte("key"), []byte("value")); err != nil {
					return err
				}
				if err := b.Delete([]byte("present")); err != nil {
					return err
				}
				return b.Write()
			},
			wantUsed: 100 + 2*8 + 50,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			base := MemStore()
			require.NoError(t, base.Set([]byte("present"), []byte("value")))

			meter := splitter.NewGasMeter(1000)
			require.NoError(t, tc.run(WithGas(base, meter, testCosts)))
			assert.Equal(t, tc.wantUsed, meter.GasConsumed())
		})
	}
}

func TestGasStoreOutOfGas(t *testing.T) {
	base := MemStore()
	meter := splitter.NewGasMeter(120)
	kv := WithGas(base, meter, testCosts)

	require.NoError(t, kv.Set([]byte("a"), []byte("b")))
	err := kv.Set([]byte("c"), []byte("d"))
	assert.True(t, errors.ErrOutOfGas.Is(err))
	assert.Equal(t, uint64(0), meter.GasRemaining())

	// a write that was not paid for is not performed
	has, err := base.Has([]byte("c"))
	require.NoError(t, err)
	assert.False(t, has)
}

func TestWithoutGas(t *testing.T) {
	base := MemStore()
	meter := splitter.NewGasMeter(10000)
	kv := WithGas(base, meter, testCosts)
	cache := kv.CacheWrap()

	assert.Equal(t, base, WithoutGas(kv))

	plain := WithoutGas(cache)
	require.NoError(t, plain.Set([]byte("free"), []byte("write")))
	assert.Equal(t, uint64(0), meter.GasConsumed())

	// both views share the same data
	v, err := cache.Get([]byte("free"))
	require.NoError(t, err)
	assert.Equal(t, []byte("write"), v)
	require.NoError(t, cache.Write())
	v, err = base.Get([]byte("free"))
	require.NoError(t, err)
	assert.Equal(t, []byte("write"), v)
}
