package store

import (
	"crypto/rand"
	"testing"

	"github.com/iov-one/splitter/splittertest/assert"
)

// TestSuite runs the same checks against any CacheableKVStore
// implementation. Package tests only provide the constructor, see
// btree_test.go and iavl/adapter_test.go.
type TestSuite struct {
	makeBase TestStoreConstructor
}

// TestStoreConstructor returns a fresh store and a function releasing all
// its resources.
type TestStoreConstructor func() (base CacheableKVStore, cleanup func())

// NewTestSuite returns a suite testing stores created by given constructor.
func NewTestSuite(constructor TestStoreConstructor) *TestSuite {
	return &TestSuite{makeBase: constructor}
}

// GetSet does basic sanity checks on the store and its cache wraps.
func (s *TestSuite) GetSet(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	k, v := []byte("owner"), []byte("alice")
	s.AssertGetHas(t, base, k, nil, false)
	assert.Nil(t, base.Set(k, v))
	s.AssertGetHas(t, base, k, v, true)

	cache := base.CacheWrap()
	s.AssertGetHas(t, cache, k, v, true)

	// Changes are visible only within the cache until written.
	k2, v2 := []byte("recipient"), []byte("bob")
	assert.Nil(t, cache.Set(k2, v2))
	s.AssertGetHas(t, cache, k2, v2, true)
	s.AssertGetHas(t, base, k2, nil, false)

	assert.Nil(t, cache.Write())
	s.AssertGetHas(t, base, k, v, true)
	s.AssertGetHas(t, base, k2, v2, true)

	discarded := base.CacheWrap()
	k3, v3 := []byte("refund"), []byte("67")
	assert.Nil(t, discarded.Set(k3, v3))
	s.AssertGetHas(t, discarded, k3, v3, true)
	discarded.Discard()
	s.AssertGetHas(t, base, k3, nil, false)

	deleting := base.CacheWrap()
	assert.Nil(t, deleting.Delete(k))
	s.AssertGetHas(t, deleting, k, nil, false)
	s.AssertGetHas(t, base, k, v, true)
	assert.Nil(t, deleting.Write())

	s.AssertGetHas(t, base, k, nil, false)
	s.AssertGetHas(t, base, k2, v2, true)
	s.AssertGetHas(t, base, k3, nil, false)
}

// CacheConflicts checks that a cache wrap correctly shadows the values of
// its parent, including overwrites and deletes.
func (s *TestSuite) CacheConflicts(t *testing.T) {
	ks := randKeys(10, 16)
	vs := randKeys(20, 40)

	type query struct {
		key  []byte
		want []byte
	}

	cases := map[string]struct {
		parentOps     []op
		childOps      []op
		parentQueries []query
		childQueries  []query
	}{
		"overwrite one, delete another, add a third": {
			parentOps:     []op{{key: ks[1], value: vs[1]}, {key: ks[2], value: vs[2]}},
			childOps:      []op{{key: ks[1], value: vs[11]}, {key: ks[3], value: vs[7]}, {key: ks[2], deleted: true}},
			parentQueries: []query{{ks[1], vs[1]}, {ks[2], vs[2]}, {ks[3], nil}},
			childQueries:  []query{{ks[1], vs[11]}, {ks[2], nil}, {ks[3], vs[7]}},
		},
		"delete then set again": {
			parentOps:     []op{{key: ks[4], value: vs[4]}},
			childOps:      []op{{key: ks[4], deleted: true}, {key: ks[4], value: vs[14]}},
			parentQueries: []query{{ks[4], vs[4]}},
			childQueries:  []query{{ks[4], vs[14]}},
		},
		"set then delete": {
			childOps:      []op{{key: ks[5], value: vs[5]}, {key: ks[5], deleted: true}},
			parentQueries: []query{{ks[5], nil}},
			childQueries:  []query{{ks[5], nil}},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			parent, cleanup := s.makeBase()
			defer cleanup()

			batch := NewNonAtomicBatch(parent)
			batch.ops = tc.parentOps
			assert.Nil(t, batch.Write())

			child := parent.CacheWrap()
			batch = NewNonAtomicBatch(child)
			batch.ops = tc.childOps
			assert.Nil(t, batch.Write())

			for _, q := range tc.parentQueries {
				s.AssertGetHas(t, parent, q.key, q.want, q.want != nil)
			}
			for _, q := range tc.childQueries {
				s.AssertGetHas(t, child, q.key, q.want, q.want != nil)
			}

			// Once written, the parent shows the child data.
			assert.Nil(t, child.Write())
			for _, q := range tc.childQueries {
				s.AssertGetHas(t, parent, q.key, q.want, q.want != nil)
			}
		})
	}
}

// NestedSavepoints checks that discarding a nested cache wrap rolls back
// only the changes made within it.
func (s *TestSuite) NestedSavepoints(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	key := []byte("balance")
	assert.Nil(t, base.Set(key, []byte("100")))

	outer := base.CacheWrap()
	assert.Nil(t, outer.Set(key, []byte("60")))

	inner := outer.CacheWrap()
	assert.Nil(t, inner.Set(key, []byte("0")))
	inner.Discard()
	s.AssertGetHas(t, outer, key, []byte("60"), true)

	// Writing a discarded cache wrap is a noop.
	assert.Nil(t, inner.Write())
	s.AssertGetHas(t, outer, key, []byte("60"), true)

	accepted := outer.CacheWrap()
	assert.Nil(t, accepted.Set(key, []byte("30")))
	assert.Nil(t, accepted.Write())
	s.AssertGetHas(t, outer, key, []byte("30"), true)
	s.AssertGetHas(t, base, key, []byte("100"), true)

	assert.Nil(t, outer.Write())
	s.AssertGetHas(t, base, key, []byte("30"), true)
}

// AssertGetHas ensures both Get and Has return the expected result.
func (s *TestSuite) AssertGetHas(t testing.TB, kv ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	assert.Nil(t, err)
	assert.Equal(t, val, got)
	exists, err := kv.Has(key)
	assert.Nil(t, err)
	assert.Equal(t, has, exists)
}

// randKeys returns count random keys of the given size.
func randKeys(count, size int) [][]byte {
	res := make([][]byte, count)
	for i := range res {
		res[i] = make([]byte, size)
		if _, err := rand.Read(res[i]); err != nil {
			panic(err)
		}
	}
	return res
}
