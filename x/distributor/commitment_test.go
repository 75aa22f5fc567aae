package distributor

import (
	"bytes"
	"testing"

	"github.com/iov-one/splitter"
	"github.com/iov-one/splitter/splittertest"
	"github.com/iov-one/splitter/splittertest/assert"
)

func TestCommitment(t *testing.T) {
	a := splittertest.RandomAddr(t)
	b := splittertest.RandomAddr(t)

	ab := Commitment([]splitter.Address{a, b})
	assert.Equal(t, CommitmentSize, len(ab))
	assert.Equal(t, ab, Commitment([]splitter.Address{a.Clone(), b.Clone()}))

	different := map[string][]splitter.Address{
		"reversed order": {b, a},
		"missing one":    {a},
		"duplicated":     {a, b, b},
		"empty":          nil,
	}
	for name, recipients := range different {
		t.Run(name, func(t *testing.T) {
			if bytes.Equal(ab, Commitment(recipients)) {
				t.Fatal("commitments of different lists must differ")
			}
		})
	}
}

func TestCommitmentIsLengthPrefixed(t *testing.T) {
	first := Commitment([]splitter.Address{{0x01, 0x02}, {0x03}})
	second := Commitment([]splitter.Address{{0x01}, {0x02, 0x03}})
	if bytes.Equal(first, second) {
		t.Fatal("address boundaries must be part of the commitment")
	}
}
