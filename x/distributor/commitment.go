package distributor

import (
	"encoding/binary"

	"github.com/iov-one/splitter"
	"golang.org/x/crypto/sha3"
)

// CommitmentSize is the length of a recipient group commitment.
const CommitmentSize = 32

// Commitment returns the Keccak-256 hash of the ordered recipient list.
//
// The number of recipients and the length of every address are hashed
// together with the addresses, so two different lists never serialize to the
// same bytes. Order matters and duplicates are kept.
func Commitment(recipients []splitter.Address) []byte {
	h := sha3.NewLegacyKeccak256()
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(recipients)))
	h.Write(n[:])
	for _, r := range recipients {
		binary.BigEndian.PutUint32(n[:], uint32(len(r)))
		h.Write(n[:])
		h.Write(r)
	}
	return h.Sum(nil)
}
