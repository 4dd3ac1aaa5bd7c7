package oracle

import (
	"encoding/binary"
	"math/big"

	"github.com/spacemeshos/sha256-simd"
)

const (
	groupElementDomain   = "wesolowski-vdf/group-element/v1"
	challengePrimeDomain = "wesolowski-vdf/challenge-prime/v1"
)

// transcriptHash hashes the domain tag, the attempt counter and every integer,
// each integer prefixed with the length of its big-endian encoding.
func transcriptHash(domain string, attempt uint32, ints ...*big.Int) []byte {
	var buf [4]byte

	hh := sha256.New()
	binary.BigEndian.PutUint32(buf[:], uint32(len(domain)))
	hh.Write(buf[:])
	hh.Write([]byte(domain))

	binary.BigEndian.PutUint32(buf[:], attempt)
	hh.Write(buf[:])

	for _, x := range ints {
		b := x.Bytes()
		binary.BigEndian.PutUint32(buf[:], uint32(len(b)))
		hh.Write(buf[:])
		hh.Write(b)
	}
	return hh.Sum(nil)
}

// expand stretches seed into an integer of at most bits bits using SHA-256 in counter mode.
func expand(seed []byte, bits uint) *big.Int {
	numBytes := int((bits + 7) / 8)
	out := make([]byte, 0, numBytes+sha256.Size)

	block := make([]byte, len(seed)+4)
	copy(block, seed)
	for i := uint32(0); len(out) < numBytes; i++ {
		binary.BigEndian.PutUint32(block[len(seed):], i)
		sum := sha256.Sum256(block)
		out = append(out, sum[:]...)
	}

	x := new(big.Int).SetBytes(out[:numBytes])
	if excess := uint(numBytes)*8 - bits; excess > 0 {
		x.Rsh(x, excess)
	}
	return x
}
