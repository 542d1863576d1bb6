// Seeded 32-bit hash implementations backing the filter's k probes.
//
// The filter evaluates one Hasher under seeds 0..k-1 and reduces each
// result modulo m. Murmur3 is the default; the alternatives satisfy the
// same contract and trade speed against distribution quality.
package dlbf

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/twmb/murmur3"
	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// A Hasher computes a 32-bit hash of data under the given seed. It must be
// deterministic, and results under different seeds should be uncorrelated
// so that the filter's k probes behave as independent draws.
type Hasher func(data []byte, seed uint32) uint32

// Murmur3 hashes with the 32-bit MurmurHash3 variant. Default.
func Murmur3(data []byte, seed uint32) uint32 {
	return murmur3.SeedSum32(seed, data)
}

// XXH3 hashes with the seeded 64-bit XXH3 truncated to 32 bits. Fastest on
// large inputs.
func XXH3(data []byte, seed uint32) uint32 {
	return uint32(xxh3.HashSeed(data, uint64(seed)))
}

// FNV1a hashes with FNV-1a over the big-endian seed followed by data. No
// dependencies outside the standard library.
func FNV1a(data []byte, seed uint32) uint32 {
	var s [4]byte
	binary.BigEndian.PutUint32(s[:], seed)
	h := fnv.New32a()
	h.Write(s[:])
	h.Write(data)
	return h.Sum32()
}

// Blake2b hashes with BLAKE2b keyed by the seed. Slowest, cryptographic
// distribution.
func Blake2b(data []byte, seed uint32) uint32 {
	var key [4]byte
	binary.BigEndian.PutUint32(key[:], seed)
	h, _ := blake2b.New(4, key[:])
	h.Write(data)
	return binary.BigEndian.Uint32(h.Sum(nil))
}
