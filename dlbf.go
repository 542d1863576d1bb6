/*
Package dlbf provides a Deletable Bloom Filter, a Bloom filter variant that
supports removing elements without ever introducing false negatives.

A classic Bloom filter answers membership queries with a bounded
false-positive rate and no false negatives, but it cannot forget: clearing
a bit may erase evidence of other elements hashed to the same position. The
Deletable Bloom Filter, described by Rothenberg, Macapuna, Verdi and
Magalhaes in "The Deletable Bloom filter - A new member of the Bloom
family" (http://arxiv.org/pdf/1005.0352.pdf), reserves r extra bits that
record, per region of the bit array, whether any hash collision landed
there. A bit may be cleared during removal only if its region is collision
free, so a removal can never destroy a bit another element still depends
on. Removals in busy regions leave the bits in place, trading some residual
occupancy for a membership test that stays false-negative free.

The filter is sized from the expected number of items n and a target
false-positive rate, exactly like a classic Bloom filter, with the r
collision bits carved out of that budget. Hashing uses a seeded 32-bit hash
evaluated under seeds 0..k-1; murmur3 by default, replaceable through
NewWithHasher.

A Filter is not safe for concurrent use. Callers sharing one across
goroutines must provide their own synchronization.
*/
package dlbf

import (
	"math"

	"github.com/bits-and-blooms/bitset"
)

// Filter is a Deletable Bloom Filter. It behaves like a classic Bloom
// filter with the addition of TestAndRemove, which deletes an element
// whenever the collision bookkeeping proves the deletion cannot affect
// other elements.
//
// The zero value is not usable; construct instances with New or
// NewWithHasher.
type Filter struct {
	buckets     *bitset.BitSet // membership bits
	collisions  *bitset.BitSet // per-region collision flags
	hash        Hasher
	m           uint           // number of membership bits
	regionSize  uint           // membership bits covered by one collision flag
	k           uint           // number of hash seeds
	r           uint           // number of collision regions
	count       uint           // additions minus successful removals
	indexBuffer []uint
}

// New creates a Deletable Bloom Filter sized to hold n items at the given
// false-positive rate, hashing with murmur3. r sets how many bits of the
// computed budget are reserved for collision tracking: more regions track
// collisions at a finer grain and keep more removals effective, at the
// cost of membership bits. Refer to the paper for choosing r; it must stay
// below OptimalM(n, fpRate).
func New(n, r uint, fpRate float64) (*Filter, error) {
	return NewWithHasher(n, r, fpRate, Murmur3)
}

// NewWithHasher is New with a caller-supplied hash function, which also
// makes collision scenarios scriptable in tests.
func NewWithHasher(n, r uint, fpRate float64, h Hasher) (*Filter, error) {
	if n == 0 {
		return nil, ErrBadCapacity
	}
	if r == 0 {
		return nil, ErrBadRegionCount
	}
	if fpRate <= 0 || fpRate >= 1 {
		return nil, ErrBadFPRate
	}
	if h == nil {
		return nil, ErrNilHasher
	}
	optM := optimalM(n, fpRate)
	if optM > math.MaxUint32 {
		return nil, ErrCapacityOverflow
	}
	if r >= uint(optM) {
		return nil, ErrRegionBudget
	}
	m := uint(optM) - r
	k := OptimalK(fpRate)
	return &Filter{
		buckets:     bitset.New(m),
		collisions:  bitset.New(r),
		hash:        h,
		m:           m,
		regionSize:  regionSize(m, r),
		k:           k,
		r:           r,
		indexBuffer: make([]uint, k),
	}, nil
}

// Capacity returns the number of membership bits, m.
func (f *Filter) Capacity() uint {
	return f.m
}

// K returns the number of hash functions.
func (f *Filter) K() uint {
	return f.k
}

// Regions returns the number of collision-tracking regions, r.
func (f *Filter) Regions() uint {
	return f.r
}

// RegionSize returns how many membership bits share one collision flag.
func (f *Filter) RegionSize() uint {
	return f.regionSize
}

// Count returns the number of items in the filter: Add and TestAndAdd
// increment it, successful TestAndRemove decrements it. Adding the same
// data twice counts twice; see ApproximatedSize for a cardinality
// estimate.
func (f *Filter) Count() uint {
	return f.count
}

// index returns the membership-bit index of data under the given seed.
func (f *Filter) index(data []byte, seed uint32) uint {
	return uint(f.hash(data, seed)) % f.m
}

// region returns the collision-flag index owning a membership-bit index.
func (f *Filter) region(idx uint) uint {
	return idx / f.regionSize
}

// Test will test for membership of the data and returns true if it is a
// member, false if not. This is a probabilistic test, meaning there is a
// non-zero probability of false positives but a zero probability of false
// negatives.
func (f *Filter) Test(data []byte) bool {
	// If any of the K bits are not set, then it's not a member.
	for i := uint(0); i < f.k; i++ {
		if !f.buckets.Test(f.index(data, uint32(i))) {
			return false
		}
	}
	return true
}

// Add will add the data to the filter. It returns the filter to allow for
// chaining.
func (f *Filter) Add(data []byte) *Filter {
	// Set the K bits.
	for i := uint(0); i < f.k; i++ {
		idx := f.index(data, uint32(i))
		if f.buckets.Test(idx) {
			// Collision, set corresponding region bit.
			f.collisions.Set(f.region(idx))
		} else {
			f.buckets.Set(idx)
		}
	}
	f.count++
	return f
}

// TestAndAdd is equivalent to calling Test followed by Add. It returns
// true if the data is a member, false if not. Landing on an already-set
// bit is recorded as a collision even when it is this same data being
// re-added; the filter cannot tell the two apart.
func (f *Filter) TestAndAdd(data []byte) bool {
	member := true

	for i := uint(0); i < f.k; i++ {
		idx := f.index(data, uint32(i))
		if !f.buckets.Test(idx) {
			member = false
		} else {
			// Collision, set corresponding region bit.
			f.collisions.Set(f.region(idx))
		}
		f.buckets.Set(idx)
	}

	f.count++
	return member
}

// TestOrAdd is equivalent to calling Test followed, only if the data is
// not a member, by Add. It returns true if the data is a member, false if
// not. Unlike TestAndAdd it leaves both the bits and the count untouched
// when the data already tests as present.
func (f *Filter) TestOrAdd(data []byte) bool {
	if f.Test(data) {
		return true
	}
	f.Add(data)
	return false
}

// TestAndRemove will test for membership of the data and remove it from
// the filter if it exists. Returns true if the data was a member, false if
// not.
//
// Bits are cleared only inside regions that never saw a collision; bits in
// collided regions stay set because another element may depend on them. A
// removal therefore never introduces a false negative, at the price of
// permanently occupied bits in busy regions.
func (f *Filter) TestAndRemove(data []byte) bool {
	member := true

	for i := uint(0); i < f.k; i++ {
		f.indexBuffer[i] = f.index(data, uint32(i))
		if !f.buckets.Test(f.indexBuffer[i]) {
			member = false
		}
	}

	if member {
		for _, idx := range f.indexBuffer {
			if !f.collisions.Test(f.region(idx)) {
				// Clear only bits located in collision-free zones.
				f.buckets.Clear(idx)
			}
		}
		if f.count > 0 {
			f.count--
		}
	}

	return member
}

// Reset restores the filter to its original state. It returns the filter
// to allow for chaining.
func (f *Filter) Reset() *Filter {
	f.buckets.ClearAll()
	f.collisions.ClearAll()
	f.count = 0
	return f
}

// AddString adds a string to the filter.
func (f *Filter) AddString(data string) *Filter {
	return f.Add([]byte(data))
}

// TestString returns true if the string is a member, false if not.
func (f *Filter) TestString(data string) bool {
	return f.Test([]byte(data))
}

// TestAndAddString is the string version of TestAndAdd.
func (f *Filter) TestAndAddString(data string) bool {
	return f.TestAndAdd([]byte(data))
}

// TestOrAddString is the string version of TestOrAdd.
func (f *Filter) TestOrAddString(data string) bool {
	return f.TestOrAdd([]byte(data))
}

// TestAndRemoveString is the string version of TestAndRemove.
func (f *Filter) TestAndRemoveString(data string) bool {
	return f.TestAndRemove([]byte(data))
}
