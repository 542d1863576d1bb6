package dlbf

import "math"

// fillRatio is the fraction of membership bits expected to be set once the
// filter holds its target number of items.
const fillRatio = 0.5

// OptimalM calculates the optimal Bloom filter size, m, based on the number
// of items and the desired rate of false positives. The collision-bit
// budget r passed to New is carved out of this value, so r must stay below
// it.
func OptimalM(n uint, fpRate float64) uint {
	return uint(optimalM(n, fpRate))
}

// OptimalK calculates the optimal number of hash functions to use for a
// Bloom filter based on the desired rate of false positives.
func OptimalK(fpRate float64) uint {
	return uint(math.Ceil(math.Log2(1 / fpRate)))
}

// optimalM keeps the sizing in float64 so constructors can range-check the
// result before converting, which would truncate on 32-bit platforms.
func optimalM(n uint, fpRate float64) float64 {
	return math.Ceil(float64(n) / ((math.Log(fillRatio) *
		math.Log(1-fillRatio)) / math.Abs(math.Log(fpRate))))
}

// regionSize returns the number of membership bits covered by one collision
// flag. The division rounds up so that every bit index maps to a region
// below r even when r does not divide m evenly; the trailing region is then
// narrower than the rest and any flags past it simply stay unused.
func regionSize(m, r uint) uint {
	return (m + r - 1) / r
}
