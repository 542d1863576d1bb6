package dlbf

import "math"

// FillRatio returns the fraction of membership bits currently set.
func (f *Filter) FillRatio() float64 {
	return float64(f.buckets.Count()) / float64(f.m)
}

// EstimatedFalsePositiveRate estimates the probability that Test reports
// data that was never added, given the current fill. All k probes must
// land on set bits, so the estimate is the fill ratio raised to k.
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	return math.Pow(f.FillRatio(), float64(f.k))
}

// ApproximatedSize approximates the number of distinct items in the filter
// from the observed fill:
//
//	https://en.wikipedia.org/wiki/Bloom_filter#Approximating_the_number_of_items_in_a_Bloom_filter
//
// Unlike Count it does not grow when the same data is added repeatedly.
// Bits stranded in collided regions by removals still count toward the
// estimate.
func (f *Filter) ApproximatedSize() uint {
	set := f.buckets.Count()
	// A saturated filter would put a zero inside the log.
	if set == f.m {
		set = f.m - 1
	}
	m := float64(f.m)
	k := float64(f.k)
	return uint(math.Round(-1 * m / k * math.Log(1-float64(set)/m)))
}
