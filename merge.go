package dlbf

// Merge folds the contents of g into f. Both filters must have been built
// with the same geometry so that m, k and r agree; ErrSizeMismatch is
// returned otherwise, leaving f unchanged.
//
// Membership bits are unioned. A bit set in both inputs may be owed to two
// different elements, which is exactly a collision, so the owning regions
// are flagged on top of the union of both collision arrays. Counts are
// summed.
func (f *Filter) Merge(g *Filter) error {
	if f.m != g.m || f.k != g.k || f.r != g.r {
		return ErrSizeMismatch
	}

	shared := f.buckets.Intersection(g.buckets)
	f.collisions.InPlaceUnion(g.collisions)
	for idx, ok := shared.NextSet(0); ok; idx, ok = shared.NextSet(idx + 1) {
		f.collisions.Set(f.region(idx))
	}
	f.buckets.InPlaceUnion(g.buckets)
	f.count += g.count
	return nil
}

// Copy creates a deep copy of the filter sharing no state with the
// original.
func (f *Filter) Copy() *Filter {
	return &Filter{
		buckets:     f.buckets.Clone(),
		collisions:  f.collisions.Clone(),
		hash:        f.hash,
		m:           f.m,
		regionSize:  f.regionSize,
		k:           f.k,
		r:           f.r,
		count:       f.count,
		indexBuffer: make([]uint, f.k),
	}
}

// Equal reports whether both filters carry the same geometry, contents and
// count. The hash function is not part of the comparison; comparing
// filters built with different hashers is meaningful only to the caller.
func (f *Filter) Equal(g *Filter) bool {
	return f.m == g.m && f.k == g.k && f.r == g.r && f.count == g.count &&
		f.buckets.Equal(g.buckets) && f.collisions.Equal(g.collisions)
}
