package dlbf

import "errors"

// Construction rejects parameters that would produce a nonsensical
// geometry instead of silently deriving one. Callers can match the
// failures with errors.Is.
var (
	ErrBadCapacity      = errors.New("dlbf: item capacity must be positive")
	ErrBadRegionCount   = errors.New("dlbf: collision region count must be positive")
	ErrBadFPRate        = errors.New("dlbf: false-positive rate must be in (0, 1)")
	ErrNilHasher        = errors.New("dlbf: hasher must not be nil")
	ErrCapacityOverflow = errors.New("dlbf: optimal bit count exceeds the 32-bit hash range")
	ErrRegionBudget     = errors.New("dlbf: collision bits must leave room for membership bits")
)

// ErrSizeMismatch reports an attempt to merge filters whose m, k or r
// differ.
var ErrSizeMismatch = errors.New("dlbf: mismatched filter parameters")
