package summa

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Range is an inclusive range [From, To] of integers. A range with
// From > To is empty.
type Range[N constraints.Integer] struct {
	From N
	To   N
}

// Closed creates the range [from, to].
func Closed[N constraints.Integer](from, to N) Range[N] {
	return Range[N]{From: from, To: to}
}

// IsEmpty returns true if the range does not contain any integer.
func (r Range[N]) IsEmpty() bool {
	return r.From > r.To
}

// Len returns the number of integers in r.
//
// For the complete range of a 64-bit type the count is 2^64, which wraps
// around to 0.
func (r Range[N]) Len() uint64 {
	if r.IsEmpty() {
		return 0
	}
	return uint64(r.To) - uint64(r.From) + 1
}

// Contains returns true if n is an element of r.
func (r Range[N]) Contains(n N) bool {
	return r.From <= n && n <= r.To
}

// Split partitions r into consecutive non-empty segments of at most size
// integers each, in ascending order. An empty range yields no segments.
func (r Range[N]) Split(size uint64) ([]Range[N], error) {
	if size == 0 {
		return nil, fmt.Errorf("%w: segment size must be positive", ErrIllegalArguments)
	}
	if r.IsEmpty() {
		return []Range[N]{}, nil
	}
	segments := make([]Range[N], 0, 8)
	from := r.From
	for {
		// distance is correct modulo 2^64 for signed types, as both
		// conversions sign-extend
		distance := uint64(r.To) - uint64(from)
		if distance < size {
			segments = append(segments, Range[N]{From: from, To: r.To})
			T().Debugf("split %v into %d segments of size ≤ %d", r, len(segments), size)
			return segments, nil
		}
		to := from + N(size-1)
		segments = append(segments, Range[N]{From: from, To: to})
		from = to + 1
	}
}

// Sum applies Sum(f) to r.
func (r Range[N]) Sum(f Func[N]) N {
	return Sum(f)(r.From, r.To)
}

func (r Range[N]) String() string {
	return fmt.Sprintf("[%d, %d]", r.From, r.To)
}
