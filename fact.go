package summa

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Fact returns n!, defined as 1 for n ≤ 1 and n * Fact(n-1) otherwise.
//
// Negative arguments satisfy n ≤ 1 and therefore result in 1. The result wraps
// around silently if n! exceeds the range of N; use CheckedFact to detect this.
func Fact[N constraints.Integer](n N) N {
	acc := N(1)
	for i := n; i > 1; i-- {
		acc *= i
	}
	return acc
}

// CheckedFact returns n! or an error. It flags ErrNegativeArgument for n < 0
// and ErrOverflow if n! is not representable with type N.
func CheckedFact[N constraints.Integer](n N) (N, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: factorial of %d", ErrNegativeArgument, n)
	}
	acc := N(1)
	for i := n; i > 1; i-- {
		r := acc * i
		if r/i != acc {
			return 0, fmt.Errorf("%w: %d! exceeds %T", ErrOverflow, n, n)
		}
		acc = r
	}
	return acc, nil
}
