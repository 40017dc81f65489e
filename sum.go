package summa

import "golang.org/x/exp/constraints"

// Fold returns a function which accumulates f(i) for every i of an inclusive
// range [a, b], using monoid m. For an empty range (a > b) the result is
// m.Zero(), for a == b it is m.Add(m.Zero(), f(a)).
//
// Values are combined from left to right:
//
//	m.Add(…m.Add(m.Add(m.Zero(), f(a)), f(a+1))…, f(b))
//
// Fold does not recover from panics raised by f.
func Fold[N constraints.Integer, V any](f func(N) V, m Monoid[V]) func(a, b N) V {
	return func(a, b N) V {
		acc := m.Zero()
		if a > b {
			return acc
		}
		// loop on equality: b may be the largest value of N
		for i := a; ; i++ {
			acc = m.Add(acc, f(i))
			if i == b {
				break
			}
		}
		return acc
	}
}

// Sum returns a function which, given inclusive bounds a and b, calculates
//
//	f(a) + f(a+1) + … + f(b)
//
// It returns 0 for a > b and f(a) for a == b. Sum(f)(a, b) equals
// f(a) + Sum(f)(a+1, b) for every a < b.
func Sum[N constraints.Integer](f Func[N]) RangeFunc[N] {
	return RangeFunc[N](Fold[N, N](f, Additive[N]{}))
}

// SumInts sums up the integers of a range.
func SumInts[N constraints.Integer]() RangeFunc[N] {
	return Sum(Func[N](Identity[N]))
}

// SumSquares sums up the squares of the integers of a range.
func SumSquares[N constraints.Integer]() RangeFunc[N] {
	return Sum(Func[N](Square[N]))
}

// SumCubes sums up the cubes of the integers of a range.
func SumCubes[N constraints.Integer]() RangeFunc[N] {
	return Sum(Func[N](Cube[N]))
}

// SumFact sums up the factorials of the integers of a range.
func SumFact[N constraints.Integer]() RangeFunc[N] {
	return Sum(Func[N](Fact[N]))
}
