package summa

import "golang.org/x/exp/constraints"

// Func is a unary function over integers, suitable as the summand of Sum.
type Func[N constraints.Integer] func(n N) N

// RangeFunc is a function over an inclusive integer range [a, b], as
// returned by Sum and its specializations.
type RangeFunc[N constraints.Integer] func(a, b N) N

// Identity returns n.
func Identity[N constraints.Integer](n N) N {
	return n
}

// Square returns n*n.
func Square[N constraints.Integer](n N) N {
	return n * n
}

// Cube returns n*n*n.
func Cube[N constraints.Integer](n N) N {
	return n * n * n
}
