package summa

import "golang.org/x/exp/constraints"

// Monoid defines how values are accumulated by Fold.
//
// For values s, t, u, Add should be associative:
//
//	Add(Add(s, t), u) == Add(s, Add(t, u))
//
// and Zero should be the neutral element:
//
//	Add(Zero(), s) == s == Add(s, Zero())
//
// Add is not required to be commutative. Fold and its concurrent sibling
// in package parallel always combine values in ascending range order.
type Monoid[V any] interface {
	Zero() V
	Add(left, right V) V
}

// Additive is the monoid of integer addition with neutral element 0.
type Additive[N constraints.Integer] struct{}

// Zero returns 0.
func (Additive[N]) Zero() N { return 0 }

// Add returns left + right.
func (Additive[N]) Add(left, right N) N { return left + right }
