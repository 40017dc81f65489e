/*
Package bignum provides the helpers and summations of package summa for
arbitrary precision integers.

Arguments and range bounds are int64, results are *big.Int and never
overflow. Every function returns a freshly allocated *big.Int, which the
caller is free to modify.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package bignum

import (
	"math/big"

	"github.com/npillmayer/summa"
)

// Func is a function from int64 to arbitrary precision integers.
type Func func(n int64) *big.Int

// RangeFunc is a function over an inclusive range [a, b] of int64.
type RangeFunc func(a, b int64) *big.Int

// Monoid aggregates *big.Int values by addition. Add allocates a new result
// and leaves its arguments untouched.
type Monoid struct{}

// Zero returns a new big integer with value 0.
func (Monoid) Zero() *big.Int { return new(big.Int) }

// Add returns left + right.
func (Monoid) Add(left, right *big.Int) *big.Int {
	return new(big.Int).Add(left, right)
}

var _ summa.Monoid[*big.Int] = Monoid{}

// Identity returns n.
func Identity(n int64) *big.Int {
	return big.NewInt(n)
}

// Square returns n*n.
func Square(n int64) *big.Int {
	x := big.NewInt(n)
	return x.Mul(x, x)
}

// Cube returns n*n*n.
func Cube(n int64) *big.Int {
	x := big.NewInt(n)
	c := new(big.Int).Mul(x, x)
	return c.Mul(c, x)
}

// Fact returns n!, which is 1 for n ≤ 1.
func Fact(n int64) *big.Int {
	if n <= 1 {
		return big.NewInt(1)
	}
	return new(big.Int).MulRange(2, n)
}

// Sum returns a function which calculates f(a) + f(a+1) + … + f(b) for an
// inclusive range [a, b], or 0 if a > b.
func Sum(f Func) RangeFunc {
	return RangeFunc(summa.Fold[int64, *big.Int](f, Monoid{}))
}

// SumInts sums up the integers of a range.
func SumInts() RangeFunc {
	return Sum(Identity)
}

// SumSquares sums up the squares of the integers of a range.
func SumSquares() RangeFunc {
	return Sum(Square)
}

// SumCubes sums up the cubes of the integers of a range.
func SumCubes() RangeFunc {
	return Sum(Cube)
}

// SumFact sums up the factorials of the integers of a range.
func SumFact() RangeFunc {
	return Sum(Fact)
}
