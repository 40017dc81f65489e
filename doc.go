/*
Package summa offers a small set of integer helpers and a summation combinator.

Summation

Sum takes a unary function f and returns a function over an inclusive range
[a, b] which adds up f(a) + f(a+1) + … + f(b). An inverted range (a > b) is
empty and sums to 0, regardless of f.

	sumCubes := summa.SumCubes[int]()
	sumCubes(1, 3)   // 1 + 8 + 27 = 36

The textbook definition of Sum is recursive:

	Sum(f)(a, b) = 0                       if a > b
	Sum(f)(a, b) = f(a) + Sum(f)(a+1, b)   otherwise

This package evaluates it as a left fold with an accumulator, which yields
identical results without growing the call stack.

Fold lifts the same idea to arbitrary monoids, i.e. to value types which
have a neutral element and an associative addition. Sub-package bignum uses
this for arbitrary precision integers, sub-package parallel exploits
associativity to fold segments of a range concurrently.

Fixed-width integers wrap on overflow, as Go arithmetic does. Clients which
need exact results for large inputs (factorials grow fast) should use
package bignum or CheckedFact.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package summa

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// SumError is an error type for the summa module
type SumError string

func (e SumError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = SumError("illegal arguments")

// ErrNegativeArgument is flagged by checked functions which are undefined
// for negative input, e.g. CheckedFact.
const ErrNegativeArgument = SumError("negative argument")

// ErrOverflow is flagged whenever a checked calculation does not fit into
// the integer type it is performed with.
const ErrOverflow = SumError("integer overflow")
