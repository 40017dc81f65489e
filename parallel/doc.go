/*
Package parallel folds functions over integer ranges concurrently.

A range is split into segments of consecutive integers. Segments are folded
by a bounded group of goroutines and the partial results are combined in
ascending order. Because monoid addition is associative, the result is
identical to a sequential summa.Fold over the complete range. Commutativity
is not required.

Parallel folding pays off only if evaluating the summand is expensive
compared to scheduling a segment, or if ranges are very large.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package parallel

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'summa'
func tracer() tracing.Trace {
	return tracing.Select("summa")
}

var (
	// ErrInvalidOption signals an invalid option value.
	ErrInvalidOption = errors.New("parallel: invalid option")
	// ErrFuncPanicked signals that the summand panicked for a segment.
	ErrFuncPanicked = errors.New("parallel: summand panicked")
)
