/*
Package table tabulates summations over a range.

A table lists, for every n of an inclusive range, the value f(n) and the
running sum f(a) + … + f(n). Tables may be rendered to a console with a
fixed width font, or as HTML.

Console output is a bit tricky: numbers may grow large (factorials do) and
column widths have to be measured in terms of the console's character cells.
We use the East Asian Width rules of UAX #11 for this, as the ellipsis used
to abbreviate long numbers is an ambiguous-width character.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package table

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'summa'
func tracer() tracing.Trace {
	return tracing.Select("summa")
}

var (
	// ErrTooManyRows signals that a range is too large to be tabulated.
	ErrTooManyRows = errors.New("table: range exceeds maximum number of rows")
	// ErrNoFunction signals a missing summand.
	ErrNoFunction = errors.New("table: function is nil")
	// ErrNoTable signals that a nil table has been passed for rendering.
	ErrNoTable = errors.New("table: table is nil")
)
