package table

import (
	"fmt"
	"math/big"

	"github.com/npillmayer/summa"
	"github.com/npillmayer/summa/bignum"
)

// MaxRows is the maximum number of rows Build will create.
const MaxRows = 10000

// Row is a line of a table: argument n, the function value f(n) and the
// sum of all function values up to and including n.
type Row struct {
	N     int64
	Value *big.Int
	Sum   *big.Int
}

// Table holds the rows of a summation over a range.
type Table struct {
	Name  string // name of the function, used for column headings
	Range summa.Range[int64]
	Rows  []Row
}

// Build tabulates f over the inclusive range [a, b]. name is used to label
// the function column. An empty range results in a table without rows.
func Build(name string, f bignum.Func, a, b int64) (*Table, error) {
	if f == nil {
		return nil, ErrNoFunction
	}
	r := summa.Closed(a, b)
	if n := r.Len(); n > MaxRows || (n == 0 && !r.IsEmpty()) {
		return nil, fmt.Errorf("%w: %v", ErrTooManyRows, r)
	}
	tracer().Debugf("building table for %s over %v", name, r)
	t := &Table{
		Name:  name,
		Range: r,
		Rows:  make([]Row, 0, r.Len()),
	}
	if r.IsEmpty() {
		return t, nil
	}
	m := bignum.Monoid{}
	acc := m.Zero()
	for i := a; ; i++ {
		v := f(i)
		acc = m.Add(acc, v)
		t.Rows = append(t.Rows, Row{N: i, Value: v, Sum: acc})
		if i == b {
			break
		}
	}
	return t, nil
}

// Total returns the sum over the complete range, or 0 for an empty table.
func (t *Table) Total() *big.Int {
	if t == nil || len(t.Rows) == 0 {
		return new(big.Int)
	}
	return new(big.Int).Set(t.Rows[len(t.Rows)-1].Sum)
}

// Headings returns the column headings of t.
func (t *Table) Headings() [3]string {
	name := t.Name
	if name == "" {
		name = "f"
	}
	return [3]string{"n", name + "(n)", "Σ"}
}

func (row Row) cells() [3]string {
	return [3]string{
		fmt.Sprintf("%d", row.N),
		row.Value.String(),
		row.Sum.String(),
	}
}
