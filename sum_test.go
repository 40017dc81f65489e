package summa

import (
	"math"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// sumRec is the recursive textbook definition, used as a reference.
func sumRec(f Func[int], a, b int) int {
	if a > b {
		return 0
	}
	return f(a) + sumRec(f, a+1, b)
}

func TestHelpers(t *testing.T) {
	if Square(4) != 16 {
		t.Errorf("expected square(4) = 16, is %d", Square(4))
	}
	if Cube(4) != 64 {
		t.Errorf("expected cube(4) = 64, is %d", Cube(4))
	}
	if Identity(7) != 7 {
		t.Errorf("expected id(7) = 7, is %d", Identity(7))
	}
	if Cube(-3) != -27 {
		t.Errorf("expected cube(-3) = -27, is %d", Cube(-3))
	}
}

func TestSumSpecializations(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	cases := []struct {
		name string
		sum  RangeFunc[int]
		a, b int
		want int
	}{
		{"ints 1..10", SumInts[int](), 1, 10, 55},
		{"cubes 1..3", SumCubes[int](), 1, 3, 36},
		{"squares 1..3", SumSquares[int](), 1, 3, 14},
		{"fact 0..3", SumFact[int](), 0, 3, 10},
		{"single element", SumCubes[int](), 2, 2, 8},
		{"inverted range", SumInts[int](), 10, 1, 0},
		{"negative bounds", SumInts[int](), -5, 5, 0},
	}
	for _, c := range cases {
		if got := c.sum(c.a, c.b); got != c.want {
			t.Errorf("%s: expected %d, got %d", c.name, c.want, got)
		}
	}
}

func TestSumOfEmptyRangeIgnoresFunction(t *testing.T) {
	called := false
	f := func(n int) int {
		called = true
		return n
	}
	if s := Sum(f)(1, 0); s != 0 {
		t.Errorf("expected empty range to sum to 0, got %d", s)
	}
	if called {
		t.Errorf("expected f not to be called for an empty range")
	}
}

func TestSumCallsEachElementOnce(t *testing.T) {
	seen := map[int]int{}
	f := func(n int) int {
		seen[n]++
		return 0
	}
	Sum(f)(-3, 4)
	if len(seen) != 8 {
		t.Fatalf("expected 8 distinct arguments, got %d", len(seen))
	}
	for n, cnt := range seen {
		if cnt != 1 {
			t.Errorf("f(%d) called %d times", n, cnt)
		}
	}
}

func TestSumUpToMaxValue(t *testing.T) {
	// must terminate although i++ would overflow after MaxInt8
	n := 0
	count := func(int8) int8 {
		n++
		return 1
	}
	s := Sum(count)(120, math.MaxInt8)
	if s != 8 || n != 8 {
		t.Errorf("expected 8 summands, got sum=%d, calls=%d", s, n)
	}
	s8 := SumInts[uint8]()(math.MaxUint8, math.MaxUint8)
	if s8 != math.MaxUint8 {
		t.Errorf("expected single element range to yield %d, got %d", math.MaxUint8, s8)
	}
}

func TestSumMatchesRecursiveDefinition(t *testing.T) {
	r := rand.New(rand.NewSource(4711))
	funcs := []Func[int]{Identity[int], Square[int], Cube[int], Fact[int]}
	for i := 0; i < 200; i++ {
		k := r.Intn(len(funcs))
		f := funcs[k]
		a := r.Intn(40) - 20
		b := r.Intn(40) - 20
		if k == 3 { // keep factorials clear of overflow
			a, b = a%12, b%12
		}
		got := Sum(f)(a, b)
		want := sumRec(f, a, b)
		if got != want {
			t.Fatalf("sum over [%d, %d]: fold=%d, recursion=%d", a, b, got, want)
		}
		if a <= b && got != f(a)+Sum(f)(a+1, b) {
			t.Fatalf("decomposition law violated for [%d, %d]", a, b)
		}
	}
}

func TestFoldNonCommutative(t *testing.T) {
	digits := Fold(func(n int) string { return string(rune('0' + n)) }, concat{})
	if s := digits(1, 5); s != "12345" {
		t.Errorf("expected fold to combine left to right, got %q", s)
	}
	if s := digits(5, 1); s != "" {
		t.Errorf("expected empty range to yield monoid zero, got %q", s)
	}
}

type concat struct{}

func (concat) Zero() string                 { return "" }
func (concat) Add(left, right string) string { return left + right }

func FuzzSumDecomposition(f *testing.F) {
	f.Add(int16(1), int16(10))
	f.Add(int16(-7), int16(3))
	f.Add(int16(3), int16(-7))
	f.Fuzz(func(t *testing.T, a, b int16) {
		lo, hi := int(a)%500, int(b)%500
		sum := SumSquares[int]()
		got := sum(lo, hi)
		if lo > hi {
			if got != 0 {
				t.Fatalf("expected 0 for inverted range [%d, %d], got %d", lo, hi, got)
			}
			return
		}
		if got != Square(lo)+sum(lo+1, hi) {
			t.Fatalf("decomposition law violated for [%d, %d]", lo, hi)
		}
		if got != sumRec(Square[int], lo, hi) {
			t.Fatalf("fold differs from recursion for [%d, %d]", lo, hi)
		}
	})
}
