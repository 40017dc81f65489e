package summa

import (
	"errors"
	"math"
	"testing"
)

func TestRangeBasics(t *testing.T) {
	r := Closed(1, 10)
	if r.IsEmpty() || r.Len() != 10 {
		t.Errorf("expected [1, 10] to hold 10 integers, has %d", r.Len())
	}
	if !r.Contains(1) || !r.Contains(10) || r.Contains(11) {
		t.Errorf("expected [1, 10] to be inclusive on both ends")
	}
	if e := Closed(3, 2); !e.IsEmpty() || e.Len() != 0 {
		t.Errorf("expected [3, 2] to be empty")
	}
	if r.Sum(Identity[int]) != 55 {
		t.Errorf("expected sum over [1, 10] = 55, got %d", r.Sum(Identity[int]))
	}
	if s := r.String(); s != "[1, 10]" {
		t.Errorf("unexpected string representation %q", s)
	}
	full := Closed[int8](math.MinInt8, math.MaxInt8)
	if full.Len() != 256 {
		t.Errorf("expected full int8 range to hold 256 integers, has %d", full.Len())
	}
}

func TestRangeSplit(t *testing.T) {
	segs, err := Closed(1, 10).Split(4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Range[int]{{1, 4}, {5, 8}, {9, 10}}
	if len(segs) != len(want) {
		t.Fatalf("expected %d segments, got %v", len(want), segs)
	}
	for i := range want {
		if segs[i] != want[i] {
			t.Errorf("segment %d: expected %v, got %v", i, want[i], segs[i])
		}
	}
	segs, _ = Closed(5, 4).Split(3)
	if len(segs) != 0 {
		t.Errorf("expected no segments for an empty range, got %v", segs)
	}
	if _, err = Closed(1, 2).Split(0); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for segment size 0, got %v", err)
	}
}

func TestRangeSplitAtTypeBoundaries(t *testing.T) {
	segs, err := Closed[int8](math.MinInt8, math.MaxInt8).Split(100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Range[int8]{{-128, -29}, {-28, 71}, {72, 127}}
	if len(segs) != len(want) {
		t.Fatalf("expected %d segments, got %v", len(want), segs)
	}
	for i := range want {
		if segs[i] != want[i] {
			t.Errorf("segment %d: expected %v, got %v", i, want[i], segs[i])
		}
	}
	usegs, _ := Closed[uint8](250, math.MaxUint8).Split(1000)
	if len(usegs) != 1 || usegs[0] != (Range[uint8]{250, 255}) {
		t.Errorf("expected a single segment [250, 255], got %v", usegs)
	}
}
