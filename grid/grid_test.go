package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCombinationsOrder(t *testing.T) {
	// leftmost column cycles fastest
	want := [][]int{
		{0, 0},
		{1, 0},
		{0, 1},
		{1, 1},
	}
	got := Combinations([]int{1, 1})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Combinations([1,1]) mismatch (-want +got):\n%s", diff)
	}
}

func TestCombinationsMixedRadix(t *testing.T) {
	want := [][]int{
		{0, 0},
		{1, 0},
		{2, 0},
		{0, 1},
		{1, 1},
		{2, 1},
	}
	got := Combinations([]int{2, 1})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Combinations([2,1]) mismatch (-want +got):\n%s", diff)
	}
}

func TestCombinationsEmpty(t *testing.T) {
	got := Combinations(nil)
	if len(got) != 1 || len(got[0]) != 0 {
		t.Errorf("Combinations(nil) = %v, want one empty row", got)
	}
}

func TestCombinationsNegative(t *testing.T) {
	if got := Combinations([]int{1, -1}); got != nil {
		t.Errorf("Combinations with negative maximum = %v, want nil", got)
	}
}

func TestBinary(t *testing.T) {
	got := Binary(3)
	if len(got) != 8 {
		t.Fatalf("Binary(3) has %d rows, want 8", len(got))
	}
	for r, row := range got {
		stride := 1
		for i, v := range row {
			if want := (r / stride) % 2; v != want {
				t.Errorf("row %d col %d = %d, want %d", r, i, v, want)
			}
			stride *= 2
		}
	}
}
