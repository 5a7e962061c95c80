// Package grid enumerates digit combinations over integer ranges.
//
// The enumeration order is load-bearing for the rest of the module: nodal-type
// digit positions are 1-based indexes into these grids, so the order must
// never change.
package grid

// Combinations returns every combination of integers in [0, maxima[i]] as one
// row per combination, with one column per entry of maxima. The leftmost
// column cycles fastest: for maxima [1, 1] the rows are
// (0,0), (1,0), (0,1), (1,1).
//
// The value of column i in 0-based row r is (r / stride_i) % (maxima[i]+1)
// where stride_i is the product of (maxima[j]+1) over all j < i.
//
// An empty maxima slice yields a single empty row (the empty combination).
// Any negative maximum yields nil.
func Combinations(maxima []int) [][]int {
	total := 1
	for _, m := range maxima {
		if m < 0 {
			return nil
		}
		total *= m + 1
	}

	rows := make([][]int, total)
	for r := 0; r < total; r++ {
		row := make([]int, len(maxima))
		stride := 1
		for i, m := range maxima {
			row[i] = (r / stride) % (m + 1)
			stride *= m + 1
		}
		rows[r] = row
	}
	return rows
}

// Binary returns the combination grid for n binary digits, i.e.
// Combinations of n ones: 2^n rows of n columns over {0, 1}.
func Binary(n int) [][]int {
	maxima := make([]int, n)
	for i := range maxima {
		maxima[i] = 1
	}
	return Combinations(maxima)
}
