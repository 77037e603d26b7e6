package sorter

import (
	"errors"

	"golang.org/x/exp/rand"
)

// ErrIterationBudget is returned when a Sorter built with a positive
// iteration budget runs out before the array happens to sort itself.
var ErrIterationBudget = errors.New("sorter: iteration budget exhausted")

// Sorter repeatedly perturbs an array with random swaps until it is sorted.
// Expected runtime grows factorially with the array length; termination is
// probabilistic, not bounded.
type Sorter struct {
	rng            *rand.Rand
	maxSwapsInARow int
	maxIters       int // 0 = unbounded
}

func New(src rand.Source, maxSwapsInARow, maxIters int) *Sorter {
	if maxSwapsInARow < 1 {
		maxSwapsInARow = 1
	}
	return &Sorter{
		rng:            rand.New(src),
		maxSwapsInARow: maxSwapsInARow,
		maxIters:       maxIters,
	}
}

// IsSorted reports whether arr is in non-decreasing order.
// Arrays of length <= 1 are trivially sorted.
func IsSorted(arr []float64) bool {
	for i := 1; i < len(arr); i++ {
		if arr[i] < arr[i-1] {
			return false
		}
	}
	return true
}

func swap(arr []float64, a, b int) {
	arr[a], arr[b] = arr[b], arr[a]
}

// swapTwo exchanges the values at two independently drawn indices.
// The draws may coincide, which leaves arr unchanged.
func (s *Sorter) swapTwo(arr []float64) {
	swap(arr, s.rng.Intn(len(arr)), s.rng.Intn(len(arr)))
}

// swapBurst performs a randomly sized run of single swaps: a uniform draw
// up to maxSwapsInARow, halved, so the default bound of 10 gives 0-4 swaps.
func (s *Sorter) swapBurst(arr []float64) {
	s.runSwaps(arr, s.rng.Intn(s.maxSwapsInARow)/2)
}

func (s *Sorter) runSwaps(arr []float64, n int) {
	for i := 0; i < n; i++ {
		s.swapTwo(arr)
	}
}

// Sort perturbs arr in place until IsSorted observes non-decreasing order,
// choosing between a single swap and a burst with a fair coin each pass.
// It returns the number of perturbation passes taken. With maxIters == 0
// the loop has no upper bound.
func (s *Sorter) Sort(arr []float64) (int, error) {
	iters := 0
	for !IsSorted(arr) {
		if s.maxIters > 0 && iters >= s.maxIters {
			return iters, ErrIterationBudget
		}
		if s.rng.Intn(2) == 0 {
			s.swapBurst(arr)
		} else {
			s.swapTwo(arr)
		}
		iters++
	}
	return iters, nil
}
