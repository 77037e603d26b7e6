package main

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"github.com/manningwu07/randomSort/generator"
	"github.com/manningwu07/randomSort/params"
	"github.com/manningwu07/randomSort/sorter"
)

func main() {
	src := rand.NewSource(uint64(time.Now().UTC().UnixNano()))

	fmt.Printf("Generating random array of %d elements...\n", params.Config.ArrSize)
	arr := generator.New(src).Array(params.Config.ArrSize)

	fmt.Println(sortedInfo(arr))
	fmt.Println("Running random_sort...")

	s := sorter.New(src, params.Config.MaxSwapsInARow, params.Config.MaxIters)
	if _, err := s.Sort(arr); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(sortedInfo(arr))
}

// sortedInfo is the one-line sortedness report printed before and after the run.
func sortedInfo(arr []float64) string {
	if sorter.IsSorted(arr) {
		return "Array is sorted!"
	}
	return "Array *not* sorted."
}
