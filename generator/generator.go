package generator

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Generator produces arrays of uniform pseudo-random float64 values in [0,1).
// The source is injected so runs can be made repeatable with a fixed seed.
type Generator struct {
	dist distuv.Uniform
}

func New(src rand.Source) *Generator {
	return &Generator{dist: distuv.Uniform{Min: 0, Max: 1, Src: src}}
}

// Array returns exactly n draws from the generator.
func (g *Generator) Array(n int) []float64 {
	if n < 0 {
		n = 0
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = g.dist.Rand()
	}
	return out
}
