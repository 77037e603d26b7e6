package params

// Run settings
type RunConfig struct {
	ArrSize        int // elements in the generated array
	MaxSwapsInARow int // bound for the burst draw; halved, so 10 -> 0-4 swaps
	MaxIters       int // sort iteration budget, 0 = unbounded
}

// Reasonable defaults for the demo run
var Config = RunConfig{
	ArrSize:        10,
	MaxSwapsInARow: 10,
	MaxIters:       0, // unbounded loop is the point of the demo
}
