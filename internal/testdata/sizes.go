package testdata

type Size struct {
	Name string
	N    int
}

// Sizes are the message sizes used by benchmarks.
var Sizes = []Size{
	{"0B", 0},
	{"1B", 1},
	{"64B", 64},
	{"1KiB", 1024},
	{"8KiB", 8 * 1024},
	{"64KiB", 64 * 1024},
	{"1MiB", 1024 * 1024},
}

// Boundaries returns every message length from 0 through three blocks plus one, plus the lengths on either side of
// the point where padding spills into an extra block.
func Boundaries(blockSize, reserved int) []int {
	lengths := make([]int, 0, 3*blockSize+8)
	for n := range 3*blockSize + 2 {
		lengths = append(lengths, n)
	}

	for _, k := range []int{1, 2, 7} {
		spill := k*blockSize - reserved
		lengths = append(lengths, spill-1, spill, spill+1)
	}
	return lengths
}
