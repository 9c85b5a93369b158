package search

import "slices"

// FrequencyTable maps a cycle length to the number of initial
// configurations whose trajectory settles into a cycle of that length.
type FrequencyTable map[int]uint64

// Add counts one configuration with the given cycle length.
func (f FrequencyTable) Add(length int) { f[length]++ }

// Merge adds every count of o into f.
func (f FrequencyTable) Merge(o FrequencyTable) {
	for length, n := range o {
		f[length] += n
	}
}

// Total returns the number of configurations counted.
func (f FrequencyTable) Total() uint64 {
	var total uint64
	for _, n := range f {
		total += n
	}
	return total
}

// Lengths returns the observed cycle lengths in ascending order.
func (f FrequencyTable) Lengths() []int {
	lengths := make([]int, 0, len(f))
	for length := range f {
		lengths = append(lengths, length)
	}
	slices.Sort(lengths)
	return lengths
}
