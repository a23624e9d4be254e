package hctree

// NumSymbols is the size of the byte alphabet.
const NumSymbols = 256

// Frequencies holds the number of occurrences of each byte value.
type Frequencies [NumSymbols]uint64

// Count adds the occurrences of each byte in data.
func (f *Frequencies) Count(data []byte) {
	for _, b := range data {
		f[b]++
	}
}

// Total returns the sum of all counts.
func (f *Frequencies) Total() uint64 {
	var total uint64
	for _, freq := range f {
		total = addSaturating(total, freq)
	}
	return total
}

// Distinct returns the number of byte values with a positive count.
func (f *Frequencies) Distinct() int {
	var n int
	for _, freq := range f {
		if freq != 0 {
			n++
		}
	}
	return n
}
