package wide

// U64x4 represents 4 uint64 values, used for per-lane iteration counters.
type U64x4 [Width]uint64

// SplatU64 creates U64x4 with all lanes set to n.
func SplatU64(n uint64) U64x4 {
	var result U64x4
	for i := range result {
		result[i] = n
	}
	return result
}

// Add performs lane-wise addition.
func (v U64x4) Add(other U64x4) U64x4 {
	var result U64x4
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}
