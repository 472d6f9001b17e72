package parallel

// Chunk is a contiguous half-open range [Start, End) of pixel indices owned
// by exactly one task. Chunk boundaries are drawn at pixel granularity, so a
// pixel's full sample set always belongs to a single chunk.
type Chunk struct {
	Start int
	End   int
}

// Pixels returns the number of pixels in the chunk.
func (c Chunk) Pixels() int {
	return c.End - c.Start
}

// PartitionPixels splits [0, total) into at most chunks contiguous, disjoint
// ranges of near-equal size. The remainder is spread over the leading
// chunks, so sizes differ by at most one pixel.
func PartitionPixels(total, chunks int) []Chunk {
	if total <= 0 {
		return nil
	}
	if chunks <= 0 {
		chunks = 1
	}
	if chunks > total {
		chunks = total
	}

	size := total / chunks
	rem := total % chunks

	out := make([]Chunk, 0, chunks)
	start := 0
	for i := 0; i < chunks; i++ {
		end := start + size
		if i < rem {
			end++
		}
		out = append(out, Chunk{Start: start, End: end})
		start = end
	}
	return out
}
