package wide

// F64x4 represents 4 float64 values for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
type F64x4 [Width]float64

// SplatF64 creates F64x4 with all lanes set to n.
func SplatF64(n float64) F64x4 {
	var result F64x4
	for i := range result {
		result[i] = n
	}
	return result
}

// Add performs lane-wise addition.
func (v F64x4) Add(other F64x4) F64x4 {
	var result F64x4
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs lane-wise subtraction.
func (v F64x4) Sub(other F64x4) F64x4 {
	var result F64x4
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs lane-wise multiplication.
func (v F64x4) Mul(other F64x4) F64x4 {
	var result F64x4
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// MulAdd computes v*b + c per lane.
func (v F64x4) MulAdd(b, c F64x4) F64x4 {
	var result F64x4
	for i := range v {
		result[i] = v[i]*b[i] + c[i]
	}
	return result
}

// LessEq compares v <= other per lane.
func (v F64x4) LessEq(other F64x4) Mask4 {
	var m Mask4
	for i := range v {
		m[i] = v[i] <= other[i]
	}
	return m
}

// Greater compares v > other per lane.
func (v F64x4) Greater(other F64x4) Mask4 {
	var m Mask4
	for i := range v {
		m[i] = v[i] > other[i]
	}
	return m
}
