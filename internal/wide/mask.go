package wide

// Mask4 is a per-lane boolean mask produced by comparisons and consumed by
// the Select operations.
type Mask4 [Width]bool

// Any reports whether at least one lane is set.
func (m Mask4) Any() bool {
	for i := range m {
		if m[i] {
			return true
		}
	}
	return false
}

// None reports whether no lane is set.
func (m Mask4) None() bool {
	return !m.Any()
}

// SelectF64 returns a[i] where the mask is set and b[i] where it is not.
func SelectF64(m Mask4, a, b F64x4) F64x4 {
	var result F64x4
	for i := range result {
		if m[i] {
			result[i] = a[i]
		} else {
			result[i] = b[i]
		}
	}
	return result
}

// SelectU64 returns a[i] where the mask is set and b[i] where it is not.
func SelectU64(m Mask4, a, b U64x4) U64x4 {
	var result U64x4
	for i := range result {
		if m[i] {
			result[i] = a[i]
		} else {
			result[i] = b[i]
		}
	}
	return result
}
