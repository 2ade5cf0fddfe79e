package calculation

// Clamp limits v to [lo, hi]. It is the single boundary policy used wherever a
// derived quantity must stay inside configured bounds.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
