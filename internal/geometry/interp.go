package geometry

// InterpolateFromTable linearly interpolates y for the given x over a lookup
// table whose xs are sorted in descending order. Outside the table's domain
// the first or last y is returned unchanged (clamp, no extrapolation).
// Mismatched or empty tables yield 0.
func InterpolateFromTable(x float64, xs, ys []float64) float64 {
	if len(xs) == 0 || len(xs) != len(ys) {
		return 0
	}
	if x >= xs[0] {
		return ys[0]
	}
	last := len(xs) - 1
	if x <= xs[last] {
		return ys[last]
	}
	for i := 0; i < last; i++ {
		if x <= xs[i] && x >= xs[i+1] {
			span := xs[i] - xs[i+1]
			if span == 0 {
				return ys[i]
			}
			t := (xs[i] - x) / span
			return ys[i] + t*(ys[i+1]-ys[i])
		}
	}
	return ys[last]
}
