package etendue

import "golang.org/x/exp/constraints"

// agree reports whether a and b are equal within the relative tolerance tol,
// scaled by max(1, |a|, |b|) so that values near zero compare absolutely.
func agree[T constraints.Float](a, b, tol T) bool {
	if a == b {
		return true
	}
	scale := max(T(1), absf(a), absf(b))

	return absf(a-b) <= tol*scale
}

func absf[T constraints.Float](x T) T {
	if x < 0 {
		return -x
	}

	return x
}
