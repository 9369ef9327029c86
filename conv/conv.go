package conv

import "math"

// NAToSlope converts a numerical aperture to a marginal-ray slope in a space
// of refractive index n: n·tan(asin(na/n)).
//
// Returns a *DomainError when n is not a positive finite number or when
// |na/n| ≥ 1 (asin undefined, or the slope is unbounded).
func NAToSlope(na, n float64) (float64, error) {
	if !(n > 0) || math.IsInf(n, 1) {
		return 0, Domain("NAToSlope", n, "refractive index must be positive and finite")
	}
	r := na / n
	if math.IsNaN(r) || math.Abs(r) >= 1 {
		return 0, Domain("NAToSlope", na, "|NA/n| must be < 1")
	}

	return n * math.Tan(math.Asin(r)), nil
}

// SlopeToNA converts a marginal-ray slope to a numerical aperture in a space
// of refractive index n: n·sin(atan(slope/n)).
func SlopeToNA(slope, n float64) float64 {
	return n * math.Sin(math.Atan(slope/n))
}

// AngleToSlope converts an angle in degrees to a slope.
func AngleToSlope(deg float64) float64 {
	return math.Tan(deg * math.Pi / 180)
}

// SlopeToAngle converts a slope to an angle in degrees.
func SlopeToAngle(slope float64) float64 {
	return math.Atan(slope) * 180 / math.Pi
}

// SlopeToFNumber returns -1/(2·slope).
// Returns a *DomainError when slope is zero.
func SlopeToFNumber(slope float64) (float64, error) {
	if slope == 0 {
		return 0, Domain("SlopeToFNumber", slope, "zero slope has no f-number")
	}

	return -1 / (2 * slope), nil
}

// FNumberToSlope returns -1/(2·fno).
// Returns a *DomainError when fno is zero.
func FNumberToSlope(fno float64) (float64, error) {
	if fno == 0 {
		return 0, Domain("FNumberToSlope", fno, "zero f-number")
	}

	return -1 / (2 * fno), nil
}
