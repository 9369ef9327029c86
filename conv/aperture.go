package conv

import "github.com/katalvlaran/paraxial/specgrid"

// ApertureFromSlope expresses a marginal-ray slope as the (NA, f-number) pair
// of a space with refractive index n.
//
// Returns a *DomainError when slope is zero.
func ApertureFromSlope(slope, n float64) (na, fno float64, err error) {
	if fno, err = SlopeToFNumber(slope); err != nil {
		return 0, 0, err
	}

	return SlopeToNA(slope, n), fno, nil
}

// SlopeFromAperture recovers the marginal-ray slope described by an aperture
// cell. NA takes precedence over f-number; the pupil diameter alone does not
// fix a slope.
//
// ok is false (with a nil error) when the cell holds neither NA nor f-number.
// Callers must check ok; the returned slope is meaningless otherwise.
func SlopeFromAperture(cell specgrid.ApertureCell, n float64) (slope float64, ok bool, err error) {
	if na, set := cell.NA.Get(); set {
		slope, err = NAToSlope(na, n)

		return slope, err == nil, err
	}
	if fno, set := cell.FNumber.Get(); set {
		slope, err = FNumberToSlope(fno)

		return slope, err == nil, err
	}

	return 0, false, nil
}
