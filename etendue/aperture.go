// SPDX-License-Identifier: MIT

package etendue

import (
	"github.com/katalvlaran/paraxial/conv"
	"github.com/katalvlaran/paraxial/specgrid"
)

// PropagateAperture carries a known aperture across the imager.
//
// Branches (u object-space slope, u' image-space slope, D pupil diameter):
//   - infinite, object known (D required):  u' = (D/2)/f   → image NA, f/#
//   - infinite, image known (NA or f/#):    D  = 2·u'·f    → object pupil
//   - finite, object known (NA or f/#):     u' = u/m       → image NA, f/#
//   - finite, image known (NA or f/#):      u  = m·u'      → object NA, f/#
//
// On the known side the input is echoed, completed with the NA and f/#
// derived from its slope (except for the infinite object side, whose only
// quantity is the pupil). The derived side always receives both NA and f/#,
// or the pupil. Values are computed before any write, so nothing is written
// when an error is returned.
//
// Errors:
//   - ErrConjugateMismatch when conj disagrees with im.M.
//   - ErrUnderdetermined when the known cell lacks the label its branch needs.
//   - ErrDomain on a zero focal length, a zero slope or |NA/n| ≥ 1.
//   - ErrBadIndex, ErrNilGrid.
func PropagateAperture(conj ConjugateType, im Imager, side specgrid.Side, known specgrid.ApertureCell, idx Indices, out *specgrid.Grid, opts ...Option) error {
	if out == nil {
		return ErrNilGrid
	}
	if err := idx.Validate(); err != nil {
		return err
	}
	if err := checkConjugate(conj, im); err != nil {
		return err
	}
	if side != specgrid.Object && side != specgrid.Image {
		return underdetermined("unknown side %s", side)
	}
	o := gatherOptions(opts...)

	var (
		echo, derived specgrid.ApertureCell
		err           error
	)
	if conj == Infinite {
		echo, derived, err = apertureInfinite(im.F, side, known, idx)
	} else {
		echo, derived, err = apertureFinite(im.M, side, known, idx)
	}
	if err != nil {
		return err
	}

	mergeAperture(out.Aperture(side), echo)
	mergeAperture(out.Aperture(side.Opposite()), derived)
	o.logger.Debug("etendue: aperture propagated",
		"from", side, "conjugate", conj, "echo", echo.String(), "derived", derived.String())

	return nil
}

func apertureInfinite(f float64, side specgrid.Side, known specgrid.ApertureCell, idx Indices) (echo, derived specgrid.ApertureCell, err error) {
	if f == 0 {
		return echo, derived, conv.Domain("PropagateAperture", f, "infinite conjugate needs a non-zero focal length")
	}

	if side == specgrid.Object {
		d, ok := known.Pupil.Get()
		if !ok {
			return echo, derived, underdetermined("infinite conjugate object aperture needs a pupil")
		}
		if derived, err = apertureCell(d/2/f, idx.Image); err != nil {
			return echo, derived, err
		}
		echo.Pupil = known.Pupil

		return echo, derived, nil
	}

	uk, err := slopeOf(known, idx.Image)
	if err != nil {
		return echo, derived, err
	}
	if echo, err = apertureCell(uk, idx.Image); err != nil {
		return echo, derived, err
	}
	echo.Pupil = known.Pupil
	derived.Pupil = specgrid.Of(2 * uk * f)

	return echo, derived, nil
}

func apertureFinite(m float64, side specgrid.Side, known specgrid.ApertureCell, idx Indices) (echo, derived specgrid.ApertureCell, err error) {
	u, err := slopeOf(known, idx.Of(side))
	if err != nil {
		return echo, derived, err
	}
	if echo, err = apertureCell(u, idx.Of(side)); err != nil {
		return echo, derived, err
	}
	echo.Pupil = known.Pupil

	// m != 0 is guaranteed by checkConjugate.
	var v float64
	if side == specgrid.Object {
		v = u / m
	} else {
		v = m * u
	}
	derived, err = apertureCell(v, idx.Of(side.Opposite()))

	return echo, derived, err
}

// slopeOf is conv.SlopeFromAperture with "unavailable" turned into an error.
func slopeOf(cell specgrid.ApertureCell, n float64) (float64, error) {
	u, ok, err := conv.SlopeFromAperture(cell, n)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, underdetermined("aperture cell has neither NA nor f/#")
	}

	return u, nil
}

// apertureCell returns a cell holding both NA and f/# for slope u.
func apertureCell(u, n float64) (specgrid.ApertureCell, error) {
	na, fno, err := conv.ApertureFromSlope(u, n)
	if err != nil {
		return specgrid.ApertureCell{}, err
	}

	return specgrid.ApertureCell{NA: specgrid.Of(na), FNumber: specgrid.Of(fno)}, nil
}

// mergeAperture copies the set labels of src into dst.
func mergeAperture(dst *specgrid.ApertureCell, src specgrid.ApertureCell) {
	if src.Pupil.IsSet() {
		dst.Pupil = src.Pupil
	}
	if src.NA.IsSet() {
		dst.NA = src.NA
	}
	if src.FNumber.IsSet() {
		dst.FNumber = src.FNumber
	}
}
