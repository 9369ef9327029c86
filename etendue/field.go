// SPDX-License-Identifier: MIT

package etendue

import (
	"github.com/katalvlaran/paraxial/conv"
	"github.com/katalvlaran/paraxial/specgrid"
)

// PropagateField carries a known field quantity across the imager.
//
// Branches:
//   - object angle θ:                 h' = f·tan θ
//   - object height h (finite):       h' = m·h
//   - image height h' (infinite):     θ  = atan(h'/f)
//   - image height h' (finite):       h  = ObjectHeightFromImage(h', m)
//
// The known quantity is echoed into out on side known, the derived one is
// written on the opposite side. Nothing is written when an error is returned.
//
// Errors:
//   - ErrConjugateMismatch when conj disagrees with im.M.
//   - ErrUnderdetermined when the cell holds no usable label for its side
//     and regime (e.g. an image angle, or an object height at infinity).
//   - ErrDomain on a zero focal length or a zero divisor.
//   - ErrNilGrid when out is nil.
func PropagateField(conj ConjugateType, im Imager, side specgrid.Side, known specgrid.FieldCell, out *specgrid.Grid, opts ...Option) error {
	if out == nil {
		return ErrNilGrid
	}
	if err := checkConjugate(conj, im); err != nil {
		return err
	}
	o := gatherOptions(opts...)

	var echo, derived specgrid.FieldCell
	switch side {
	case specgrid.Object:
		if ang, ok := known.Angle.Get(); ok {
			if im.F == 0 {
				return conv.Domain("PropagateField", im.F, "object angle needs a non-zero focal length")
			}
			echo.Angle = known.Angle
			derived.Height = specgrid.Of(im.F * conv.AngleToSlope(ang))
			break
		}
		h, ok := known.Height.Get()
		if !ok {
			return underdetermined("object field has neither angle nor height")
		}
		if conj == Infinite {
			return underdetermined("object height is undefined at infinite conjugate")
		}
		echo.Height = known.Height
		derived.Height = specgrid.Of(im.M * h)

	case specgrid.Image:
		h, ok := known.Height.Get()
		if !ok {
			return underdetermined("image field needs a height")
		}
		echo.Height = known.Height
		if conj == Infinite {
			if im.F == 0 {
				return conv.Domain("PropagateField", im.F, "image height needs a non-zero focal length")
			}
			derived.Angle = specgrid.Of(conv.SlopeToAngle(h / im.F))
			break
		}
		obj, err := ObjectHeightFromImage(h, im.M, o.inverse)
		if err != nil {
			return err
		}
		derived.Height = specgrid.Of(obj)

	default:
		return underdetermined("unknown side %s", side)
	}

	mergeField(out.Field(side), echo)
	mergeField(out.Field(side.Opposite()), derived)
	o.logger.Debug("etendue: field propagated",
		"from", side, "conjugate", conj, "echo", echo.String(), "derived", derived.String())

	return nil
}

// ObjectHeightFromImage inverts the finite-conjugate field relation.
//
//	InverseAlgebraic: h = h'/m   (inverse of h' = m·h)
//	InverseLegacy:    h = m/h'
//
// Both are exposed because earlier releases used the legacy form; it does not
// invert h' = m·h and is kept only for numeric parity with stored results.
// Returns ErrDomain when the divisor is zero.
func ObjectHeightFromImage(imageHeight, m float64, rel FieldInverse) (float64, error) {
	if rel == InverseLegacy {
		if imageHeight == 0 {
			return 0, conv.Domain("ObjectHeightFromImage", imageHeight, "legacy relation divides by image height")
		}

		return m / imageHeight, nil
	}
	if m == 0 {
		return 0, conv.Domain("ObjectHeightFromImage", m, "zero magnification")
	}

	return imageHeight / m, nil
}

// mergeField copies the set labels of src into dst.
func mergeField(dst *specgrid.FieldCell, src specgrid.FieldCell) {
	if src.Height.IsSet() {
		dst.Height = src.Height
	}
	if src.Angle.IsSet() {
		dst.Angle = src.Angle
	}
}
