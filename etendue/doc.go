// SPDX-License-Identifier: MIT

// Package etendue infers the missing half of an optical specification from
// paraxial conjugate relations.
//
// 🚀 What it solves
//
//	Given some of object field, image field, object aperture and image
//	aperture, plus (optionally) a known imager, it
//	  • propagates the known imager across the conjugates to fill the
//	    side that is still empty (PropagateField, PropagateAperture);
//	  • derives the imager itself (focal length f or magnification m)
//	    when both sides of a category are known (Solve, Reconcile).
//
// ✨ Relations used
//
//	infinite conjugate (M == 0):  h' = f·u        u' = (D/2)/f
//	finite conjugate   (M != 0):  h' = m·h        u' = u/m
//
// where h, h' are object/image heights, u, u' marginal-ray slopes and D the
// entrance-pupil diameter. Slopes convert to NA, f-number and angle through
// package conv.
//
// Decision table of Solve, keyed by populated sides per category:
//
//	field \ aperture │ 0          1                  2
//	─────────────────┼──────────────────────────────────────────────
//	0                │ –          propagate A        derive from A
//	1                │ propagate F  propagate F+A    propagate F, derive from A
//	2                │ derive F   derive F, prop. A  derive F and A → policy
//
// When both categories derive a characteristic the Precedence option decides:
// RequireAgreement (default) returns a *ConflictError unless both agree within
// the tolerance; PreferField and PreferAperture pick one side.
//
// ⚙️ Usage:
//
//	in := specgrid.New()
//	in.Field(specgrid.Object).Angle = specgrid.Of(5)
//	in.Field(specgrid.Image).Height = specgrid.Of(10)
//
//	out := specgrid.New()
//	sol, err := etendue.Solve(etendue.Infinite, etendue.Imager{}, in, out, etendue.Air)
//	// sol.Characteristic == {FocalLength, 114.30…}
//
// Every function is pure with respect to package state; only the output grid
// passed in is written. Calls on distinct grids may run concurrently.
//
// Errors:
//
//   - ErrDomain:            inverse-trig argument out of range or zero divisor.
//   - ErrUnderdetermined:   a populated cell has no usable label combination.
//   - ErrConflict:          field and aperture imply different imagers.
//   - ErrConjugateMismatch: conjugate type disagrees with Imager.M.
//   - ErrBadIndex:          refractive index not positive and finite.
//   - ErrNilGrid:           nil input or output grid.
//   - ErrUnsolvable:        Reconcile could not derive anything.
//
// Solve keeps going when one category fails: the other category is still
// propagated or derived, and every failure is returned through errors.Join.
package etendue
