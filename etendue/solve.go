// SPDX-License-Identifier: MIT

package etendue

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/paraxial/specgrid"
)

// Solve completes a specification grid against an imager.
//
// Stages:
//  1. Validate indices and grids, count populated sides per category.
//  2. Field count 1    → PropagateField from the populated side.
//  3. Aperture count 1 → PropagateAperture from the populated side.
//  4. Field count 2    → derive f (object angle) or m (object height).
//  5. Aperture count 2 → derive f (object pupil) or m (NA/f-number pair).
//  6. Resolve the candidates of 4 and 5 with the Precedence option.
//
// im and conj are consulted only by the propagation stages; a grid with both
// sides of every populated category known can be solved with a zero Imager.
// Derived and echoed values are written into out; in is never modified.
//
// Only stage 1 aborts the call. Stages 2-5 are independent per category: a
// failing stage writes nothing and the remaining stages still run, so out
// holds the results of every stage that succeeded. The stage errors and a
// *ConflictError from stage 6 are returned together through errors.Join.
//
// The returned Solution carries the resolved characteristic plus both
// candidates. On a *ConflictError the Solution is still returned with
// Characteristic left zero.
//
// Complexity: O(1).
func Solve(conj ConjugateType, im Imager, in, out *specgrid.Grid, idx Indices, opts ...Option) (Solution, error) {
	var sol Solution

	// Stage 1: inputs.
	if in == nil || out == nil {
		return sol, ErrNilGrid
	}
	if err := idx.Validate(); err != nil {
		return sol, err
	}
	if err := in.Validate(); err != nil {
		return sol, fmt.Errorf("etendue: input grid: %w", err)
	}
	o := gatherOptions(opts...)
	n := in.Counts()
	o.logger.Debug("etendue: solve", "conjugate", conj, "imager", im,
		"field", n.Field, "aperture", n.Aperture)

	var errs []error

	// Stage 2: single field side.
	if n.Of(specgrid.Field) == 1 {
		side, _ := in.Row(specgrid.Field).Populated()
		if err := PropagateField(conj, im, side, *in.Field(side), out, opts...); err != nil {
			errs = append(errs, fmt.Errorf("etendue: field from %s: %w", side, err))
		}
	}

	// Stage 3: single aperture side.
	if n.Of(specgrid.Aperture) == 1 {
		side, _ := in.Row(specgrid.Aperture).Populated()
		if err := PropagateAperture(conj, im, side, *in.Aperture(side), idx, out, opts...); err != nil {
			errs = append(errs, fmt.Errorf("etendue: aperture from %s: %w", side, err))
		}
	}

	// Stage 4: both field sides.
	if n.Of(specgrid.Field) == 2 {
		c, err := fieldPair(in, out)
		if err != nil {
			errs = append(errs, fmt.Errorf("etendue: field pair: %w", err))
		} else {
			sol.Field = c
			o.logger.Debug("etendue: field pair", "derived", c.String())
		}
	}

	// Stage 5: both aperture sides.
	if n.Of(specgrid.Aperture) == 2 {
		c, err := aperturePair(in, out, idx)
		if err != nil {
			errs = append(errs, fmt.Errorf("etendue: aperture pair: %w", err))
		} else {
			sol.Aperture = c
			o.logger.Debug("etendue: aperture pair", "derived", c.String())
		}
	}

	// Stage 6: precedence.
	c, err := resolve(sol.Field, sol.Aperture, o)
	if err != nil {
		errs = append(errs, err)
	}
	sol.Characteristic = c
	if len(errs) > 0 {
		o.logger.Debug("etendue: stages failed", "count", len(errs))
	}

	return sol, errors.Join(errs...)
}

// resolve applies the precedence policy to the two candidates.
func resolve(field, aperture Characteristic, o Options) (Characteristic, error) {
	switch {
	case field.IsZero():
		return aperture, nil
	case aperture.IsZero():
		return field, nil
	}

	switch o.precedence {
	case PreferField:
		return field, nil
	case PreferAperture:
		return aperture, nil
	}
	if field.Kind != aperture.Kind || !agree(field.Value, aperture.Value, o.tol) {
		o.logger.Debug("etendue: conflict", "field", field.String(), "aperture", aperture.String(), "tol", o.tol)

		return Characteristic{}, &ConflictError{Field: field, Aperture: aperture}
	}

	return field, nil
}
