// SPDX-License-Identifier: MIT

package etendue

import (
	"fmt"

	"github.com/katalvlaran/paraxial/specgrid"
)

// Reconcile derives an imager characteristic from complete conjugate pairs
// without a prior imager and without writing anywhere. It is the bootstrap
// step before any propagation: the caller applies the result with
// Imager.With and then calls Solve.
//
// Both pairs are evaluated when present and resolved by the same Precedence
// policy as Solve. Returns ErrUnsolvable when neither pair yields a result.
func Reconcile(in *specgrid.Grid, idx Indices, opts ...Option) (Characteristic, error) {
	if in == nil {
		return Characteristic{}, ErrNilGrid
	}
	if err := idx.Validate(); err != nil {
		return Characteristic{}, err
	}
	if err := in.Validate(); err != nil {
		return Characteristic{}, fmt.Errorf("etendue: input grid: %w", err)
	}
	o := gatherOptions(opts...)
	n := in.Counts()

	var field, aperture Characteristic
	var err error
	if n.Field == 2 {
		if field, err = fieldPair(in, nil); err != nil {
			return Characteristic{}, fmt.Errorf("etendue: field pair: %w", err)
		}
	}
	if n.Aperture == 2 {
		if aperture, err = aperturePair(in, nil, idx); err != nil {
			return Characteristic{}, fmt.Errorf("etendue: aperture pair: %w", err)
		}
	}

	c, err := resolve(field, aperture, o)
	if err != nil {
		return Characteristic{}, err
	}
	if c.IsZero() {
		return Characteristic{}, fmt.Errorf("%w: field=%d aperture=%d populated sides", ErrUnsolvable, n.Field, n.Aperture)
	}
	o.logger.Debug("etendue: reconciled", "derived", c.String())

	return c, nil
}
