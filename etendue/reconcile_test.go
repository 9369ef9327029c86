package etendue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paraxial/etendue"
	"github.com/katalvlaran/paraxial/specgrid"
)

// TestReconcile_Pairs derives f and m without an imager or output grid.
func TestReconcile_Pairs(t *testing.T) {
	g := specgrid.New()
	g.Field(specgrid.Object).Angle = specgrid.Of(5)
	g.Field(specgrid.Image).Height = specgrid.Of(10)
	before := g.Clone()

	c, err := etendue.Reconcile(g, etendue.Air)
	require.NoError(t, err)
	assert.Equal(t, etendue.FocalLength, c.Kind)
	assert.InDelta(t, 114.3005, c.Value, 1e-4)
	requireGrid(t, before, g)

	g = specgrid.New()
	g.Aperture(specgrid.Object).FNumber = specgrid.Of(2)
	g.Aperture(specgrid.Image).FNumber = specgrid.Of(-1)
	c, err = etendue.Reconcile(g, etendue.Air)
	require.NoError(t, err)
	assert.Equal(t, etendue.Characteristic{Kind: etendue.Magnification, Value: -0.5}, c)
}

// TestReconcile_ImageFNumberAfterObjectNA guards the image-side lookup: the
// image f/# must be read from the image cell, not the object cell.
func TestReconcile_ImageFNumberAfterObjectNA(t *testing.T) {
	g := specgrid.New()
	g.Aperture(specgrid.Object).NA = specgrid.Of(slope2na(-0.25, 1))
	g.Aperture(specgrid.Image).FNumber = specgrid.Of(-1)

	c, err := etendue.Reconcile(g, etendue.Air)
	require.NoError(t, err)
	assert.Equal(t, etendue.Magnification, c.Kind)
	assert.InDelta(t, -0.5, c.Value, 1e-12)
}

// TestReconcile_Unsolvable covers empty and half-specified grids.
func TestReconcile_Unsolvable(t *testing.T) {
	_, err := etendue.Reconcile(specgrid.New(), etendue.Air)
	assert.ErrorIs(t, err, etendue.ErrUnsolvable)

	g := specgrid.New()
	g.Field(specgrid.Object).Angle = specgrid.Of(5)
	g.Aperture(specgrid.Image).NA = specgrid.Of(0.2)
	_, err = etendue.Reconcile(g, etendue.Air)
	assert.ErrorIs(t, err, etendue.ErrUnsolvable)

	_, err = etendue.Reconcile(nil, etendue.Air)
	assert.ErrorIs(t, err, etendue.ErrNilGrid)
}

// TestReconcile_Conflict shares the Solve precedence policy.
func TestReconcile_Conflict(t *testing.T) {
	g := specgrid.New()
	g.Field(specgrid.Object).Height = specgrid.Of(1)
	g.Field(specgrid.Image).Height = specgrid.Of(-2)
	g.Aperture(specgrid.Object).FNumber = specgrid.Of(2)
	g.Aperture(specgrid.Image).FNumber = specgrid.Of(-1)

	_, err := etendue.Reconcile(g, etendue.Air)
	assert.ErrorIs(t, err, etendue.ErrConflict, "m=-2 from field vs m=-0.5 from aperture")

	c, err := etendue.Reconcile(g, etendue.Air, etendue.WithPrecedence(etendue.PreferField))
	require.NoError(t, err)
	assert.Equal(t, -2.0, c.Value)
}

// TestReconcile_Bootstrap applies the result to an imager and propagates.
func TestReconcile_Bootstrap(t *testing.T) {
	spec := specgrid.New()
	spec.Field(specgrid.Object).Height = specgrid.Of(2)
	spec.Field(specgrid.Image).Height = specgrid.Of(-6)

	c, err := etendue.Reconcile(spec, etendue.Air)
	require.NoError(t, err)
	im := etendue.Imager{}.With(c)
	assert.Equal(t, etendue.Finite, im.Conjugate())

	in, out := specgrid.New(), specgrid.New()
	in.Aperture(specgrid.Object).FNumber = specgrid.Of(4)
	_, err = etendue.Solve(im.Conjugate(), im, in, out, etendue.Air)
	require.NoError(t, err)

	fno, ok := out.Aperture(specgrid.Image).FNumber.Get()
	require.True(t, ok)
	assert.InDelta(t, -12.0, fno, 1e-12, "u = -1/8, u' = u/m = 1/24 ⇒ f/# = -12")
}
