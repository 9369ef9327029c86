package specgrid_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paraxial/specgrid"
)

// valueComparer lets cmp look inside specgrid.Value.
var valueComparer = cmp.Comparer(func(a, b specgrid.Value) bool {
	av, aok := a.Get()
	bv, bok := b.Get()

	return aok == bok && av == bv
})

// TestValue_Absent verifies that the zero Value is absent and distinct from zero.
func TestValue_Absent(t *testing.T) {
	var v specgrid.Value
	_, ok := v.Get()
	assert.False(t, ok, "zero Value must be absent")
	assert.False(t, v.IsSet())
	assert.Equal(t, "-", v.String())

	z := specgrid.Of(0)
	x, ok := z.Get()
	assert.True(t, ok, "Of(0) must be present")
	assert.Equal(t, 0.0, x)
	assert.Equal(t, "0", z.String())
}

// TestCounts covers the 0/1/2 population counts per category.
func TestCounts(t *testing.T) {
	g := specgrid.New()
	assert.Equal(t, specgrid.Counts{}, g.Counts(), "empty grid")

	g.Field(specgrid.Object).Angle = specgrid.Of(5)
	assert.Equal(t, specgrid.Counts{Field: 1}, g.Counts())

	g.Field(specgrid.Image).Height = specgrid.Of(10)
	g.Aperture(specgrid.Image).FNumber = specgrid.Of(4)
	n := g.Counts()
	assert.Equal(t, 2, n.Of(specgrid.Field))
	assert.Equal(t, 1, n.Of(specgrid.Aperture))
}

// TestRow_Populated checks single-side detection.
func TestRow_Populated(t *testing.T) {
	g := specgrid.New()
	_, ok := g.Row(specgrid.Aperture).Populated()
	assert.False(t, ok, "empty row has no populated side")

	g.Aperture(specgrid.Image).NA = specgrid.Of(0.1)
	side, ok := g.Row(specgrid.Aperture).Populated()
	require.True(t, ok)
	assert.Equal(t, specgrid.Image, side)
	assert.Equal(t, []specgrid.Label{specgrid.LabelNA}, g.Row(specgrid.Aperture).Cell(specgrid.Image).Labels())

	g.Aperture(specgrid.Object).Pupil = specgrid.Of(10)
	_, ok = g.Row(specgrid.Aperture).Populated()
	assert.False(t, ok, "two populated sides are not a single side")
}

// TestSetLookup exercises label-driven access and foreign-label rejection.
func TestSetLookup(t *testing.T) {
	g := specgrid.New()
	require.NoError(t, g.Set(specgrid.Aperture, specgrid.Object, specgrid.LabelFNumber, 2.8))

	v, err := g.Lookup(specgrid.Aperture, specgrid.Object, specgrid.LabelFNumber)
	require.NoError(t, err)
	x, ok := v.Get()
	assert.True(t, ok)
	assert.Equal(t, 2.8, x)

	err = g.Set(specgrid.Field, specgrid.Image, specgrid.LabelNA, 0.2)
	assert.ErrorIs(t, err, specgrid.ErrUnknownLabel)
	_, err = g.Lookup(specgrid.Aperture, specgrid.Image, specgrid.LabelAngle)
	assert.ErrorIs(t, err, specgrid.ErrUnknownLabel)
}

// TestValidate rejects NaN and Inf entries.
func TestValidate(t *testing.T) {
	g := specgrid.New()
	g.Field(specgrid.Object).Height = specgrid.Of(1)
	assert.NoError(t, g.Validate())

	g.Aperture(specgrid.Image).NA = specgrid.Of(math.NaN())
	assert.ErrorIs(t, g.Validate(), specgrid.ErrNonFinite)

	g.Aperture(specgrid.Image).NA = specgrid.Value{}
	g.Field(specgrid.Image).Angle = specgrid.Of(math.Inf(-1))
	err := g.Validate()
	assert.ErrorIs(t, err, specgrid.ErrNonFinite)
	assert.Contains(t, err.Error(), "field/image/angle")
}

// TestClone verifies that the copy is independent of the source.
func TestClone(t *testing.T) {
	g := specgrid.New()
	g.Field(specgrid.Object).Height = specgrid.Of(2)
	cp := g.Clone()
	if diff := cmp.Diff(g, cp, cmp.AllowUnexported(specgrid.Grid{}), valueComparer); diff != "" {
		t.Fatalf("clone differs (-src +clone):\n%s", diff)
	}

	cp.Field(specgrid.Object).Height = specgrid.Of(3)
	h, _ := g.Field(specgrid.Object).Height.Get()
	assert.Equal(t, 2.0, h, "mutating the clone must not touch the source")
}

// TestParse covers the textual keys.
func TestParse(t *testing.T) {
	c, err := specgrid.ParseCategory(" Aperture ")
	require.NoError(t, err)
	assert.Equal(t, specgrid.Aperture, c)

	s, err := specgrid.ParseSide("IMAGE")
	require.NoError(t, err)
	assert.Equal(t, specgrid.Image, s)

	l, err := specgrid.ParseLabel("fno")
	require.NoError(t, err)
	assert.Equal(t, specgrid.LabelFNumber, l)

	_, err = specgrid.ParseSide("pupil")
	assert.ErrorIs(t, err, specgrid.ErrBadKey)
	_, err = specgrid.ParseCategory("")
	assert.ErrorIs(t, err, specgrid.ErrBadKey)
	_, err = specgrid.ParseLabel("Height")
	assert.ErrorIs(t, err, specgrid.ErrBadKey)
}

// TestInvalidSidePanics pins the programmer-error contract.
func TestInvalidSidePanics(t *testing.T) {
	g := specgrid.New()
	assert.Panics(t, func() { g.Field(specgrid.Side(7)) })
	assert.Panics(t, func() { g.Row(specgrid.Category(9)) })
	assert.Equal(t, specgrid.Object, specgrid.Image.Opposite())
}
