package etendue_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/paraxial/specgrid"
)

const tol = 1e-9

// approxValue compares optional grid values with an absolute tolerance.
var approxValue = cmp.Comparer(func(a, b specgrid.Value) bool {
	av, aok := a.Get()
	bv, bok := b.Get()
	if aok != bok {
		return false
	}

	return !aok || math.Abs(av-bv) <= tol
})

// requireGrid fails the test with a readable diff when got differs from want.
func requireGrid(t *testing.T, want, got *specgrid.Grid) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(specgrid.Grid{}), approxValue); diff != "" {
		t.Fatalf("grid mismatch (-want +got):\n%s", diff)
	}
}

// deg2slope mirrors conv.AngleToSlope for expected values.
func deg2slope(deg float64) float64 { return math.Tan(deg * math.Pi / 180) }

// slope2na mirrors conv.SlopeToNA for expected values.
func slope2na(u, n float64) float64 { return n * math.Sin(math.Atan(u/n)) }
