// Package paraxial completes first-order (paraxial) optical specifications.
//
// Given a partially filled specification of an imaging system (object and
// image field, object and image aperture) and an ideal thin imager described
// by its focal length and magnification, the module fills in every quantity
// the known ones determine, or derives the imager itself from complete
// object/image pairs.
//
// Packages:
//
//	specgrid/     the specification grid: categories, sides, labelled optional values
//	conv/         NA, slope, angle and f-number conversions with domain checks
//	etendue/      field and aperture propagation, Solve, Reconcile, precedence policy
//	cmd/etendue/  command-line driver over etendue.Solve
//
// Quick start:
//
//	in := specgrid.New()
//	_ = in.Set(specgrid.Field, specgrid.Object, specgrid.LabelAngle, 5)
//	_ = in.Set(specgrid.Aperture, specgrid.Object, specgrid.LabelPupil, 50)
//
//	out := specgrid.New()
//	sol, err := etendue.Solve(etendue.Infinite, etendue.Imager{F: 100}, in, out, etendue.Air)
//
// Every package is pure computation: no I/O, no goroutines, no global state.
package paraxial
