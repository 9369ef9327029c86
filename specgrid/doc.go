// Package specgrid stores a partially filled optical specification as a
// two-level grid: category (Field, Aperture) by conjugate side (Object, Image).
//
// What:
//
//   - Grid holds one typed cell per (Category, Side) pair.
//   - FieldCell carries optional height and angle (degrees).
//   - ApertureCell carries optional pupil diameter, NA and f-number.
//   - Value is an optional float64: "absent" is distinct from zero.
//
// The grid exposes the two operations the etendue solver needs:
//
//   - Row(c):   both side-keyed cells of one category.
//   - Counts(): how many sides of each category hold a non-empty cell.
//
// Labels:
//
//	field:    height, angle
//	aperture: pupil, NA, f/#
//
// Cells are plain records, so a label outside its category cannot be stored.
// Label-driven access (Set, Lookup) is available for textual front ends and
// rejects foreign labels with ErrUnknownLabel.
//
// Errors:
//
//   - ErrUnknownLabel: label does not belong to the requested category.
//   - ErrNonFinite:    a stored value is NaN or ±Inf.
//   - ErrBadKey:       textual category/side/label key could not be parsed.
package specgrid
