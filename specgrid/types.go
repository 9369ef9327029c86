package specgrid

import (
	"fmt"
	"strconv"
	"strings"
)

// Category selects the outer key of the grid.
type Category int

const (
	// Field is the field-of-view category (height or angle).
	Field Category = iota
	// Aperture is the light-cone category (pupil, NA or f-number).
	Aperture
)

// Categories lists every category in grid order.
var Categories = [...]Category{Field, Aperture}

// String returns the lower-case category name.
func (c Category) String() string {
	switch c {
	case Field:
		return "field"
	case Aperture:
		return "aperture"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Side selects the conjugate side of the grid.
type Side int

const (
	// Object is the object-space side.
	Object Side = iota
	// Image is the image-space side.
	Image
)

// Sides lists both conjugate sides in grid order.
var Sides = [...]Side{Object, Image}

// String returns the lower-case side name.
func (s Side) String() string {
	switch s {
	case Object:
		return "object"
	case Image:
		return "image"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Opposite returns the other conjugate side.
func (s Side) Opposite() Side {
	if s == Object {
		return Image
	}

	return Object
}

// Label is the textual name of a quantity stored in a cell.
type Label string

// Recognised labels. Field cells accept LabelHeight and LabelAngle, aperture
// cells accept LabelPupil, LabelNA and LabelFNumber.
const (
	LabelHeight  Label = "height"
	LabelAngle   Label = "angle"
	LabelPupil   Label = "pupil"
	LabelNA      Label = "NA"
	LabelFNumber Label = "f/#"
)

// Value is an optional float64. The zero Value is absent.
type Value struct {
	v   float64
	set bool
}

// Of returns a present Value holding v.
func Of(v float64) Value { return Value{v: v, set: true} }

// Get returns the stored number and whether it is present.
func (x Value) Get() (float64, bool) { return x.v, x.set }

// IsSet reports whether the value is present.
func (x Value) IsSet() bool { return x.set }

// String formats the value, or "-" when absent.
func (x Value) String() string {
	if !x.set {
		return "-"
	}

	return strconv.FormatFloat(x.v, 'g', -1, 64)
}

// Cell is the common view over FieldCell and ApertureCell used by Row.
type Cell interface {
	// Empty reports whether no label is set.
	Empty() bool
	// Labels returns the labels that are set, in declaration order.
	Labels() []Label
}

// FieldCell holds the field quantities of one side.
type FieldCell struct {
	Height Value
	Angle  Value // degrees
}

// Empty reports whether neither height nor angle is set.
func (c FieldCell) Empty() bool { return !c.Height.set && !c.Angle.set }

// Labels returns the set labels.
func (c FieldCell) Labels() []Label {
	var out []Label
	if c.Height.set {
		out = append(out, LabelHeight)
	}
	if c.Angle.set {
		out = append(out, LabelAngle)
	}

	return out
}

// ref returns the slot addressed by l.
func (c *FieldCell) ref(l Label) (*Value, error) {
	switch l {
	case LabelHeight:
		return &c.Height, nil
	case LabelAngle:
		return &c.Angle, nil
	default:
		return nil, fmt.Errorf("%w: %q for %s", ErrUnknownLabel, l, Field)
	}
}

// String renders the cell as "{height=2 angle=-}".
func (c FieldCell) String() string {
	return fmt.Sprintf("{height=%s angle=%s}", c.Height, c.Angle)
}

// ApertureCell holds the aperture quantities of one side.
type ApertureCell struct {
	Pupil   Value // diameter
	NA      Value
	FNumber Value
}

// Empty reports whether no aperture label is set.
func (c ApertureCell) Empty() bool { return !c.Pupil.set && !c.NA.set && !c.FNumber.set }

// Labels returns the set labels.
func (c ApertureCell) Labels() []Label {
	var out []Label
	if c.Pupil.set {
		out = append(out, LabelPupil)
	}
	if c.NA.set {
		out = append(out, LabelNA)
	}
	if c.FNumber.set {
		out = append(out, LabelFNumber)
	}

	return out
}

func (c *ApertureCell) ref(l Label) (*Value, error) {
	switch l {
	case LabelPupil:
		return &c.Pupil, nil
	case LabelNA:
		return &c.NA, nil
	case LabelFNumber:
		return &c.FNumber, nil
	default:
		return nil, fmt.Errorf("%w: %q for %s", ErrUnknownLabel, l, Aperture)
	}
}

// String renders the cell as "{pupil=50 NA=- f/#=-}".
func (c ApertureCell) String() string {
	return fmt.Sprintf("{pupil=%s NA=%s f/#=%s}", c.Pupil, c.NA, c.FNumber)
}

// ParseCategory maps "field" or "aperture" (case-insensitive) to a Category.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "field":
		return Field, nil
	case "aperture":
		return Aperture, nil
	default:
		return 0, fmt.Errorf("%w: category %q", ErrBadKey, s)
	}
}

// ParseSide maps "object" or "image" (case-insensitive) to a Side.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "object":
		return Object, nil
	case "image":
		return Image, nil
	default:
		return 0, fmt.Errorf("%w: side %q", ErrBadKey, s)
	}
}

// ParseLabel maps a label name to a Label. Matching is exact except that
// "na" and "fno" are accepted as shell-friendly spellings of NA and f/#.
func ParseLabel(s string) (Label, error) {
	switch strings.TrimSpace(s) {
	case "height":
		return LabelHeight, nil
	case "angle":
		return LabelAngle, nil
	case "pupil":
		return LabelPupil, nil
	case "NA", "na":
		return LabelNA, nil
	case "f/#", "fno":
		return LabelFNumber, nil
	default:
		return "", fmt.Errorf("%w: label %q", ErrBadKey, s)
	}
}
