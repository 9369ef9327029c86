// SPDX-License-Identifier: MIT

package etendue

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/paraxial/specgrid"
)

// ConjugateType selects the conjugate regime of the imager.
type ConjugateType int

const (
	// Infinite: object effectively at infinity, characterised by f.
	Infinite ConjugateType = iota
	// Finite: object at finite distance, characterised by m.
	Finite
)

// String returns "infinite" or "finite".
func (c ConjugateType) String() string {
	switch c {
	case Infinite:
		return "infinite"
	case Finite:
		return "finite"
	default:
		return fmt.Sprintf("ConjugateType(%d)", int(c))
	}
}

// ParseConjugate maps "infinite" or "finite" (case-insensitive) to a ConjugateType.
func ParseConjugate(s string) (ConjugateType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "infinite":
		return Infinite, nil
	case "finite":
		return Finite, nil
	default:
		return 0, fmt.Errorf("%w: conjugate %q", ErrUnknownName, s)
	}
}

// Imager is the conjugate-determining pair of an optical system.
// M == 0 denotes an infinite-conjugate system.
type Imager struct {
	F float64 // effective focal length
	M float64 // transverse magnification
}

// Conjugate returns the regime implied by M.
func (im Imager) Conjugate() ConjugateType {
	if im.M == 0 {
		return Infinite
	}

	return Finite
}

// With returns a copy of im with the derived characteristic applied.
// A zero Characteristic leaves im unchanged.
func (im Imager) With(c Characteristic) Imager {
	switch c.Kind {
	case FocalLength:
		im.F = c.Value
	case Magnification:
		im.M = c.Value
	}

	return im
}

// checkConjugate verifies that conj agrees with im.M.
func checkConjugate(conj ConjugateType, im Imager) error {
	switch conj {
	case Infinite, Finite:
	default:
		return fmt.Errorf("%w: %s", ErrConjugateMismatch, conj)
	}
	if im.Conjugate() != conj {
		return fmt.Errorf("%w: %s with m=%g", ErrConjugateMismatch, conj, im.M)
	}

	return nil
}

// Kind tags a Characteristic. The zero Kind means nothing was derived.
type Kind int

const (
	// FocalLength tags an effective focal length ("f").
	FocalLength Kind = iota + 1
	// Magnification tags a transverse magnification ("m").
	Magnification
)

// String returns "f", "m" or "none".
func (k Kind) String() string {
	switch k {
	case FocalLength:
		return "f"
	case Magnification:
		return "m"
	default:
		return "none"
	}
}

// Characteristic is a solver result: which imager scalar was derived and its value.
type Characteristic struct {
	Kind  Kind
	Value float64
}

// IsZero reports whether c carries no result.
func (c Characteristic) IsZero() bool { return c.Kind == 0 }

// String renders "f=100", "m=-3" or "none".
func (c Characteristic) String() string {
	if c.IsZero() {
		return "none"
	}

	return c.Kind.String() + "=" + strconv.FormatFloat(c.Value, 'g', -1, 64)
}

func focal(v float64) Characteristic { return Characteristic{Kind: FocalLength, Value: v} }
func magnif(v float64) Characteristic { return Characteristic{Kind: Magnification, Value: v} }

// Indices are the refractive indices of object and image space. They are a
// required argument everywhere; use Air for the common case.
type Indices struct {
	Object float64
	Image  float64
}

// Air is n = 1 on both sides.
var Air = Indices{Object: 1, Image: 1}

// Validate checks that both indices are positive and finite.
func (ix Indices) Validate() error {
	for _, s := range specgrid.Sides {
		n := ix.Of(s)
		if !(n > 0) || math.IsInf(n, 1) {
			return fmt.Errorf("%w: %s n=%g", ErrBadIndex, s, n)
		}
	}

	return nil
}

// Of returns the index of side s.
func (ix Indices) Of(s specgrid.Side) float64 {
	if s == specgrid.Image {
		return ix.Image
	}

	return ix.Object
}

// Solution is the outcome of Solve.
type Solution struct {
	// Characteristic is the resolved result after the precedence policy.
	Characteristic Characteristic
	// Field and Aperture are the candidates each complete pair produced.
	Field    Characteristic
	Aperture Characteristic
}

// Found reports whether a characteristic was derived.
func (s Solution) Found() bool { return !s.Characteristic.IsZero() }
