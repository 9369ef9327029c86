// SPDX-License-Identifier: MIT

package etendue

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/paraxial/conv"
)

// Every message is prefixed with "etendue: ". Match with errors.Is; typed
// errors (*ConflictError, *conv.DomainError) are reachable with errors.As.
var (
	// ErrDomain is the conv sentinel, re-exported so callers need one import.
	ErrDomain = conv.ErrDomain

	// ErrUnderdetermined indicates a populated cell without a label
	// combination the selected branch can use.
	ErrUnderdetermined = errors.New("etendue: specification underdetermined")

	// ErrConflict is matched by every *ConflictError.
	ErrConflict = errors.New("etendue: field and aperture disagree")

	// ErrConjugateMismatch indicates a ConjugateType inconsistent with Imager.M.
	ErrConjugateMismatch = errors.New("etendue: conjugate type does not match imager")

	// ErrBadIndex indicates a refractive index that is not positive and finite.
	ErrBadIndex = errors.New("etendue: invalid refractive index")

	// ErrNilGrid indicates a nil input or output grid.
	ErrNilGrid = errors.New("etendue: grid is nil")

	// ErrUnsolvable indicates that no characteristic could be derived.
	ErrUnsolvable = errors.New("etendue: no imager characteristic derivable")

	// ErrUnknownName indicates an unparsable textual enum value.
	ErrUnknownName = errors.New("etendue: unknown name")
)

// ConflictError carries both candidates when field and aperture pairs derive
// incompatible characteristics.
type ConflictError struct {
	Field    Characteristic
	Aperture Characteristic
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("etendue: field implies %s but aperture implies %s", e.Field, e.Aperture)
}

// Is makes errors.Is(err, ErrConflict) true.
func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// underdetermined wraps ErrUnderdetermined with the branch that gave up.
func underdetermined(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrUnderdetermined}, args...)...)
}
