package conv

import (
	"errors"
	"fmt"
)

// ErrDomain is matched by every *DomainError.
var ErrDomain = errors.New("conv: argument outside function domain")

// DomainError reports the operation and argument that fell outside the
// domain of an inverse-trig function or hit a zero divisor.
type DomainError struct {
	Op     string  // operation name, e.g. "NAToSlope"
	Arg    float64 // offending argument
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("conv: %s(%g): %s", e.Op, e.Arg, e.Reason)
}

// Is makes errors.Is(err, ErrDomain) true for any *DomainError.
func (e *DomainError) Is(target error) bool { return target == ErrDomain }

// Domain builds a *DomainError. Exported so that callers composing these
// relations report failures in the same shape.
func Domain(op string, arg float64, reason string) error {
	return &DomainError{Op: op, Arg: arg, Reason: reason}
}
