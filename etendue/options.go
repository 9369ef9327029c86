// SPDX-License-Identifier: MIT

package etendue

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
)

// Precedence decides which characteristic Solve and Reconcile return when
// both the field pair and the aperture pair derive one.
type Precedence int

const (
	// RequireAgreement returns the common result when both agree in kind and
	// within tolerance, and a *ConflictError otherwise.
	RequireAgreement Precedence = iota
	// PreferField returns the field-derived result.
	PreferField
	// PreferAperture returns the aperture-derived result (historical
	// last-write-wins behavior).
	PreferAperture
)

var precedenceNames = [...]string{"agree", "field", "aperture"}

// String returns "agree", "field" or "aperture".
func (p Precedence) String() string {
	if p < 0 || int(p) >= len(precedenceNames) {
		return fmt.Sprintf("Precedence(%d)", int(p))
	}

	return precedenceNames[p]
}

// ParsePrecedence is the inverse of Precedence.String.
func ParsePrecedence(s string) (Precedence, error) {
	for i, name := range precedenceNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Precedence(i), nil
		}
	}

	return 0, fmt.Errorf("%w: precedence %q", ErrUnknownName, s)
}

// FieldInverse selects the image→object height relation for finite conjugates.
type FieldInverse int

const (
	// InverseAlgebraic computes h = h'/m, the inverse of h' = m·h.
	InverseAlgebraic FieldInverse = iota
	// InverseLegacy computes h = m/h', as earlier releases did.
	InverseLegacy
)

var inverseNames = [...]string{"algebraic", "legacy"}

// String returns "algebraic" or "legacy".
func (f FieldInverse) String() string {
	if f < 0 || int(f) >= len(inverseNames) {
		return fmt.Sprintf("FieldInverse(%d)", int(f))
	}

	return inverseNames[f]
}

// ParseFieldInverse is the inverse of FieldInverse.String.
func ParseFieldInverse(s string) (FieldInverse, error) {
	for i, name := range inverseNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return FieldInverse(i), nil
		}
	}

	return 0, fmt.Errorf("%w: field inverse %q", ErrUnknownName, s)
}

// ---------- Defaults ----------

const (
	// DefaultTolerance is the relative tolerance used by RequireAgreement.
	DefaultTolerance = 1e-9

	// DefaultPrecedence surfaces disagreement instead of dropping a result.
	DefaultPrecedence = RequireAgreement

	// DefaultFieldInverse is the algebraic inverse of h' = m·h.
	DefaultFieldInverse = InverseAlgebraic
)

const (
	panicToleranceInvalid  = "etendue: WithTolerance: tol must be finite, non-negative"
	panicPrecedenceInvalid = "etendue: WithPrecedence: unknown precedence"
	panicInverseInvalid    = "etendue: WithFieldInverse: unknown relation"
)

// ---------- Functional options ----------

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the resolved configuration of one call.
type Options struct {
	tol        float64
	precedence Precedence
	inverse    FieldInverse
	logger     *slog.Logger
}

// WithTolerance sets the relative tolerance for RequireAgreement.
// Two values a, b agree when |a−b| ≤ tol·max(1, |a|, |b|).
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithPrecedence selects the policy applied when both pairs derive a result.
func WithPrecedence(p Precedence) Option {
	if p < RequireAgreement || p > PreferAperture {
		panic(panicPrecedenceInvalid)
	}

	return func(o *Options) { o.precedence = p }
}

// WithFieldInverse selects the finite-conjugate image→object height relation.
func WithFieldInverse(f FieldInverse) Option {
	if f != InverseAlgebraic && f != InverseLegacy {
		panic(panicInverseInvalid)
	}

	return func(o *Options) { o.inverse = f }
}

// WithLogger routes solver decisions to l at Debug level. A nil logger
// restores the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.logger = l
	}
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		tol:        DefaultTolerance,
		precedence: DefaultPrecedence,
		inverse:    DefaultFieldInverse,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
