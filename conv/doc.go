// Package conv converts between the equivalent descriptions of a marginal
// ray's inclination: slope, numerical aperture, angle and f-number.
//
// Relations (n is the refractive index of the space the ray travels in):
//
//	NAToSlope(na, n)   = n·tan(asin(na/n))
//	SlopeToNA(u, n)    = n·sin(atan(u/n))
//	AngleToSlope(deg)  = tan(deg·π/180)
//	SlopeToAngle(u)    = atan(u)·180/π
//	SlopeToFNumber(u)  = -1/(2·u)
//	FNumberToSlope(N)  = -1/(2·N)
//
// The f-number carries a sign: a converging marginal ray (negative slope)
// has a positive f-number. The relation is its own inverse.
//
// On top of these, ApertureFromSlope and SlopeFromAperture bridge between a
// slope and a specgrid.ApertureCell, preferring NA over f-number.
//
// Errors:
//
//   - ErrDomain (via *DomainError): asin argument outside (-1, 1), zero
//     divisor, or a non-positive refractive index.
package conv
