// Package scf computes the expansion coefficients of a mass distribution in
// the Hernquist & Ostriker (1992) self-consistent-field basis,
//
//	rho(x) = 1/r_s^3 sum_nlm rho_nl(s) P_l^m(cos theta) [S_nlm cos(m phi) + T_nlm sin(m phi)]
//
// from either an analytic density (ComputeContinuous, numerical quadrature over
// (phi, cos theta, xi)) or a set of point masses (ComputeDiscrete, direct
// summation). Coefficients carry the unit of mass: they scale linearly with
// the density and both paths produce directly comparable values.
//
// Nothing in the package holds state between calls. Independent (n, l, m)
// computations may run concurrently provided the density function is safe for
// concurrent use.
package scf
