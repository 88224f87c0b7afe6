// Package basis evaluates the special functions of the Hernquist & Ostriker (1992)
// self-consistent-field basis: the Gegenbauer radial family, the orthonormal
// associated Legendre angular family and the normalization constants that make
// the density/potential pairs biorthogonal.
//
// Radial functions take the dimensionless radius s = r/r_s. The radial
// variable of the polynomials is xi = (s-1)/(s+1), which maps [0, Inf) onto
// [-1, 1).
package basis
