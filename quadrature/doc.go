// Package quadrature provides the numerical integration used by the continuous
// coefficient path: Gauss-Jacobi rules built from the eigen decomposition of
// the Jacobi matrix, a globally adaptive 1-D integrator that bisects the
// interval with the largest error estimate, and a nested integrator over a
// rectangular 3-D domain.
//
// The Integrator interface is the only contract the rest of the module
// depends on; any routine that returns a value and an absolute error estimate
// over a fixed box can be substituted.
package quadrature
