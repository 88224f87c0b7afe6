// Package coords maps between Cartesian positions and the (xi, X, phi)
// coordinates of the self-consistent-field basis.
//
// X = cos(theta) = z/r, phi = atan2(y, x) and xi = (s-1)/(s+1) with s = r/r_s,
// so that xi -> -1 at the origin and xi -> 1 at infinity.
package coords

import "math"

// Spherical holds a position as radius, azimuth and colatitude cosine.
type Spherical struct {
	R, Phi, X float64
}

// FromCartesian converts a Cartesian position. At the origin phi and X are
// undefined and are set to 0 by convention.
func FromCartesian(x, y, z float64) (sp Spherical) {
	sp.R = math.Sqrt(x*x + y*y + z*z)
	if sp.R == 0 {
		return
	}
	sp.Phi = math.Atan2(y, x)
	sp.X = clampUnit(z / sp.R)
	return
}

// Xi is the internal radial coordinate of the point for scale radius rs.
func (sp Spherical) Xi(rs float64) float64 {
	return XiFromS(sp.R / rs)
}

// XiFromS maps the dimensionless radius onto [-1, 1].
func XiFromS(s float64) float64 {
	if math.IsInf(s, 1) {
		return 1
	}
	return (s - 1.) / (s + 1.)
}

// SFromXi is the inverse of XiFromS; xi = 1 maps to +Inf.
func SFromXi(xi float64) float64 {
	if xi >= 1 {
		return math.Inf(1)
	}
	return (1. + xi) / (1. - xi)
}

// DsDxi is the derivative of SFromXi, 2/(1-xi)^2.
func DsDxi(xi float64) float64 {
	if xi >= 1 {
		return math.Inf(1)
	}
	d := 1. - xi
	return 2. / (d * d)
}

// ToCartesian maps (xi, X, phi) back to a physical position for scale radius rs.
func ToCartesian(xi, X, phi, rs float64) (x, y, z float64) {
	var (
		r        = SFromXi(xi) * rs
		sinTheta = math.Sqrt(math.Max(0, (1.-X)*(1.+X)))
	)
	x = r * sinTheta * math.Cos(phi)
	y = r * sinTheta * math.Sin(phi)
	z = r * X
	return
}

// Jacobian is the volume element of the map (phi, X, xi) -> (x, y, z),
//
//	d^3x = rs^3 s^2 (ds/dxi) dxi dX dphi
//
// It vanishes at xi = -1 and diverges at xi = 1; callers integrating over the
// closed interval must treat xi = 1 as a limit.
func Jacobian(xi, rs float64) float64 {
	s := SFromXi(xi)
	return rs * rs * rs * s * s * DsDxi(xi)
}

func clampUnit(x float64) float64 {
	switch {
	case x > 1:
		return 1
	case x < -1:
		return -1
	}
	return x
}
