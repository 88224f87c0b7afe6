package scf

import (
	"errors"

	"github.com/notargets/goscf/quadrature"
)

var (
	// ErrInvalidIndex reports n < 0, l < 0 or m outside [0, l].
	ErrInvalidIndex = errors.New("scf: invalid basis index")
	// ErrInvalidScale reports a scale mass or radius that is not positive and finite.
	ErrInvalidScale = errors.New("scf: invalid scale parameters")
	// ErrShapeMismatch reports particle positions and masses of different
	// length, or an empty particle set.
	ErrShapeMismatch = errors.New("scf: particle positions and masses do not match")
	// ErrQuadratureNonconvergence is not fatal: the coefficients are returned
	// with their error estimates and the caller decides whether to retry.
	ErrQuadratureNonconvergence = quadrature.ErrNonconvergence
)
