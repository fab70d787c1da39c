package math

import (
	"errors"
)

var (
	// ErrDimension is returned when a requested or supplied dimension is
	// outside the supported 2..4 range, or a matrix grid is not square.
	ErrDimension = errors.New("dimension must be 2, 3 or 4")
	// ErrShapeMismatch is returned by binary operations whose operands do
	// not have identical shapes.
	ErrShapeMismatch = errors.New("operand shapes do not match")
	// ErrNotVec3 is returned by builders that require 3-component inputs.
	ErrNotVec3 = errors.New("a 3-component vector is required")
	// ErrSingularMatrix is returned by Inverse when the determinant is zero.
	ErrSingularMatrix = errors.New("matrix is singular")
	// ErrZeroAxis is returned when a rotation axis has zero length.
	ErrZeroAxis = errors.New("rotation axis has zero length")
)
