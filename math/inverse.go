package math

import (
	"fmt"
)

/**
 * @brief Returns the determinant of the matrix, dispatching on dimension
 * to a closed-form cofactor expansion. The 4x4 case reduces to 3x3 minors
 * along the first row (Laplace expansion) rather than elimination; simple
 * over numerically optimal, as the dimensions stop at 4.
 *
 * @return The determinant, or ErrDimension for a malformed grid.
 */
func (mt Matrix) Determinant() (float32, error) {
	if !mt.wellFormed() {
		return 0, fmt.Errorf("determinant of a malformed %d-row grid: %w", len(mt), ErrDimension)
	}
	return det(mt), nil
}

func det(g [][]float32) float32 {
	switch len(g) {
	case 1:
		return g[0][0]
	case 2:
		return g[0][0]*g[1][1] - g[0][1]*g[1][0]
	case 3:
		return g[0][0]*(g[1][1]*g[2][2]-g[1][2]*g[2][1]) -
			g[0][1]*(g[1][0]*g[2][2]-g[1][2]*g[2][0]) +
			g[0][2]*(g[1][0]*g[2][1]-g[1][1]*g[2][0])
	default:
		// Laplace expansion along the first row.
		sum := float32(0)
		sign := float32(1)
		for col := range g[0] {
			sum += sign * g[0][col] * det(minor(g, 0, col))
			sign = -sign
		}
		return sum
	}
}

// minor returns the submatrix of g with row and col removed.
func minor(g [][]float32, row, col int) [][]float32 {
	out := make([][]float32, 0, len(g)-1)
	for i := range g {
		if i == row {
			continue
		}
		r := make([]float32, 0, len(g)-1)
		for j := range g[i] {
			if j == col {
				continue
			}
			r = append(r, g[i][j])
		}
		out = append(out, r)
	}
	return out
}

/**
 * @brief Creates and returns an inverse of the provided matrix: the
 * adjugate (transposed grid of signed cofactors, each the determinant of
 * one dimension lower) divided by the determinant.
 *
 * @return An inverted copy of the matrix, or ErrSingularMatrix when the
 * determinant is zero.
 */
func (mt Matrix) Inverse() (Matrix, error) {
	d, err := mt.Determinant()
	if err != nil {
		return nil, err
	}
	if d == 0 {
		return nil, fmt.Errorf("inverse of a %dx%d matrix with determinant 0: %w", len(mt), len(mt), ErrSingularMatrix)
	}

	dim := len(mt)
	out := make(Matrix, dim)
	for i := 0; i < dim; i++ {
		out[i] = make([]float32, dim)
	}
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			sign := float32(1)
			if (i+j)%2 == 1 {
				sign = -1
			}
			// Adjugate transposes, hence [j][i].
			out[j][i] = sign * det(minor(mt, i, j)) / d
		}
	}
	return out, nil
}

/**
 * @brief Returns the normal matrix of a 4x4 model matrix: its
 * inverse-transpose, optionally truncated to the upper-left 3x3 submatrix
 * for transforming surface normals under non-uniform scaling.
 *
 * @param truncate Whether to reduce the result to 3x3.
 * @return The normal matrix, ErrShapeMismatch or ErrSingularMatrix.
 */
func (mt Matrix) Normal(truncate bool) (Matrix, error) {
	if !mt.wellFormed() || len(mt) != 4 {
		return nil, fmt.Errorf("normal matrix of a %d-row grid: %w", len(mt), ErrShapeMismatch)
	}
	inv, err := mt.Inverse()
	if err != nil {
		return nil, err
	}
	out := inv.Transpose()
	if !truncate {
		return out, nil
	}
	return MatrixFromRows(
		out[0][:3],
		out[1][:3],
		out[2][:3],
	)
}
