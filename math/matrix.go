package math

import (
	"fmt"
)

/**
 * @brief Creates and returns the identity matrix of the requested
 * dimension:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @param dim The matrix dimension, 2..4.
 * @return A new identity matrix, or ErrDimension.
 */
func NewMatrix(dim int) (Matrix, error) {
	if !validDim(dim) {
		return nil, fmt.Errorf("matrix of dimension %d: %w", dim, ErrDimension)
	}
	out := make(Matrix, dim)
	for i := range out {
		out[i] = make([]float32, dim)
		out[i][i] = 1.0
	}
	return out, nil
}

/**
 * @brief Creates and returns scalar times the identity matrix of the
 * requested dimension.
 *
 * @param dim The matrix dimension, 2..4.
 * @param scalar The diagonal value.
 * @return A new matrix, or ErrDimension.
 */
func NewMatrixUniform(dim int, scalar float32) (Matrix, error) {
	out, err := NewMatrix(dim)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i][i] = scalar
	}
	return out, nil
}

/**
 * @brief Creates and returns a matrix from the supplied row slices. The
 * rows are copied. The grid must be square with dimension 2..4.
 *
 * @param rows The row values.
 * @return A new matrix, or ErrDimension.
 */
func MatrixFromRows(rows ...[]float32) (Matrix, error) {
	if !validDim(len(rows)) {
		return nil, fmt.Errorf("matrix of %d rows: %w", len(rows), ErrDimension)
	}
	out := make(Matrix, len(rows))
	for i, row := range rows {
		if len(row) != len(rows) {
			return nil, fmt.Errorf("row %d has %d components in a %d-row matrix: %w", i, len(row), len(rows), ErrDimension)
		}
		out[i] = make([]float32, len(row))
		copy(out[i], row)
	}
	return out, nil
}

// NewMat2 creates the 2x2 identity matrix.
func NewMat2() Matrix {
	out, _ := NewMatrix(2)
	return out
}

// NewMat3 creates the 3x3 identity matrix.
func NewMat3() Matrix {
	out, _ := NewMatrix(3)
	return out
}

// NewMat4 creates the 4x4 identity matrix.
func NewMat4() Matrix {
	out, _ := NewMatrix(4)
	return out
}

/**
 * @brief Adds other to mt component-wise and returns a copy of the result.
 *
 * @param other The second matrix.
 * @return The resulting matrix, or ErrShapeMismatch.
 */
func (mt Matrix) Add(other Matrix) (Matrix, error) {
	if err := mt.sameShape(other, "add"); err != nil {
		return nil, err
	}
	out := make(Matrix, len(mt))
	for i := range mt {
		out[i] = make([]float32, len(mt))
		for j := range mt[i] {
			out[i][j] = mt[i][j] + other[i][j]
		}
	}
	return out, nil
}

/**
 * @brief Subtracts other from mt component-wise and returns a copy of the
 * result.
 *
 * @param other The second matrix.
 * @return The resulting matrix, or ErrShapeMismatch.
 */
func (mt Matrix) Sub(other Matrix) (Matrix, error) {
	if err := mt.sameShape(other, "subtract"); err != nil {
		return nil, err
	}
	out := make(Matrix, len(mt))
	for i := range mt {
		out[i] = make([]float32, len(mt))
		for j := range mt[i] {
			out[i][j] = mt[i][j] - other[i][j]
		}
	}
	return out, nil
}

/**
 * @brief Returns the result of multiplying mt and other, the standard
 * row-by-column composition.
 *
 * @param other The second matrix to be multiplied.
 * @return The result of the matrix multiplication, or ErrShapeMismatch.
 */
func (mt Matrix) Mul(other Matrix) (Matrix, error) {
	if err := mt.sameShape(other, "multiply"); err != nil {
		return nil, err
	}
	dim := len(mt)
	out := make(Matrix, dim)
	for row := 0; row < dim; row++ {
		out[row] = make([]float32, dim)
		for col := 0; col < dim; col++ {
			sum := float32(0)
			for i := 0; i < dim; i++ {
				sum += mt[row][i] * other[i][col]
			}
			out[row][col] = sum
		}
	}
	return out, nil
}

/**
 * @brief Applies mt to v as a linear map: each output component is the dot
 * product of a matrix row with the vector.
 *
 * @param v The vector to transform.
 * @return The transformed vector, or ErrShapeMismatch.
 */
func (mt Matrix) MulVec(v Vector) (Vector, error) {
	if !mt.wellFormed() {
		return nil, fmt.Errorf("transform by a malformed %d-row grid: %w", len(mt), ErrDimension)
	}
	if len(mt) != len(v) {
		return nil, fmt.Errorf("transform a %d-component vector by a %dx%d matrix: %w", len(v), len(mt), len(mt), ErrShapeMismatch)
	}
	out := make(Vector, len(v))
	for row := range mt {
		sum := float32(0)
		for i := range v {
			sum += mt[row][i] * v[i]
		}
		out[row] = sum
	}
	return out, nil
}

/**
 * @brief Multiplies all components of mt by scalar and returns a copy of
 * the result.
 */
func (mt Matrix) Scale(scalar float32) Matrix {
	out := make(Matrix, len(mt))
	for i := range mt {
		out[i] = make([]float32, len(mt[i]))
		for j := range mt[i] {
			out[i][j] = mt[i][j] * scalar
		}
	}
	return out
}

/**
 * @brief Returns a transposed copy of the provided matrix (rows->columns).
 */
func (mt Matrix) Transpose() Matrix {
	out := make(Matrix, len(mt))
	for i := range mt {
		out[i] = make([]float32, len(mt))
		for j := range mt {
			out[i][j] = mt[j][i]
		}
	}
	return out
}

// Equal reports exact per-component equality. Mismatched dimensions never
// compare equal.
func (mt Matrix) Equal(other Matrix) bool {
	if len(mt) != len(other) {
		return false
	}
	for i := range mt {
		if len(mt[i]) != len(other[i]) {
			return false
		}
		for j := range mt[i] {
			if mt[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

/**
 * @brief Compares all components of mt and other and ensures the
 * difference is less than tolerance. Mismatched dimensions never compare
 * equal.
 *
 * @param other The second matrix.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (mt Matrix) Compare(other Matrix, tolerance float32) bool {
	if len(mt) != len(other) {
		return false
	}
	for i := range mt {
		if len(mt[i]) != len(other[i]) {
			return false
		}
		for j := range mt[i] {
			if kabs(mt[i][j]-other[i][j]) > tolerance {
				return false
			}
		}
	}
	return true
}

// Row returns a copy of a matrix row as a vector.
func (mt Matrix) Row(i int) Vector {
	out := make(Vector, len(mt[i]))
	copy(out, mt[i])
	return out
}

func (mt Matrix) sameShape(other Matrix, op string) error {
	if !mt.wellFormed() {
		return fmt.Errorf("%s with a malformed %d-row grid: %w", op, len(mt), ErrDimension)
	}
	if !other.wellFormed() {
		return fmt.Errorf("%s with a malformed %d-row grid: %w", op, len(other), ErrDimension)
	}
	if len(mt) != len(other) {
		return fmt.Errorf("%s %dx%d and %dx%d matrices: %w", op, len(mt), len(mt), len(other), len(other), ErrShapeMismatch)
	}
	return nil
}
