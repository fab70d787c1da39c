package math

import (
	"fmt"
)

/**
 * @brief Creates and returns a new vector of the requested dimension from
 * the supplied components. Missing trailing components default to 0.0,
 * except the fourth component of a 4-vector built with no components at
 * all, which defaults to 1.0. Excess components are truncated.
 *
 * @param dim The vector dimension, 2..4.
 * @param comps The component values, 0..dim of them.
 * @return A new vector, or ErrDimension.
 */
func NewVector(dim int, comps ...float32) (Vector, error) {
	if !validDim(dim) {
		return nil, fmt.Errorf("vector of %d components: %w", dim, ErrDimension)
	}
	out := make(Vector, dim)
	if dim == 4 && len(comps) == 0 {
		out[3] = 1.0
	}
	copy(out, comps)
	return out, nil
}

/**
 * @brief Creates and returns a new vector of the requested dimension from
 * an existing sequence of components. Padding and truncation behave as in
 * NewVector. This is the explicit from-sequence construction path.
 */
func VectorFromSlice(dim int, s []float32) (Vector, error) {
	return NewVector(dim, s...)
}

// NewVec2 creates a 2-component vector from the supplied values.
func NewVec2(x, y float32) Vector {
	return Vector{x, y}
}

// NewVec3 creates a 3-component vector from the supplied values.
func NewVec3(x, y, z float32) Vector {
	return Vector{x, y, z}
}

// NewVec4 creates a 4-component vector from the supplied values.
func NewVec4(x, y, z, w float32) Vector {
	return Vector{x, y, z, w}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.0f.
 */
func NewVec3Zero() Vector {
	return Vector{0.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 1.0f.
 */
func NewVec3One() Vector {
	return Vector{1.0, 1.0, 1.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing up (0, 1, 0).
 */
func NewVec3Up() Vector {
	return Vector{0.0, 1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing down (0, -1, 0).
 */
func NewVec3Down() Vector {
	return Vector{0.0, -1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing left (-1, 0, 0).
 */
func NewVec3Left() Vector {
	return Vector{-1.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing right (1, 0, 0).
 */
func NewVec3Right() Vector {
	return Vector{1.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing forward (0, 0, -1).
 */
func NewVec3Forward() Vector {
	return Vector{0.0, 0.0, -1.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing backward (0, 0, 1).
 */
func NewVec3Back() Vector {
	return Vector{0.0, 0.0, 1.0}
}

/**
 * @brief Returns a new 4-component vector using v as the x, y and z
 * components and w for w. Requires a 3-component receiver.
 */
func (v Vector) ToVec4(w float32) (Vector, error) {
	if len(v) != 3 {
		return nil, fmt.Errorf("ToVec4 of a %d-component vector: %w", len(v), ErrNotVec3)
	}
	return Vector{v[0], v[1], v[2], w}, nil
}

/**
 * @brief Returns a new 3-component vector containing the first three
 * components of v, essentially dropping the w component.
 */
func (v Vector) ToVec3() (Vector, error) {
	if len(v) != 4 {
		return nil, fmt.Errorf("ToVec3 of a %d-component vector: %w", len(v), ErrShapeMismatch)
	}
	return Vector{v[0], v[1], v[2]}, nil
}

/**
 * @brief Adds other to v and returns a copy of the result.
 *
 * @param other The second vector.
 * @return The resulting vector, or ErrShapeMismatch.
 */
func (v Vector) Add(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, fmt.Errorf("add %d-component and %d-component vectors: %w", len(v), len(other), ErrShapeMismatch)
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] + other[i]
	}
	return out, nil
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 *
 * @param other The second vector.
 * @return The resulting vector, or ErrShapeMismatch.
 */
func (v Vector) Sub(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, fmt.Errorf("subtract %d-component and %d-component vectors: %w", len(v), len(other), ErrShapeMismatch)
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] - other[i]
	}
	return out, nil
}

/**
 * @brief Multiplies v by other component-wise and returns a copy of the
 * result. NOTE: this is the elementwise (Hadamard) product, not the dot
 * product; see Dot for that.
 *
 * @param other The second vector.
 * @return The resulting vector, or ErrShapeMismatch.
 */
func (v Vector) Mul(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, fmt.Errorf("multiply %d-component and %d-component vectors: %w", len(v), len(other), ErrShapeMismatch)
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] * other[i]
	}
	return out, nil
}

/**
 * @brief Divides v by other component-wise and returns a copy of the result.
 *
 * @param other The second vector.
 * @return The resulting vector, or ErrShapeMismatch.
 */
func (v Vector) Div(other Vector) (Vector, error) {
	if len(v) != len(other) {
		return nil, fmt.Errorf("divide %d-component and %d-component vectors: %w", len(v), len(other), ErrShapeMismatch)
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] / other[i]
	}
	return out, nil
}

/**
 * @brief Multiplies all components of v by scalar and returns a copy of
 * the result.
 */
func (v Vector) Scale(scalar float32) Vector {
	out := make(Vector, len(v))
	for i := range v {
		out[i] = v[i] * scalar
	}
	return out
}

/**
 * @brief Returns the dot product of v and other. Typically used to
 * calculate the difference in direction.
 *
 * @param other The second vector.
 * @return The dot product, or ErrShapeMismatch.
 */
func (v Vector) Dot(other Vector) (float32, error) {
	if len(v) != len(other) {
		return 0, fmt.Errorf("dot of %d-component and %d-component vectors: %w", len(v), len(other), ErrShapeMismatch)
	}
	p := float32(0)
	for i := range v {
		p += v[i] * other[i]
	}
	return p, nil
}

/**
 * @brief Calculates and returns the cross product of v and other. The
 * cross product is a new vector which is orthogonal to both provided
 * vectors. Both operands must be 3-component vectors.
 *
 * @param other The second vector.
 * @return The cross product, or ErrNotVec3.
 */
func (v Vector) Cross(other Vector) (Vector, error) {
	if len(v) != 3 || len(other) != 3 {
		return nil, fmt.Errorf("cross of %d-component and %d-component vectors: %w", len(v), len(other), ErrNotVec3)
	}
	return Vector{
		v[1]*other[2] - v[2]*other[1],
		v[2]*other[0] - v[0]*other[2],
		v[0]*other[1] - v[1]*other[0]}, nil
}

// LengthSquared returns the squared length of the vector.
func (v Vector) LengthSquared() float32 {
	p := float32(0)
	for i := range v {
		p += v[i] * v[i]
	}
	return p
}

// Length returns the length of the vector.
func (v Vector) Length() float32 {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Returns a normalized copy of the supplied vector. The zero
 * vector normalizes to itself.
 */
func (v Vector) Normalize() Vector {
	length := v.Length()
	out := make(Vector, len(v))
	if length == 0 {
		return out
	}
	for i := range v {
		out[i] = v[i] / length
	}
	return out
}

/**
 * @brief Compares all components of v and other and ensures the difference
 * is less than tolerance. Mismatched lengths never compare equal.
 *
 * @param other The second vector.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vector) Compare(other Vector, tolerance float32) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if kabs(v[i]-other[i]) > tolerance {
			return false
		}
	}
	return true
}

// Equal reports exact per-component equality.
func (v Vector) Equal(other Vector) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i] != other[i] {
			return false
		}
	}
	return true
}

/**
 * @brief Returns the distance between v and other.
 *
 * @param other The second vector.
 * @return The distance, or ErrShapeMismatch.
 */
func (v Vector) Distance(other Vector) (float32, error) {
	d, err := v.Sub(other)
	if err != nil {
		return 0, err
	}
	return d.Length(), nil
}
