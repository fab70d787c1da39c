package math

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

/**
 * @brief Serializes the vector into a contiguous sequence of 32-bit
 * floats, one component per entry.
 */
func (v Vector) Flatten() []float32 {
	out := make([]float32, len(v))
	copy(out, v)
	return out
}

/**
 * @brief Serializes the matrix into a column-major contiguous sequence of
 * 32-bit floats suitable for a graphics-API uniform upload. Storage is
 * row-major, so the matrix is transposed before concatenation.
 */
func (mt Matrix) Flatten() []float32 {
	t := mt.Transpose()
	out := make([]float32, 0, len(mt)*len(mt))
	for _, row := range t {
		out = append(out, row...)
	}
	return out
}

/**
 * @brief Returns the vector as an f32.Vec2 buffer.
 */
func (v Vector) F32Vec2() (f32.Vec2, error) {
	if len(v) != 2 {
		return f32.Vec2{}, fmt.Errorf("f32.Vec2 of a %d-component vector: %w", len(v), ErrShapeMismatch)
	}
	return f32.Vec2{v[0], v[1]}, nil
}

/**
 * @brief Returns the vector as an f32.Vec3 buffer.
 */
func (v Vector) F32Vec3() (f32.Vec3, error) {
	if len(v) != 3 {
		return f32.Vec3{}, fmt.Errorf("f32.Vec3 of a %d-component vector: %w", len(v), ErrShapeMismatch)
	}
	return f32.Vec3{v[0], v[1], v[2]}, nil
}

/**
 * @brief Returns the vector as an f32.Vec4 buffer.
 */
func (v Vector) F32Vec4() (f32.Vec4, error) {
	if len(v) != 4 {
		return f32.Vec4{}, fmt.Errorf("f32.Vec4 of a %d-component vector: %w", len(v), ErrShapeMismatch)
	}
	return f32.Vec4{v[0], v[1], v[2], v[3]}, nil
}

/**
 * @brief Returns the matrix flattened column-major into an f32.Mat3
 * buffer.
 */
func (mt Matrix) F32Mat3() (f32.Mat3, error) {
	if !mt.wellFormed() || len(mt) != 3 {
		return f32.Mat3{}, fmt.Errorf("f32.Mat3 of a %d-row grid: %w", len(mt), ErrShapeMismatch)
	}
	var out f32.Mat3
	copy(out[:], mt.Flatten())
	return out, nil
}

/**
 * @brief Returns the matrix flattened column-major into an f32.Mat4
 * buffer, the layout a uniform upload expects.
 */
func (mt Matrix) F32Mat4() (f32.Mat4, error) {
	if !mt.wellFormed() || len(mt) != 4 {
		return f32.Mat4{}, fmt.Errorf("f32.Mat4 of a %d-row grid: %w", len(mt), ErrShapeMismatch)
	}
	var out f32.Mat4
	copy(out[:], mt.Flatten())
	return out, nil
}
