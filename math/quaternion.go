package math

import (
	"fmt"
)

/** @brief A quaternion (x, y, z, w), used to represent rotational orientation. */
type Quaternion [4]float32

/**
 * @brief Creates an identity quaternion.
 */
func NewQuatIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1.0}
}

/**
 * @brief Creates a quaternion from the given axis and angle.
 *
 * @param axis The 3-component axis of rotation.
 * @param angleDegrees The angle of rotation in degrees.
 * @return A new unit quaternion, ErrNotVec3 or ErrZeroAxis.
 */
func NewQuatFromAxisAngle(axis Vector, angleDegrees float32) (Quaternion, error) {
	if len(axis) != 3 {
		return Quaternion{}, fmt.Errorf("quaternion about a %d-component axis: %w", len(axis), ErrNotVec3)
	}
	if axis.LengthSquared() == 0 {
		return Quaternion{}, fmt.Errorf("quaternion by %f degrees: %w", angleDegrees, ErrZeroAxis)
	}
	n := axis.Normalize()

	halfAngle := 0.5 * DegToRad(angleDegrees)
	s := ksin(halfAngle)
	c := kcos(halfAngle)
	return Quaternion{s * n[0], s * n[1], s * n[2], c}, nil
}

// Normal returns the length of the quaternion.
func (q Quaternion) Normal() float32 {
	return ksqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
}

/**
 * @brief Returns a normalized copy of the provided quaternion.
 */
func (q Quaternion) Normalize() Quaternion {
	normal := q.Normal()
	return Quaternion{
		q[0] / normal,
		q[1] / normal,
		q[2] / normal,
		q[3] / normal}
}

/**
 * @brief Returns the conjugate of the provided quaternion. That is,
 * the x, y and z components are negated, but the w component is untouched.
 */
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q[0], -q[1], -q[2], q[3]}
}

/**
 * @brief Returns an inverse copy of the provided quaternion.
 */
func (q Quaternion) Inverse() Quaternion {
	return q.Conjugate().Normalize()
}

/**
 * @brief Multiplies the provided quaternions.
 */
func (q Quaternion) Mul(other Quaternion) Quaternion {
	out := Quaternion{}

	out[0] = q[0]*other[3] +
		q[1]*other[2] -
		q[2]*other[1] +
		q[3]*other[0]

	out[1] = -q[0]*other[2] +
		q[1]*other[3] +
		q[2]*other[0] +
		q[3]*other[1]

	out[2] = q[0]*other[1] -
		q[1]*other[0] +
		q[2]*other[3] +
		q[3]*other[2]

	out[3] = -q[0]*other[0] -
		q[1]*other[1] -
		q[2]*other[2] +
		q[3]*other[3]

	return out
}

/**
 * @brief Calculates the dot product of the provided quaternions.
 */
func (q Quaternion) Dot(other Quaternion) float32 {
	return q[0]*other[0] +
		q[1]*other[1] +
		q[2]*other[2] +
		q[3]*other[3]
}

/**
 * @brief Creates a 4x4 rotation matrix from the given quaternion.
 */
func (q Quaternion) ToMatrix() Matrix {
	n := q.Normalize()

	out := NewMat4()
	out[0][0] = 1.0 - 2.0*n[1]*n[1] - 2.0*n[2]*n[2]
	out[0][1] = 2.0*n[0]*n[1] - 2.0*n[2]*n[3]
	out[0][2] = 2.0*n[0]*n[2] + 2.0*n[1]*n[3]

	out[1][0] = 2.0*n[0]*n[1] + 2.0*n[2]*n[3]
	out[1][1] = 1.0 - 2.0*n[0]*n[0] - 2.0*n[2]*n[2]
	out[1][2] = 2.0*n[1]*n[2] - 2.0*n[0]*n[3]

	out[2][0] = 2.0*n[0]*n[2] - 2.0*n[1]*n[3]
	out[2][1] = 2.0*n[1]*n[2] + 2.0*n[0]*n[3]
	out[2][2] = 1.0 - 2.0*n[0]*n[0] - 2.0*n[1]*n[1]

	return out
}

/**
 * @brief Calculates spherical linear interpolation of a given percentage
 * between two quaternions.
 *
 * @param other The target quaternion.
 * @param percentage The percentage of interpolation, typically 0.0f-1.0f.
 * @return An interpolated quaternion.
 */
func (q Quaternion) Slerp(other Quaternion, percentage float32) Quaternion {
	// Only unit quaternions are valid rotations.
	v0 := q.Normalize()
	v1 := other.Normalize()

	dot := v0.Dot(v1)

	// If the dot product is negative, slerp won't take the shorter path.
	// v1 and -v1 are the same rotation, so flip one.
	if dot < 0.0 {
		v1[0] = -v1[0]
		v1[1] = -v1[1]
		v1[2] = -v1[2]
		v1[3] = -v1[3]
		dot = -dot
	}

	const dotThreshold = 0.9995
	if dot > dotThreshold {
		// Inputs too close together; linearly interpolate and normalize.
		qt := Quaternion{
			v0[0] + ((v1[0] - v0[0]) * percentage),
			v0[1] + ((v1[1] - v0[1]) * percentage),
			v0[2] + ((v1[2] - v0[2]) * percentage),
			v0[3] + ((v1[3] - v0[3]) * percentage)}
		return qt.Normalize()
	}

	// Since dot is in range [0, dotThreshold], acos is safe.
	theta0 := kacos(dot)
	theta := theta0 * percentage
	sinTheta := ksin(theta)
	sinTheta0 := ksin(theta0)

	s0 := kcos(theta) - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0

	return Quaternion{
		(v0[0] * s0) + (v1[0] * s1),
		(v0[1] * s0) + (v1[1] * s1),
		(v0[2] * s0) + (v1[2] * s1),
		(v0[3] * s0) + (v1[3] * s1)}
}
