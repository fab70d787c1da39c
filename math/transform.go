package math

import (
	"fmt"

	"github.com/spaghettifunk/lina/core"
)

/**
 * @brief Creates and returns a translation matrix from the given position.
 *
 * @param position The 3-component position to be used to create the matrix.
 * @return A newly created translation matrix, or ErrNotVec3.
 */
func NewMat4Translation(position Vector) (Matrix, error) {
	if len(position) != 3 {
		return nil, fmt.Errorf("translation from a %d-component vector: %w", len(position), ErrNotVec3)
	}
	return NewMat4TranslationXYZ(position[0], position[1], position[2]), nil
}

/**
 * @brief Creates and returns a translation matrix from the given offsets,
 * placed in the last column of rows 0-2.
 */
func NewMat4TranslationXYZ(x, y, z float32) Matrix {
	out := NewMat4()
	out[0][3] = x
	out[1][3] = y
	out[2][3] = z
	return out
}

/**
 * @brief Returns a scale matrix using the provided scale.
 *
 * @param scale The 3-component scale.
 * @return A scale matrix, or ErrNotVec3.
 */
func NewMat4Scale(scale Vector) (Matrix, error) {
	if len(scale) != 3 {
		return nil, fmt.Errorf("scale from a %d-component vector: %w", len(scale), ErrNotVec3)
	}
	return NewMat4ScaleXYZ(scale[0], scale[1], scale[2]), nil
}

/**
 * @brief Returns a scale matrix with the three factors on the diagonal.
 */
func NewMat4ScaleXYZ(x, y, z float32) Matrix {
	out := NewMat4()
	out[0][0] = x
	out[1][1] = y
	out[2][2] = z
	return out
}

/**
 * @brief Creates a rotation matrix from the provided axis and angle. The
 * axis is normalized first; the matrix is the Rodrigues rotation built
 * from cosine c, 1-c and sine s terms.
 *
 * @param axis The 3-component axis of rotation.
 * @param angleDegrees The angle in degrees.
 * @return A rotation matrix, ErrNotVec3 or ErrZeroAxis.
 */
func NewMat4Rotation(axis Vector, angleDegrees float32) (Matrix, error) {
	if len(axis) != 3 {
		return nil, fmt.Errorf("rotation about a %d-component axis: %w", len(axis), ErrNotVec3)
	}
	if axis.LengthSquared() == 0 {
		return nil, fmt.Errorf("rotation by %f degrees: %w", angleDegrees, ErrZeroAxis)
	}
	n := axis.Normalize()
	x, y, z := n[0], n[1], n[2]

	r := DegToRad(angleDegrees)
	c := kcos(r)
	s := ksin(r)
	t := 1.0 - c

	out := NewMat4()
	out[0][0] = t*x*x + c
	out[0][1] = t*x*y - s*z
	out[0][2] = t*x*z + s*y
	out[1][0] = t*x*y + s*z
	out[1][1] = t*y*y + c
	out[1][2] = t*y*z - s*x
	out[2][0] = t*x*z - s*y
	out[2][1] = t*y*z + s*x
	out[2][2] = t*z*z + c
	return out, nil
}

/**
 * @brief Creates a rotation matrix about the x axis from the provided angle.
 *
 * @param angleDegrees The x angle in degrees.
 * @return A rotation matrix.
 */
func NewMat4EulerX(angleDegrees float32) Matrix {
	out := NewMat4()
	r := DegToRad(angleDegrees)
	c := kcos(r)
	s := ksin(r)

	out[1][1] = c
	out[1][2] = -s
	out[2][1] = s
	out[2][2] = c
	return out
}

/**
 * @brief Creates a rotation matrix about the y axis from the provided angle.
 *
 * @param angleDegrees The y angle in degrees.
 * @return A rotation matrix.
 */
func NewMat4EulerY(angleDegrees float32) Matrix {
	out := NewMat4()
	r := DegToRad(angleDegrees)
	c := kcos(r)
	s := ksin(r)

	out[0][0] = c
	out[0][2] = s
	out[2][0] = -s
	out[2][2] = c
	return out
}

/**
 * @brief Creates a rotation matrix about the z axis from the provided angle.
 *
 * @param angleDegrees The z angle in degrees.
 * @return A rotation matrix.
 */
func NewMat4EulerZ(angleDegrees float32) Matrix {
	out := NewMat4()
	r := DegToRad(angleDegrees)
	c := kcos(r)
	s := ksin(r)

	out[0][0] = c
	out[0][1] = -s
	out[1][0] = s
	out[1][1] = c
	return out
}

/**
 * @brief Creates a rotation matrix from the provided x, y and z axis
 * rotations, applied in x, y, z order.
 */
func NewMat4EulerXYZ(xDegrees, yDegrees, zDegrees float32) Matrix {
	rx := NewMat4EulerX(xDegrees)
	ry := NewMat4EulerY(yDegrees)
	rz := NewMat4EulerZ(zDegrees)
	out, _ := rx.Mul(ry)
	out, _ = out.Mul(rz)
	return out
}

/**
 * @brief Creates and returns a look-at view matrix, or a matrix looking
 * at target from the perspective of eye. When eye equals target the view
 * is degenerate and the identity is returned.
 *
 * @param eye The position of the viewer.
 * @param target The position to "look at".
 * @param up The up vector.
 * @return A view matrix, or ErrNotVec3.
 */
func NewMat4LookAt(eye, target, up Vector) (Matrix, error) {
	if len(eye) != 3 || len(target) != 3 || len(up) != 3 {
		return nil, fmt.Errorf("look-at of %d/%d/%d-component vectors: %w", len(eye), len(target), len(up), ErrNotVec3)
	}
	if eye.Equal(target) {
		core.LogWarn("look-at with eye equal to target %v, returning identity", eye)
		return NewMat4(), nil
	}

	fwd, _ := target.Sub(eye)
	forward := fwd.Normalize()
	r, _ := forward.Cross(up)
	right := r.Normalize()
	u, _ := right.Cross(forward)
	trueUp := u.Normalize()
	back := forward.Scale(-1)

	dotRight, _ := right.Dot(eye)
	dotUp, _ := trueUp.Dot(eye)
	dotBack, _ := back.Dot(eye)

	out := NewMat4()
	out[0] = []float32{right[0], right[1], right[2], -dotRight}
	out[1] = []float32{trueUp[0], trueUp[1], trueUp[2], -dotUp}
	out[2] = []float32{back[0], back[1], back[2], -dotBack}
	out[3] = []float32{0, 0, 0, 1}
	return out, nil
}

/**
 * @brief Creates and returns an orthographic projection matrix. Typically
 * used to render flat or 2D scenes. Panics when left equals right, bottom
 * equals top or near equals far; those bounds divide by zero and indicate
 * a programmer error rather than a recoverable condition.
 *
 * @param left The left side of the view frustum.
 * @param right The right side of the view frustum.
 * @param bottom The bottom side of the view frustum.
 * @param top The top side of the view frustum.
 * @param nearClip The near clipping plane distance.
 * @param farClip The far clipping plane distance.
 * @return A new orthographic projection matrix.
 */
func NewMat4Orthographic(left, right, bottom, top, nearClip, farClip float32) Matrix {
	if left == right {
		panic(fmt.Sprintf("orthographic: left and right bounds are both %f", left))
	}
	if bottom == top {
		panic(fmt.Sprintf("orthographic: bottom and top bounds are both %f", bottom))
	}
	if nearClip == farClip {
		panic(fmt.Sprintf("orthographic: near and far bounds are both %f", nearClip))
	}

	lr := 1.0 / (left - right)
	bt := 1.0 / (bottom - top)
	nf := 1.0 / (nearClip - farClip)

	out := NewMat4()
	out[0][0] = -2.0 * lr
	out[1][1] = -2.0 * bt
	out[2][2] = 2.0 * nf

	out[0][3] = (left + right) * lr
	out[1][3] = (top + bottom) * bt
	out[2][3] = (farClip + nearClip) * nf
	return out
}

/**
 * @brief Creates and returns a perspective projection matrix. Typically
 * used to render 3d scenes. The -1 in the fourth row marks the transform
 * as perspective rather than orthographic.
 *
 * @param fovDegrees The vertical field of view in degrees.
 * @param aspectRatio The aspect ratio.
 * @param nearClip The near clipping plane distance.
 * @param farClip The far clipping plane distance.
 * @return A new perspective matrix.
 */
func NewMat4Perspective(fovDegrees, aspectRatio, nearClip, farClip float32) Matrix {
	halfTanFov := ktan(DegToRad(fovDegrees) * 0.5)

	out := NewMat4()
	out[0][0] = 1.0 / (aspectRatio * halfTanFov)
	out[1][1] = 1.0 / halfTanFov
	out[2][2] = -((farClip + nearClip) / (farClip - nearClip))
	out[2][3] = -((2.0 * farClip * nearClip) / (farClip - nearClip))
	out[3][2] = -1.0
	out[3][3] = 0.0
	return out
}
