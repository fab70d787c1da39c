package math

import (
	"errors"
	"testing"

	"golang.org/x/image/math/f32"
)

func TestVectorFlatten(t *testing.T) {
	for dim := MinDim; dim <= MaxDim; dim++ {
		v, _ := NewVector(dim)
		if got := len(v.Flatten()); got != dim {
			t.Errorf("flatten of %d-vector has %d entries", dim, got)
		}
	}

	v := NewVec3(1, 2, 3)
	flat := v.Flatten()
	// The flattened buffer is a copy, not a view.
	flat[0] = 99
	if v[0] != 1 {
		t.Error("flatten aliases the source vector")
	}
}

func TestMatrixFlattenColumnMajor(t *testing.T) {
	m, _ := MatrixFromRows([]float32{1, 2}, []float32{3, 4})
	flat := m.Flatten()
	// Columns concatenate: (1,3) then (2,4).
	want := []float32{1, 3, 2, 4}
	for i := range want {
		if flat[i] != want[i] {
			t.Fatalf("flatten = %v, want %v", flat, want)
		}
	}

	// Flatten equals the transpose read row-major.
	tr := m.Transpose()
	i := 0
	for _, row := range tr {
		for _, x := range row {
			if flat[i] != x {
				t.Fatalf("flatten[%d] = %f, want %f", i, flat[i], x)
			}
			i++
		}
	}

	for dim := MinDim; dim <= MaxDim; dim++ {
		id, _ := NewMatrix(dim)
		if got := len(id.Flatten()); got != dim*dim {
			t.Errorf("flatten of %dx%d has %d entries", dim, dim, got)
		}
	}
}

func TestF32Mat4Layout(t *testing.T) {
	buf, err := NewMat4TranslationXYZ(1, 2, 3).F32Mat4()
	if err != nil {
		t.Fatalf("F32Mat4 error: %v", err)
	}
	// Column-major: the translation column lands at entries 12-14.
	if buf[12] != 1 || buf[13] != 2 || buf[14] != 3 || buf[15] != 1 {
		t.Errorf("translation buffer tail = %v, want [1 2 3 1]", buf[12:])
	}

	if _, err := NewMat3().F32Mat4(); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("F32Mat4 of 3x3 error = %v, want ErrShapeMismatch", err)
	}
}

func TestF32Vectors(t *testing.T) {
	v2, err := NewVec2(1, 2).F32Vec2()
	if err != nil || v2 != (f32.Vec2{1, 2}) {
		t.Errorf("F32Vec2 = %v, %v", v2, err)
	}
	v3, err := NewVec3(1, 2, 3).F32Vec3()
	if err != nil || v3 != (f32.Vec3{1, 2, 3}) {
		t.Errorf("F32Vec3 = %v, %v", v3, err)
	}
	v4, err := NewVec4(1, 2, 3, 4).F32Vec4()
	if err != nil || v4 != (f32.Vec4{1, 2, 3, 4}) {
		t.Errorf("F32Vec4 = %v, %v", v4, err)
	}

	if _, err := NewVec3(1, 2, 3).F32Vec4(); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("F32Vec4 of vec3 error = %v, want ErrShapeMismatch", err)
	}
}

func TestByteLen(t *testing.T) {
	if got := NewVec3Zero().ByteLen(); got != 12 {
		t.Errorf("vec3 ByteLen = %d, want 12", got)
	}
	if got := NewVec4(0, 0, 0, 1).ByteLen(); got != 16 {
		t.Errorf("vec4 ByteLen = %d, want 16", got)
	}
	if got := NewMat4().ByteLen(); got != 64 {
		t.Errorf("mat4 ByteLen = %d, want 64", got)
	}
	if got := NewMat2().ByteLen(); got != 16 {
		t.Errorf("mat2 ByteLen = %d, want 16", got)
	}
}
