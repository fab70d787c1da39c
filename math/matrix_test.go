package math

import (
	"errors"
	"testing"
)

func TestNewMatrixIdentity(t *testing.T) {
	for dim := MinDim; dim <= MaxDim; dim++ {
		id, err := NewMatrix(dim)
		if err != nil {
			t.Fatalf("NewMatrix(%d) error: %v", dim, err)
		}
		for i := 0; i < dim; i++ {
			for j := 0; j < dim; j++ {
				want := float32(0)
				if i == j {
					want = 1
				}
				if id[i][j] != want {
					t.Errorf("identity[%d][%d] = %f, want %f", i, j, id[i][j], want)
				}
			}
		}
	}

	if _, err := NewMatrix(5); !errors.Is(err, ErrDimension) {
		t.Errorf("NewMatrix(5) error = %v, want ErrDimension", err)
	}
}

func TestIdentityMultiplication(t *testing.T) {
	grids := map[int][][]float32{
		2: {{1, 2}, {3, 4}},
		3: {{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
		4: {{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}, {13, 14, 15, 16}},
	}
	for dim, rows := range grids {
		m, err := MatrixFromRows(rows...)
		if err != nil {
			t.Fatalf("MatrixFromRows(%d) error: %v", dim, err)
		}
		id, _ := NewMatrix(dim)

		left, err := id.Mul(m)
		if err != nil {
			t.Fatalf("I*M error: %v", err)
		}
		if !left.Equal(m) {
			t.Errorf("dim %d: I*M = %v, want M", dim, left)
		}

		right, _ := m.Mul(id)
		if !right.Equal(m) {
			t.Errorf("dim %d: M*I = %v, want M", dim, right)
		}
	}
}

func TestNewMatrixUniform(t *testing.T) {
	m, err := NewMatrixUniform(3, 2.5)
	if err != nil {
		t.Fatalf("NewMatrixUniform error: %v", err)
	}
	want, _ := MatrixFromRows(
		[]float32{2.5, 0, 0},
		[]float32{0, 2.5, 0},
		[]float32{0, 0, 2.5},
	)
	if !m.Equal(want) {
		t.Errorf("NewMatrixUniform(3, 2.5) = %v, want %v", m, want)
	}
}

func TestMatrixFromRowsValidation(t *testing.T) {
	if _, err := MatrixFromRows([]float32{1, 2}, []float32{3}); !errors.Is(err, ErrDimension) {
		t.Errorf("ragged rows error = %v, want ErrDimension", err)
	}
	if _, err := MatrixFromRows([]float32{1}); !errors.Is(err, ErrDimension) {
		t.Errorf("1x1 error = %v, want ErrDimension", err)
	}
}

func TestMatrixMultiplication(t *testing.T) {
	a, _ := MatrixFromRows([]float32{1, 2}, []float32{3, 4})
	b, _ := MatrixFromRows([]float32{5, 6}, []float32{7, 8})

	// [1 2][5 6]   [19 22]
	// [3 4][7 8] = [43 50]
	got, err := a.Mul(b)
	if err != nil {
		t.Fatalf("Mul error: %v", err)
	}
	want, _ := MatrixFromRows([]float32{19, 22}, []float32{43, 50})
	if !got.Equal(want) {
		t.Errorf("Mul = %v, want %v", got, want)
	}
}

func TestMatrixAddShapeMismatch(t *testing.T) {
	out, err := NewMat2().Add(NewMat3())
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("add 2x2+3x3 error = %v, want ErrShapeMismatch", err)
	}
	if out != nil {
		t.Errorf("add 2x2+3x3 = %v, want nil", out)
	}
}

func TestMatrixAddSub(t *testing.T) {
	a, _ := MatrixFromRows([]float32{1, 2}, []float32{3, 4})
	b, _ := MatrixFromRows([]float32{4, 3}, []float32{2, 1})

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	five, _ := NewMatrixUniform(2, 5)
	five[0][1] = 5
	five[1][0] = 5
	if !sum.Equal(five) {
		t.Errorf("Add = %v, want all fives", sum)
	}

	diff, _ := sum.Sub(b)
	if !diff.Equal(a) {
		t.Errorf("Sub = %v, want %v", diff, a)
	}
}

func TestMatrixScale(t *testing.T) {
	m, _ := MatrixFromRows([]float32{1, 2}, []float32{3, 4})
	got := m.Scale(2)
	want, _ := MatrixFromRows([]float32{2, 4}, []float32{6, 8})
	if !got.Equal(want) {
		t.Errorf("Scale = %v, want %v", got, want)
	}
}

func TestTransposeRoundTrip(t *testing.T) {
	m, _ := MatrixFromRows(
		[]float32{1, 2, 3},
		[]float32{4, 5, 6},
		[]float32{7, 8, 9},
	)
	tr := m.Transpose()
	if tr[0][1] != 4 || tr[1][0] != 2 {
		t.Errorf("Transpose = %v", tr)
	}
	if !tr.Transpose().Equal(m) {
		t.Errorf("double transpose = %v, want %v", tr.Transpose(), m)
	}
}

func TestMatrixRow(t *testing.T) {
	m, _ := MatrixFromRows([]float32{1, 2}, []float32{3, 4})
	row := m.Row(1)
	if !row.Equal(Vector{3, 4}) {
		t.Errorf("Row(1) = %v, want (3,4)", row)
	}
	// Rows are copies, not views.
	row[0] = 99
	if m[1][0] != 3 {
		t.Error("Row aliases the matrix storage")
	}
}

func TestMatrixMulVec(t *testing.T) {
	m, _ := MatrixFromRows([]float32{1, 2}, []float32{3, 4})
	got, err := m.MulVec(NewVec2(1, 1))
	if err != nil {
		t.Fatalf("MulVec error: %v", err)
	}
	if !got.Equal(Vector{3, 7}) {
		t.Errorf("MulVec = %v, want (3,7)", got)
	}

	if _, err := m.MulVec(NewVec3(1, 1, 1)); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("MulVec shape error = %v, want ErrShapeMismatch", err)
	}
}

func TestMalformedGrid(t *testing.T) {
	bad := Matrix{{1, 2}, {3}}
	if _, err := bad.Add(NewMat2()); !errors.Is(err, ErrDimension) {
		t.Errorf("malformed add error = %v, want ErrDimension", err)
	}
	if _, err := bad.MulVec(NewVec2(1, 1)); !errors.Is(err, ErrDimension) {
		t.Errorf("malformed MulVec error = %v, want ErrDimension", err)
	}
}
