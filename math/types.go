package math

// Vector is a fixed-length sequence of float32 components with a length
// of 2, 3 or 4. Operations return new vectors; nothing mutates in place.
type Vector []float32

/**
 * @brief A square grid of float32 values of dimension 2, 3 or 4, stored as
 * row vectors. The named type is what distinguishes a Matrix from a plain
 * Vector or nested slice; downstream dispatch is by type, never by shape
 * probing.
 */
type Matrix [][]float32

const (
	// MinDim is the smallest supported vector length / matrix dimension.
	MinDim = 2
	// MaxDim is the largest supported vector length / matrix dimension.
	MaxDim = 4
)

/** @brief The size in bytes of a single float32 component. */
const ComponentBytes = 4

// Byte sizes of flattened values, indexed by dimension. Filled once at
// package load and read-only afterwards.
var (
	vectorBytes [MaxDim + 1]int
	matrixBytes [MaxDim + 1]int
)

func init() {
	for d := MinDim; d <= MaxDim; d++ {
		vectorBytes[d] = d * ComponentBytes
		matrixBytes[d] = d * d * ComponentBytes
	}
}

// Dim returns the number of components of the vector.
func (v Vector) Dim() int {
	return len(v)
}

// Dim returns the matrix dimension (number of rows).
func (mt Matrix) Dim() int {
	return len(mt)
}

/**
 * @brief Returns the size in bytes of the vector once flattened
 * for upload, straight from the load-time lookup table.
 */
func (v Vector) ByteLen() int {
	return vectorBytes[len(v)]
}

/**
 * @brief Returns the size in bytes of the matrix once flattened
 * for upload, straight from the load-time lookup table.
 */
func (mt Matrix) ByteLen() int {
	return matrixBytes[len(mt)]
}

// validDim reports whether d is a supported dimension.
func validDim(d int) bool {
	return d >= MinDim && d <= MaxDim
}

// wellFormed reports whether the matrix is square with a supported
// dimension. Matrices built through the package constructors always
// are; hand-built literals may not be.
func (mt Matrix) wellFormed() bool {
	if !validDim(len(mt)) {
		return false
	}
	for _, row := range mt {
		if len(row) != len(mt) {
			return false
		}
	}
	return true
}
