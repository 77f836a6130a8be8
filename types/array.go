package types

import (
	"errors"
	"fmt"
)

// ErrNotNumeric is returned by NewMatrix when asked to construct one of
// the classes this codec declines to model (Cell, Struct, Object, Char,
// Sparse, Function, Opaque).
var ErrNotNumeric = errors.New("class is not numeric")

// ArrayFlags mirrors the 8-byte Array Flags sub-element that precedes
// every miMATRIX element's dimensions.
type ArrayFlags struct {
	Complex bool
	Global  bool
	Logical bool
	Class   MatlabType
	Nzmax   uint32 // meaningful only when Class == Sparse
}

// Array is a named MATLAB array: either a dense numeric matrix this codec
// fully models, or an unsupported class (Cell, Struct, Object, Char,
// Sparse, Function, Opaque) recognized just well enough to be skipped.
type Array struct {
	Flags ArrayFlags
	Name  string
	Size  []int // dimensions, length >= 2

	// Data holds the array's numeric storage. It is nil for an
	// unsupported class — see Unsupported.
	Data *NumericData
}

// Unsupported reports whether this array's class was recognized but not
// modeled (its on-disk framing was parsed just enough to stay
// byte-aligned with the rest of the file).
func (a *Array) Unsupported() bool {
	return a.Data == nil
}

// Ndims returns the number of dimensions.
func (a *Array) Ndims() int {
	return len(a.Size)
}

// NumElements returns the product of the dimensions.
func (a *Array) NumElements() int {
	if len(a.Size) == 0 {
		return 0
	}
	n := 1
	for _, d := range a.Size {
		n *= d
	}
	return n
}

// Rows and Cols report the first two dimensions. Array addressing and the
// Set* setters only operate on 2-D arrays, matching NewMatrix.
func (a *Array) Rows() int {
	if len(a.Size) < 1 {
		return 0
	}
	return a.Size[0]
}

func (a *Array) Cols() int {
	if len(a.Size) < 2 {
		return 0
	}
	return a.Size[1]
}

// index computes the column-major linear offset for (row, col), and
// reports whether it falls within the array's declared bounds.
func (a *Array) index(row, col int) (int, bool) {
	rows, cols := a.Rows(), a.Cols()
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return 0, false
	}
	return row + col*rows, true
}

// NewMatrix allocates a zero-filled numeric array of the given class.
// Addressing is column-major: (row, col) lives at row + col*rows.
func NewMatrix(name string, rows, cols int, complex bool, class MatlabType) (*Array, error) {
	if !class.IsNumeric() {
		return nil, fmt.Errorf("%w: %s", ErrNotNumeric, class)
	}
	data, ok := zeroNumericData(class, rows*cols, complex)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotNumeric, class)
	}
	return &Array{
		Flags: ArrayFlags{Complex: complex, Class: class},
		Name:  name,
		Size:  []int{rows, cols},
		Data:  &data,
	}, nil
}
