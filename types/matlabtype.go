// Package types provides the in-memory array model shared by the MAT-file
// reader and writer: array classes, flags, and typed numeric storage.
package types

import "fmt"

// MatlabType identifies the MATLAB class of an array — the value stored in
// the low byte of the Array Flags word (see ArrayFlags.Class). It is
// distinct from the on-wire element type used to encode a sub-element's
// bytes (internal/v5.DataType); a Double array, for instance, may be packed
// on disk using a narrower element type and widened on read (see the
// coercion table in internal/v5/coercion.go).
type MatlabType uint8

// MATLAB array class constants, matching the MAT-file v5 on-disk values.
const (
	Cell MatlabType = iota + 1
	Struct
	Object
	Char
	Sparse
	Double
	Single
	Int8
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
	Function
	Opaque
)

func (t MatlabType) String() string {
	switch t {
	case Cell:
		return "cell"
	case Struct:
		return "struct"
	case Object:
		return "object"
	case Char:
		return "char"
	case Sparse:
		return "sparse"
	case Double:
		return "double"
	case Single:
		return "single"
	case Int8:
		return "int8"
	case Uint8:
		return "uint8"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Int64:
		return "int64"
	case Uint64:
		return "uint64"
	case Function:
		return "function_handle"
	case Opaque:
		return "opaque"
	default:
		return fmt.Sprintf("MatlabType(%d)", uint8(t))
	}
}

// IsNumeric reports whether t is one of the ten classes this codec can
// store as dense numeric data. Cell, Struct, Object, Char, Sparse,
// Function, and Opaque are recognized on read (enough to skip them) but
// cannot be constructed through NewMatrix or written back out.
func (t MatlabType) IsNumeric() bool {
	switch t {
	case Double, Single, Int8, Uint8, Int16, Uint16, Int32, Uint32, Int64, Uint64:
		return true
	default:
		return false
	}
}
