package v5

import (
	"errors"
	"testing"

	"github.com/scigolib/matlab/types"
)

func TestCoerce_Identity(t *testing.T) {
	tests := []struct {
		class types.MatlabType
		wire  DataType
		raw   interface{}
	}{
		{types.Double, Double, []float64{1, 2}},
		{types.Int32, Int32, []int32{1, 2}},
		{types.Uint8, Uint8, []uint8{1, 2}},
	}

	for _, tt := range tests {
		got, err := coerce(tt.class, tt.wire, tt.raw)
		if err != nil {
			t.Fatalf("coerce(%v, %v) error = %v", tt.class, tt.wire, err)
		}
		if _, ok := got.([]float64); !ok {
			if _, ok := got.([]int32); !ok {
				if _, ok := got.([]uint8); !ok {
					t.Errorf("coerce(%v, %v) = %T, unexpected type", tt.class, tt.wire, got)
				}
			}
		}
	}
}

func TestCoerce_WidensNarrowerIntoDouble(t *testing.T) {
	got, err := coerce(types.Double, Int16, []int16{1, -2, 3})
	if err != nil {
		t.Fatalf("coerce() error = %v", err)
	}
	want := []float64{1, -2, 3}
	f, ok := got.([]float64)
	if !ok {
		t.Fatalf("coerce() = %T, want []float64", got)
	}
	for i := range want {
		if f[i] != want[i] {
			t.Errorf("element %d = %v, want %v", i, f[i], want[i])
		}
	}
}

func TestCoerce_Int32MapsToInt32NotUint32(t *testing.T) {
	// A correction from the reference implementation this codec is
	// based on, which maps Int32 to the Uint32 wire type.
	if _, err := coerce(types.Int32, Uint32, []uint32{1}); err == nil {
		t.Error("coerce(Int32, Uint32) succeeded, want ErrConversion — Int32 stores as the Int32 wire type")
	}
	if _, err := coerce(types.Int32, Int32, []int32{1}); err != nil {
		t.Errorf("coerce(Int32, Int32) error = %v, want success", err)
	}
}

func TestCoerce_RejectsUnregisteredPair(t *testing.T) {
	_, err := coerce(types.Int8, Double, []float64{1})
	if !errors.Is(err, ErrConversion) {
		t.Errorf("error = %v, want ErrConversion", err)
	}
}

func TestCoerce_RejectsOutsideSpecMatrix(t *testing.T) {
	// spec §4.7 ends "All other combinations -> ConversionError"; these
	// are all plausible-looking but explicitly unlisted pairs.
	tests := []struct {
		name  string
		class types.MatlabType
		wire  DataType
		raw   interface{}
	}{
		{"Int8 only coerces from itself, not Uint8", types.Int8, Uint8, []uint8{1}},
		{"Uint8 only coerces from itself, not Int8", types.Uint8, Int8, []int8{1}},
		{"Int16 does not coerce from Uint16 (same-width reinterpret)", types.Int16, Uint16, []uint16{1}},
		{"Int32 does not coerce from Uint32 (same-width reinterpret)", types.Int32, Uint32, []uint32{1}},
		{"Int64 does not coerce from Uint64 (same-width reinterpret)", types.Int64, Uint64, []uint64{1}},
		{"Double does not coerce from Single", types.Double, Single, []float32{1}},
		{"Single does not coerce from Double", types.Single, Double, []float64{1}},
		{"Double does not coerce from Int8", types.Double, Int8, []int8{1}},
		{"Double does not coerce from Uint32", types.Double, Uint32, []uint32{1}},
		{"Double does not coerce from Int64", types.Double, Int64, []int64{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := coerce(tt.class, tt.wire, tt.raw); !errors.Is(err, ErrConversion) {
				t.Errorf("coerce(%v, %v) error = %v, want ErrConversion", tt.class, tt.wire, err)
			}
		})
	}
}

func TestCoerce_PermitsSpecMatrixWidening(t *testing.T) {
	// A sampling of the pairs spec §4.7 does permit, beyond the
	// already-covered Double<-Int16 case.
	tests := []struct {
		name  string
		class types.MatlabType
		wire  DataType
		raw   interface{}
	}{
		{"Int64 from Int32", types.Int64, Int32, []int32{1}},
		{"Uint64 from Uint16", types.Uint64, Uint16, []uint16{1}},
		{"Int32 from Uint8", types.Int32, Uint8, []uint8{1}},
		{"Uint32 from Int16", types.Uint32, Int16, []int16{1}},
		{"Int16 from Uint8", types.Int16, Uint8, []uint8{1}},
		{"Uint16 from Uint8", types.Uint16, Uint8, []uint8{1}},
		{"Single from Int32", types.Single, Int32, []int32{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := coerce(tt.class, tt.wire, tt.raw); err != nil {
				t.Errorf("coerce(%v, %v) error = %v, want success", tt.class, tt.wire, err)
			}
		})
	}
}

func TestNativeDataType(t *testing.T) {
	tests := []struct {
		class types.MatlabType
		want  DataType
		ok    bool
	}{
		{types.Double, Double, true},
		{types.Int32, Int32, true},
		{types.Cell, 0, false},
	}
	for _, tt := range tests {
		got, ok := nativeDataType(tt.class)
		if ok != tt.ok {
			t.Fatalf("nativeDataType(%v) ok = %v, want %v", tt.class, ok, tt.ok)
		}
		if ok && got != tt.want {
			t.Errorf("nativeDataType(%v) = %v, want %v", tt.class, got, tt.want)
		}
	}
}
