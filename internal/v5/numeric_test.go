package v5

import (
	"encoding/binary"
	"math"
	"reflect"
	"testing"
)

func TestDecodeNumeric_Double(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		order binary.ByteOrder
		want  []float64
	}{
		{
			name:  "single double little endian",
			data:  []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xf0, 0x3f},
			order: binary.LittleEndian,
			want:  []float64{1.0},
		},
		{
			name:  "single double big endian",
			data:  []byte{0x3f, 0xf0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
			order: binary.BigEndian,
			want:  []float64{1.0},
		},
		{
			name: "multiple doubles little endian",
			data: func() []byte {
				b := make([]byte, 16)
				binary.LittleEndian.PutUint64(b[0:8], math.Float64bits(1.0))
				binary.LittleEndian.PutUint64(b[8:16], math.Float64bits(2.0))
				return b
			}(),
			order: binary.LittleEndian,
			want:  []float64{1.0, 2.0},
		},
		{
			name:  "empty data",
			data:  []byte{},
			order: binary.LittleEndian,
			want:  []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeNumeric(tt.order, Double, tt.data)
			if err != nil {
				t.Fatalf("decodeNumeric() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("decodeNumeric() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecodeNumeric_UnwholeSize(t *testing.T) {
	_, err := decodeNumeric(binary.LittleEndian, Int16, []byte{1, 2, 3})
	if err == nil {
		t.Fatal("decodeNumeric() error = nil, want error for non-whole element count")
	}
}

func TestEncodeDecodeNumeric_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		t    DataType
		data interface{}
	}{
		{"int8", Int8, []int8{-1, 0, 1, 127}},
		{"uint8", Uint8, []uint8{0, 128, 255}},
		{"int16", Int16, []int16{-32768, 0, 32767}},
		{"uint16", Uint16, []uint16{0, 65535}},
		{"int32", Int32, []int32{-1 << 30, 0, 1 << 30}},
		{"uint32", Uint32, []uint32{0, 1 << 31}},
		{"single", Single, []float32{1.5, -2.25}},
		{"double", Double, []float64{1.5, -2.25, 3.0}},
		{"int64", Int64, []int64{-1, 1 << 40}},
		{"uint64", Uint64, []uint64{0, 1 << 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
				raw, err := encodeNumeric(order, tt.t, tt.data)
				if err != nil {
					t.Fatalf("encodeNumeric() error = %v", err)
				}
				got, err := decodeNumeric(order, tt.t, raw)
				if err != nil {
					t.Fatalf("decodeNumeric() error = %v", err)
				}
				if !reflect.DeepEqual(got, tt.data) {
					t.Errorf("round trip (%v) = %v, want %v", order, got, tt.data)
				}
			}
		})
	}
}
