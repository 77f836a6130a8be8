package v5

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/scigolib/matlab/types"
)

func TestWriter_Bytes_HeaderOnly(t *testing.T) {
	w := NewWriter(&Header{Order: binary.LittleEndian, Version: 0x0100}, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	data, err := w.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}
	if len(data) != HeaderSize {
		t.Fatalf("len(data) = %d, want %d for a file with no arrays", len(data), HeaderSize)
	}
}

func TestWriter_Bytes_RejectsUnsupportedClass(t *testing.T) {
	w := NewWriter(&Header{Order: binary.LittleEndian, Version: 0x0100}, time.Now())
	w.Add(&types.Array{Flags: types.ArrayFlags{Class: types.Cell}, Name: "c", Size: []int{1, 1}})

	if _, err := w.Bytes(); err == nil {
		t.Error("Bytes() error = nil, want error for an unsupported class")
	}
}

func TestWriter_Bytes_UncompressedIsPlainMatrix(t *testing.T) {
	a, _ := types.NewMatrix("a", 1, 1, false, types.Double)
	w := NewWriter(&Header{Order: binary.LittleEndian, Version: 0x0100, DeflateLevel: 0}, time.Now())
	w.Add(a)

	data, err := w.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}

	tg, _, _, err := readElement(data, HeaderSize, binary.LittleEndian)
	if err != nil {
		t.Fatalf("readElement() error = %v", err)
	}
	if tg.Type != Matrix {
		t.Errorf("top-level type = %v, want Matrix (DeflateLevel 0 should skip compression)", tg.Type)
	}
}

func TestWriter_Bytes_CompressedWrapsInCompressedElement(t *testing.T) {
	a, _ := types.NewMatrix("a", 1, 1, false, types.Double)
	w := NewWriter(&Header{Order: binary.LittleEndian, Version: 0x0100, DeflateLevel: 6}, time.Now())
	w.Add(a)

	data, err := w.Bytes()
	if err != nil {
		t.Fatalf("Bytes() error = %v", err)
	}

	tg, _, _, err := readElement(data, HeaderSize, binary.LittleEndian)
	if err != nil {
		t.Fatalf("readElement() error = %v", err)
	}
	if tg.Type != Compressed {
		t.Errorf("top-level type = %v, want Compressed", tg.Type)
	}
}
