package v5

import (
	"bytes"
	"fmt"
	"time"

	"github.com/scigolib/matlab/types"
)

// Writer accumulates a MAT-file v5 byte stream in memory. Bytes
// renders the complete header plus every appended array; the caller
// flushes Bytes() to storage once.
type Writer struct {
	header *Header
	now    time.Time
	arrays []*types.Array
}

// NewWriter starts a writer for a file with the given header. now is
// the timestamp recorded in the written description text; callers
// pass it explicitly rather than letting the writer call time.Now(),
// keeping output reproducible.
func NewWriter(header *Header, now time.Time) *Writer {
	return &Writer{header: header, now: now}
}

// Add appends array to the set of arrays this writer will emit, in
// call order.
func (w *Writer) Add(array *types.Array) {
	w.arrays = append(w.arrays, array)
}

// Bytes renders the complete file: the 128-byte header followed by
// one data element per added array. Each array is wrapped in a
// miCOMPRESSED element when w.header.DeflateLevel > 0, matching how a
// MATLAB installation writes .mat files by default; DeflateLevel == 0
// writes the array's miMATRIX element uncompressed.
func (w *Writer) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(WriteHeader(w.header, w.now))

	for i, array := range w.arrays {
		content, err := encodeMatrix(w.header.Order, array)
		if err != nil {
			return nil, fmt.Errorf("array %d (%q): %w", i, array.Name, err)
		}
		matrixElement := writeElement(w.header.Order, Matrix, content)

		if w.header.DeflateLevel <= 0 {
			buf.Write(matrixElement)
			continue
		}

		compressed, err := deflate(matrixElement, w.header.DeflateLevel)
		if err != nil {
			return nil, fmt.Errorf("array %d (%q): %w", i, array.Name, err)
		}
		buf.Write(writeElement(w.header.Order, Compressed, compressed))
	}

	return buf.Bytes(), nil
}
