// Package matlab reads and writes MATLAB Level-5 MAT-files: the
// tagged binary container format used by MATLAB v5 through v7.2, and
// still accepted by every later MATLAB release for files that don't
// need 64-bit array dimensions. Reading and writing v7.3 (HDF5-based)
// MAT-files is out of scope; Open reports ErrUnsupportedVersion for
// them.
package matlab

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/scigolib/matlab/internal/v5"
	"github.com/scigolib/matlab/types"
)

// MatFile is a MAT-file's header plus the ordered list of arrays it
// contains.
type MatFile struct {
	Description string
	Endian      string // "IM" (little-endian) or "MI" (big-endian)
	Arrays      []*types.Array

	order binary.ByteOrder
}

// hdf5Signature is the 8-byte magic that opens every HDF5 file, and
// therefore every MATLAB v7.3 MAT-file.
var hdf5Signature = []byte{0x89, 0x48, 0x44, 0x46, 0x0d, 0x0a, 0x1a, 0x0a}

// Open reads a complete MAT-file from r into memory and parses it.
// Per the wire format, the whole file must be buffered before parsing
// can begin — there is no way to know where the top-level element
// list ends without first locating the header's endian marker and
// walking the tags.
func Open(r io.Reader, opts ...Option) (*MatFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading MAT-file: %w", err)
	}
	return Decode(data, opts...)
}

// Decode parses a complete MAT-file already held in memory.
func Decode(data []byte, opts ...Option) (*MatFile, error) {
	if len(data) >= 8 && bytes.Equal(data[:8], hdf5Signature) {
		return nil, fmt.Errorf("%w: v7.3 (HDF5-based) MAT-files are not supported", ErrUnsupportedVersion)
	}
	if len(data) < v5.HeaderSize {
		return nil, fmt.Errorf("%w: file is only %d bytes", ErrInvalidFormat, len(data))
	}

	header, err := v5.ParseHeader(data[:v5.HeaderSize])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	cfg := defaultConfig()
	applyOptions(cfg, opts)

	file, err := v5.Parse(data, v5.ParseOptions{MaxInflatedSize: cfg.maxInflatedSize})
	if err != nil {
		return nil, err
	}

	endian := "IM"
	if header.Order == binary.BigEndian {
		endian = "MI"
	}

	return &MatFile{
		Description: header.Description,
		Endian:      endian,
		Arrays:      file.Arrays,
		order:       header.Order,
	}, nil
}

// FindByName returns the first array named name, or nil if none
// matches. A MAT-file may legally contain more than one array with
// the same name; FindByName always returns the first one encountered
// during parsing.
func (f *MatFile) FindByName(name string) *types.Array {
	for _, a := range f.Arrays {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Names returns the names of every array in the file, in file order.
func (f *MatFile) Names() []string {
	names := make([]string, len(f.Arrays))
	for i, a := range f.Arrays {
		names[i] = a.Name
	}
	return names
}

// AddArray appends array to the file's array list.
func (f *MatFile) AddArray(array *types.Array) {
	f.Arrays = append(f.Arrays, array)
}
