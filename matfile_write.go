package matlab

import (
	"fmt"
	"os"
	"time"

	"github.com/scigolib/matlab/internal/v5"
	"github.com/scigolib/matlab/types"
)

// Version identifies a MAT-file format to write. This package only
// implements Version5; it's kept as a type (rather than dropped
// outright) so a future v7.3 writer has somewhere to slot in without
// breaking the Create signature.
type Version int

// Version5 is the only version Create currently accepts: the v5-v7.2
// binary format.
const Version5 Version = 5

// MatFileWriter accumulates arrays in memory and renders them to a
// file on Close.
type MatFileWriter struct {
	filename string
	writer   *v5.Writer
}

// Create prepares a writer for a new MAT-file at filename. Arrays added via
// WriteVariable are rendered to disk when Close is called; nothing is
// written before then, since the compressed size of each array's
// miMATRIX element isn't known until it has been encoded.
//
// Example:
//
//	w, err := matlab.Create("output.mat", matlab.Version5,
//	    matlab.WithDescription("Simulation results"))
func Create(filename string, version Version, opts ...Option) (*MatFileWriter, error) {
	if filename == "" {
		return nil, fmt.Errorf("%w: filename is required", ErrInvalidFormat)
	}
	if version != Version5 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	cfg := defaultConfig()
	applyOptions(cfg, opts)

	header := &v5.Header{
		MatIdentifier: cfg.description,
		Version:       0x0100,
		Order:         cfg.endianness,
		DeflateLevel:  cfg.compression,
	}

	return &MatFileWriter{
		filename: filename,
		writer:   v5.NewWriter(header, time.Now()),
	}, nil
}

// WriteVariable appends array to the file.
func (w *MatFileWriter) WriteVariable(array *types.Array) error {
	if array == nil {
		return fmt.Errorf("%w: array is nil", ErrInvalidFormat)
	}
	w.writer.Add(array)
	return nil
}

// Close renders every added array and writes the complete file.
func (w *MatFileWriter) Close() error {
	data, err := w.writer.Bytes()
	if err != nil {
		return fmt.Errorf("encoding %s: %w", w.filename, err)
	}
	return os.WriteFile(w.filename, data, 0o644) //nolint:gosec // MAT-files aren't secrets
}
