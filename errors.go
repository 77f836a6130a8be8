package matlab

import "errors"

// ErrUnsupportedVersion indicates a MAT-file version this package
// doesn't read or write (e.g. v7.3/HDF5-based files — see the
// package doc for scope).
var ErrUnsupportedVersion = errors.New("unsupported MAT-file version")

// ErrInvalidFormat indicates data that isn't a recognizable MAT-file
// at all: neither a v5 endian marker nor an HDF5 signature. Create and
// WriteVariable also return it for an empty filename or a nil array.
var ErrInvalidFormat = errors.New("invalid MAT-file format")
