package matlab

import (
	"encoding/binary"
)

// config holds optional configuration for Create, Open and Decode.
type config struct {
	description string           // File description (max 116 bytes)
	endianness  binary.ByteOrder // Byte order (LittleEndian or BigEndian)
	compression int              // 0-9, 0=none, 9=max, passed to zlib as the deflate level

	// maxInflatedSize bounds how large a single miCOMPRESSED element is
	// allowed to inflate to when reading a file back. 0 means the
	// package default (see internal/v5.defaultMaxInflatedSize).
	maxInflatedSize int
}

// Option configures optional parameters for Create, Open and Decode.
// WithMaxInflatedSize only affects reading; the other options only
// affect writing.
type Option func(*config)

// WithEndianness sets the byte order for v5 files.
// Valid values: binary.LittleEndian, binary.BigEndian
//
// Default: binary.LittleEndian
//
// Example:
//
//	writer, _ := matlab.Create("file.mat", matlab.Version5,
//	    matlab.WithEndianness(binary.BigEndian))
func WithEndianness(order binary.ByteOrder) Option {
	return func(c *config) {
		c.endianness = order
	}
}

// WithDescription sets the file description (v5 only, max 116 bytes).
// If longer than 116 bytes, it will be truncated.
//
// Default: "MATLAB MAT-file, created by scigolib/matlab"
//
// Example:
//
//	writer, _ := matlab.Create("file.mat", matlab.Version5,
//	    matlab.WithDescription("Simulation results"))
func WithDescription(desc string) Option {
	return func(c *config) {
		if len(desc) > 116 {
			desc = desc[:116] // Truncate to fit v5 header
		}
		c.description = desc
	}
}

// WithCompression sets the zlib deflate level used when writing each
// array's miCOMPRESSED element (0-9). 0 writes arrays uncompressed as
// plain miMATRIX elements; 9 is maximum compression.
//
// Default: 1
//
// Example:
//
//	writer, _ := matlab.Create("file.mat", matlab.Version5,
//	    matlab.WithCompression(6))
func WithCompression(level int) Option {
	return func(c *config) {
		if level < 0 {
			level = 0
		} else if level > 9 {
			level = 9
		}
		c.compression = level
	}
}

// WithMaxInflatedSize bounds how large a single miCOMPRESSED element
// is allowed to inflate to while being read, guarding against a
// deflate bomb. A value <= 0 restores the package default.
//
// Default: 100MB
func WithMaxInflatedSize(bytes int) Option {
	return func(c *config) {
		c.maxInflatedSize = bytes
	}
}

// defaultConfig returns configuration with default values.
func defaultConfig() *config {
	return &config{
		description: "MATLAB MAT-file, created by scigolib/matlab",
		endianness:  binary.LittleEndian,
		compression: 1,
	}
}

// applyOptions applies Option functions to config.
func applyOptions(cfg *config, opts []Option) {
	for _, opt := range opts {
		opt(cfg)
	}
}
