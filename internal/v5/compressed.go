// Package v5 implements the MAT-file v5 (MATLAB v5-v7.2) binary container.
package v5

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// defaultMaxInflatedSize bounds how much a single miCOMPRESSED element
// may inflate to when the caller hasn't set an explicit limit via
// WithMaxInflatedSize. 100MB comfortably covers ordinary workspaces
// while still catching a deflate bomb early.
const defaultMaxInflatedSize = 100 * 1024 * 1024

// maxCompressionRatio bounds decompressed-size / compressed-size.
// Ordinary zlib on numeric data lands between 2:1 and 10:1; a ratio
// above 1000:1 is a stronger signal of a hostile payload than of a
// real MAT-file.
const maxCompressionRatio = 1000

// inflate decompresses a zlib-wrapped miCOMPRESSED payload, refusing to
// read past maxInflated bytes or a maxCompressionRatio:1 ratio.
func inflate(payload []byte, maxInflated int) ([]byte, error) {
	if maxInflated <= 0 {
		maxInflated = defaultMaxInflatedSize
	}

	zr, err := zlib.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	defer zr.Close() //nolint:errcheck // read-only decompression, nothing to flush

	var out bytes.Buffer
	limited := io.LimitReader(zr, int64(maxInflated)+1)
	n, err := io.Copy(&out, limited)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	if n > int64(maxInflated) {
		return nil, fmt.Errorf("%w: inflated size exceeds %d bytes", ErrCompression, maxInflated)
	}
	if len(payload) > 0 {
		if ratio := float64(n) / float64(len(payload)); ratio > maxCompressionRatio {
			return nil, fmt.Errorf("%w: compression ratio %.1f:1 exceeds %d:1", ErrCompression, ratio, maxCompressionRatio)
		}
	}

	return out.Bytes(), nil
}

// deflate zlib-compresses data at the given level (see compress/flate
// for the level constants; 0 disables compression, -1 is the zlib
// default, 9 is maximum).
func deflate(data []byte, level int) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}
	return buf.Bytes(), nil
}
