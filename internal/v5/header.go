package v5

import (
	"encoding/binary"
	"fmt"
	"strings"
	"time"
)

// HeaderSize is the fixed size, in bytes, of a MAT-file v5 header.
const HeaderSize = 128

const descriptionSize = 116

// Header represents a MAT-file header (spec §3, §4.6, §6).
type Header struct {
	Description   string           // free-form text, as read or as written
	MatIdentifier string           // e.g. "MATLAB 5.0 MAT-file"; write-only, never parsed back (see spec §9)
	Version       uint16           // canonical 0x0100
	Order         binary.ByteOrder // derived from the endian marker; governs every subsequent multi-byte read
	SubsysOffset  uint64
	DeflateLevel  int // 0-9, default 1
}

// ParseHeader reads the 128-byte MAT-file header from data[:128].
func ParseHeader(data []byte) (*Header, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: header is %d bytes, need %d", ErrTruncated, len(data), HeaderSize)
	}

	marker := string(data[126:128])
	var order binary.ByteOrder
	switch marker {
	case "IM":
		order = binary.LittleEndian
	case "MI":
		order = binary.BigEndian
	default:
		return nil, fmt.Errorf("%w: %q", ErrHeaderMarker, marker)
	}

	return &Header{
		Description:  strings.TrimRight(string(data[:descriptionSize]), " \x00"),
		Version:      order.Uint16(data[124:126]),
		Order:        order,
		SubsysOffset: order.Uint64(data[116:124]),
		DeflateLevel: 1,
	}, nil
}

// WriteHeader renders h as a 128-byte MAT-file header. The description
// actually written is "{MatIdentifier}, Platform: PCWIN64, Created on:
// {timestamp}", space-padded to 116 bytes, per the write path in spec
// §4.6 — not h.Description verbatim, which is populated only when a
// header has been parsed rather than constructed for writing.
func WriteHeader(h *Header, now time.Time) []byte {
	buf := make([]byte, HeaderSize)

	text := fmt.Sprintf("%s, Platform: PCWIN64, Created on: %s",
		h.MatIdentifier, now.Format("Mon Jan _2 15:04:05 2006"))
	if len(text) > descriptionSize {
		text = text[:descriptionSize]
	}
	copy(buf, text)
	for i := len(text); i < descriptionSize; i++ {
		buf[i] = ' '
	}

	h.Order.PutUint64(buf[116:124], h.SubsysOffset)
	h.Order.PutUint16(buf[124:126], h.Version)

	if h.Order == binary.BigEndian {
		copy(buf[126:128], "MI")
	} else {
		copy(buf[126:128], "IM")
	}

	return buf
}
