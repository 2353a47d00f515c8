package gif

// This file contains the low-level field accessors shared by the
// header, descriptor and color table parsers. All reads are pure
// extractions from the input buffer; nothing here mutates state.

import (
	"github.com/pkg/errors"
)

// readU16 reads a little-endian unsigned 16-bit integer at off.
func readU16(data []byte, off int) (uint16, error) {
	if off < 0 || off+2 > len(data) {
		return 0, errors.Wrapf(ErrMalformedHeader, "u16 read at offset %d of %d-byte buffer", off, len(data))
	}
	return uint16(data[off]) | uint16(data[off+1])<<8, nil
}

// readByte reads a single byte at off.
func readByte(data []byte, off int) (byte, error) {
	if off < 0 || off >= len(data) {
		return 0, errors.Wrapf(ErrMalformedHeader, "byte read at offset %d of %d-byte buffer", off, len(data))
	}
	return data[off], nil
}

// bitField extracts width bits of a packed byte starting at bit start,
// where bit 0 is the most significant bit. That matches the field
// tables published in the GIF89a specification, not natural numeric
// bit order.
func bitField(packed byte, start, width uint) uint8 {
	return (packed >> (8 - start - width)) & (1<<width - 1)
}
