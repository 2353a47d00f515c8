package gif

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// screenDescriptorEnd is the offset of the first byte after the fixed
// header region: 6 signature bytes plus 7 logical screen descriptor
// bytes.
const screenDescriptorEnd = 13

// Header is the 6-byte signature block, e.g. "GIF89a".
type Header struct {
	Signature string
}

// ScreenDescriptor is the logical screen descriptor, bytes 6..12 of
// the file.
type ScreenDescriptor struct {
	Width  uint16
	Height uint16

	// Fields of the packed byte at offset 10.
	GlobalColorTable bool
	ColorResolution  uint8
	Sort             bool
	SizeExponent     uint8

	BackgroundIndex byte
	AspectRatio     byte
}

// ColorTableByteLen returns the global color table length in bytes, as
// declared by the table size exponent: 3 * 2^(exponent+1).
func (sd ScreenDescriptor) ColorTableByteLen() int {
	return 3 * (1 << (sd.SizeExponent + 1))
}

// ParseHeader decodes bytes 0..5 as the file signature.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < screenDescriptorEnd {
		return Header{}, errors.Wrapf(ErrMalformedHeader, "got %d bytes, want at least %d", len(data), screenDescriptorEnd)
	}
	sig := data[0:6]
	for i, c := range sig {
		if c > 0x7f {
			return Header{}, errors.Wrapf(ErrMalformedHeader, "signature byte %d is not ascii", i)
		}
	}
	if string(sig[0:3]) != "GIF" {
		return Header{}, errors.Wrapf(ErrMalformedHeader, "bad signature %q", sig)
	}
	return Header{Signature: string(sig)}, nil
}

// ParseScreenDescriptor decodes bytes 6..12 as the logical screen
// descriptor.
func ParseScreenDescriptor(data []byte) (ScreenDescriptor, error) {
	if len(data) < screenDescriptorEnd {
		return ScreenDescriptor{}, errors.Wrapf(ErrMalformedHeader, "got %d bytes, want at least %d", len(data), screenDescriptorEnd)
	}

	var sd ScreenDescriptor
	var err error
	if sd.Width, err = readU16(data, 6); err != nil {
		return ScreenDescriptor{}, err
	}
	if sd.Height, err = readU16(data, 8); err != nil {
		return ScreenDescriptor{}, err
	}

	packed, err := readByte(data, 10)
	if err != nil {
		return ScreenDescriptor{}, err
	}
	sd.GlobalColorTable = bitField(packed, 0, 1) != 0
	sd.ColorResolution = bitField(packed, 1, 3)
	sd.Sort = bitField(packed, 4, 1) != 0
	sd.SizeExponent = bitField(packed, 5, 3)

	if sd.BackgroundIndex, err = readByte(data, 11); err != nil {
		return ScreenDescriptor{}, err
	}
	if sd.AspectRatio, err = readByte(data, 12); err != nil {
		return ScreenDescriptor{}, err
	}

	glog.V(2).Infof("screen descriptor: %dx%d, table size exponent %d", sd.Width, sd.Height, sd.SizeExponent)
	return sd, nil
}
