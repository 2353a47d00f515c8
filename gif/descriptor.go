package gif

import (
	"bytes"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// imageSeparator introduces an image descriptor block.
const imageSeparator = 0x2C

// ImageDescriptor describes the first image block of the file. Offset
// is the position of the 0x2C separator byte within the input buffer.
type ImageDescriptor struct {
	Offset int

	Left   uint16
	Top    uint16
	Width  uint16
	Height uint16

	// Fields of the packed byte at Offset+9. Reserved overlaps the
	// sort bit; this mirrors the field layout the rest of the decoder
	// is written against.
	LocalColorTable bool
	Interlace       bool
	Sort            bool
	Reserved        uint8
	SizeExponent    uint8
}

// FindImageDescriptor scans for the first image separator after the
// global color table and decodes the nine descriptor bytes following
// it.
func FindImageDescriptor(data []byte, sd ScreenDescriptor) (ImageDescriptor, error) {
	searchStart := screenDescriptorEnd + sd.ColorTableByteLen()
	if searchStart > len(data) {
		searchStart = len(data)
	}
	rel := bytes.IndexByte(data[searchStart:], imageSeparator)
	if rel < 0 {
		return ImageDescriptor{}, errors.Wrapf(ErrImageDescriptorNotFound, "no separator at or after offset %d", searchStart)
	}

	d := ImageDescriptor{Offset: searchStart + rel}
	var err error
	if d.Left, err = readU16(data, d.Offset+1); err != nil {
		return ImageDescriptor{}, err
	}
	if d.Top, err = readU16(data, d.Offset+3); err != nil {
		return ImageDescriptor{}, err
	}
	if d.Width, err = readU16(data, d.Offset+5); err != nil {
		return ImageDescriptor{}, err
	}
	if d.Height, err = readU16(data, d.Offset+7); err != nil {
		return ImageDescriptor{}, err
	}

	packed, err := readByte(data, d.Offset+9)
	if err != nil {
		return ImageDescriptor{}, err
	}
	d.LocalColorTable = bitField(packed, 0, 1) != 0
	d.Interlace = bitField(packed, 1, 1) != 0
	d.Sort = bitField(packed, 2, 1) != 0
	d.Reserved = bitField(packed, 2, 2)
	d.SizeExponent = bitField(packed, 4, 3)

	glog.V(2).Infof("image descriptor at offset %d: %dx%d at %d,%d", d.Offset, d.Width, d.Height, d.Left, d.Top)
	return d, nil
}
