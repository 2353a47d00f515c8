package gif

// This file contains the gif package's functions related to
// implementing image.Image and related interfaces, modeled after the
// public surface of the standard image decoders.

import (
	"image"
	"io"

	"github.com/pkg/errors"
)

func init() {
	image.RegisterFormat("gif", "GIF8?a", Decode, DecodeConfig)
}

// DecodeConfig returns the color model and logical screen dimensions
// of a GIF file without decompressing the image data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return image.Config{}, errors.Wrap(err, "reading gif data")
	}
	if _, err := ParseHeader(data); err != nil {
		return image.Config{}, err
	}
	sd, err := ParseScreenDescriptor(data)
	if err != nil {
		return image.Config{}, err
	}
	table, err := ExtractColorTable(data, sd)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: table.Palette(),
		Width:      int(sd.Width),
		Height:     int(sd.Height),
	}, nil
}

// Decode decodes the first image of a GIF file.
func Decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading gif data")
	}
	m, err := DecodeIndexed(data)
	if err != nil {
		return nil, err
	}
	return m.Image(), nil
}

// Image converts the decoded rows into an *image.Paletted backed by
// the global color table.
func (m *IndexedImage) Image() *image.Paletted {
	w, h := int(m.Desc.Width), len(m.Rows)
	img := image.NewPaletted(image.Rect(0, 0, w, h), m.Table.Palette())
	for y, row := range m.Rows {
		copy(img.Pix[y*img.Stride:y*img.Stride+w], row)
	}
	return img
}
