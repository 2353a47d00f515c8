package gif

import (
	"image/color"

	"github.com/pkg/errors"
)

// RGB is a single color table entry.
type RGB struct {
	R, G, B uint8
}

// ColorTable is the global color table: an ordered sequence of RGB
// triples whose length is a power of two. It is extracted once per
// decode and read-only afterwards.
type ColorTable []RGB

// ExtractColorTable slices the global color table immediately
// following the header region and groups it into RGB triples.
func ExtractColorTable(data []byte, sd ScreenDescriptor) (ColorTable, error) {
	n := sd.ColorTableByteLen()
	if screenDescriptorEnd+n > len(data) {
		return nil, errors.Wrapf(ErrInvalidColorTableSize, "want %d table bytes, have %d", n, len(data)-screenDescriptorEnd)
	}
	raw := data[screenDescriptorEnd : screenDescriptorEnd+n]

	table := make(ColorTable, 0, n/3)
	for i := 0; i < n; i += 3 {
		table = append(table, RGB{R: raw[i], G: raw[i+1], B: raw[i+2]})
	}
	return table, nil
}

// Palette converts the table into a color.Palette of opaque colors.
func (t ColorTable) Palette() color.Palette {
	p := make(color.Palette, len(t))
	for i, c := range t {
		p[i] = color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
	}
	return p
}
