package gif

import (
	"github.com/pkg/errors"
)

// buildGrid reshapes the flat color sequence into rows of the declared
// image width. The count must divide exactly; a partial trailing row
// is an error, not something to silently drop.
func buildGrid(flat []uint8, width int) ([][]uint8, error) {
	if width <= 0 {
		return nil, errors.Wrapf(ErrDimensionMismatch, "image width %d", width)
	}
	if len(flat)%width != 0 {
		return nil, errors.Wrapf(ErrDimensionMismatch, "%d colors do not fill rows of width %d", len(flat), width)
	}

	rows := make([][]uint8, 0, len(flat)/width)
	for off := 0; off < len(flat); off += width {
		rows = append(rows, flat[off:off+width])
	}
	return rows, nil
}
