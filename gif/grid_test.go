package gif

import (
	"bytes"
	"testing"

	"badc0de.net/pkg/go-gif/ttesting"
)

func TestBuildGrid(t *testing.T) {
	rows, err := buildGrid([]uint8{0, 1, 2, 3, 4, 5}, 3)
	if err != nil {
		t.Fatalf("buildGrid: %s", err)
	}
	ttesting.AssertEqualInt(t, "rows", len(rows), 2)
	if !bytes.Equal(rows[0], []uint8{0, 1, 2}) || !bytes.Equal(rows[1], []uint8{3, 4, 5}) {
		t.Errorf("got %v; want [[0 1 2] [3 4 5]]", rows)
	}
}

func TestBuildGridPartialRow(t *testing.T) {
	_, err := buildGrid([]uint8{0, 1, 2, 3, 4}, 2)
	ttesting.AssertErrorIs(t, "partial trailing row", err, ErrDimensionMismatch)
}

func TestBuildGridZeroWidth(t *testing.T) {
	_, err := buildGrid([]uint8{0, 1}, 0)
	ttesting.AssertErrorIs(t, "zero width", err, ErrDimensionMismatch)
}
