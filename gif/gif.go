package gif

// This file wires the parsing stages into the full decode pipeline.

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// IndexedImage is a fully decoded frame: palette indices arranged
// row-major, plus the parsed structures they came from. All fields are
// read-only once DecodeIndexed returns.
type IndexedImage struct {
	Header Header
	Screen ScreenDescriptor
	Table  ColorTable
	Desc   ImageDescriptor
	Rows   [][]uint8
}

// DecodeIndexed decodes the first image of an in-memory GIF file. The
// input buffer is only ever read, never modified.
func DecodeIndexed(data []byte) (*IndexedImage, error) {
	hdr, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	sd, err := ParseScreenDescriptor(data)
	if err != nil {
		return nil, err
	}
	table, err := ExtractColorTable(data, sd)
	if err != nil {
		return nil, err
	}
	desc, err := FindImageDescriptor(data, sd)
	if err != nil {
		return nil, err
	}

	if desc.Offset+10 >= len(data) {
		return nil, errors.Wrap(ErrTruncatedStream, "missing minimum code size byte")
	}
	minCodeSize := data[desc.Offset+10]

	payload, err := assembleSubBlocks(data, desc.Offset+11)
	if err != nil {
		return nil, err
	}
	flat, err := decodeLZW(payload, minCodeSize, len(table))
	if err != nil {
		return nil, err
	}
	rows, err := buildGrid(flat, int(desc.Width))
	if err != nil {
		return nil, err
	}

	glog.V(1).Infof("decoded %s image: %d rows of %d colors", hdr.Signature, len(rows), desc.Width)
	return &IndexedImage{
		Header: hdr,
		Screen: sd,
		Table:  table,
		Desc:   desc,
		Rows:   rows,
	}, nil
}
