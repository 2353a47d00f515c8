package gif

// This file contains the LZW decompressor for the image data stream.
// The code table and bit cursor live for exactly one decode run and
// are not shared.

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// maxCodeWidth caps the code width at the 12 bits the GIF89a format
// allows. A stream long enough to hit the cap keeps reading 12-bit
// codes; the width never shrinks except on a Clear code.
const maxCodeWidth = 12

// codeTable maps LZW codes to the color index sequences they stand
// for. Entries 0..numColors-1 are the singleton colors, immediately
// followed by the Clear and End-of-Information sentinel positions;
// decoded entries grow past that. A Clear code truncates the table
// back to the sentinel prefix rather than reallocating it.
type codeTable struct {
	entries   [][]uint8
	numColors int
}

func newCodeTable(numColors int) *codeTable {
	t := &codeTable{
		numColors: numColors,
		entries:   make([][]uint8, numColors+2, 2*(numColors+2)),
	}
	for i := 0; i < numColors; i++ {
		t.entries[i] = []uint8{uint8(i)}
	}
	return t
}

func (t *codeTable) clearCode() int { return t.numColors }
func (t *codeTable) eoiCode() int   { return t.numColors + 1 }
func (t *codeTable) len() int       { return len(t.entries) }

func (t *codeTable) reset() {
	t.entries = t.entries[:t.numColors+2]
}

func (t *codeTable) add(seq []uint8) {
	t.entries = append(t.entries, seq)
}

// sequence returns the color indices a code stands for. Only valid for
// non-sentinel codes below len().
func (t *codeTable) sequence(code int) []uint8 {
	return t.entries[code]
}

// lzwDecoder is the state of one decompression run.
type lzwDecoder struct {
	bits  *bitReader
	table *codeTable

	codeWidth uint
	count     int  // codes read since the width last changed
	prev      int  // previously read code
	first     bool // next code is the first since a reset

	out []uint8
}

// decodeLZW decompresses the assembled sub-block payload into a flat
// sequence of color table indices. minCodeSize is the first byte of
// the image data region; numColors is the global color table entry
// count, which also fixes the Clear (numColors) and End-of-Information
// (numColors+1) code values.
func decodeLZW(payload []byte, minCodeSize byte, numColors int) ([]uint8, error) {
	d := &lzwDecoder{
		bits:      &bitReader{data: payload},
		table:     newCodeTable(numColors),
		codeWidth: uint(minCodeSize) + 1,
		first:     true,
	}

	for {
		code, err := d.bits.readBits(d.codeWidth)
		if err != nil {
			return nil, err
		}
		c := int(code)

		switch {
		case c == d.table.clearCode():
			d.table.reset()
			d.codeWidth = uint(minCodeSize) + 1
			d.count = 0
			d.first = true
			continue

		case c == d.table.eoiCode():
			glog.V(2).Infof("lzw: end of information after %d colors", len(d.out))
			return d.out, nil

		case c < d.table.len():
			seq := d.table.sequence(c)
			d.out = append(d.out, seq...)
			if d.first {
				d.first = false
			} else {
				d.table.add(appendColor(d.table.sequence(d.prev), seq[0]))
			}

		case c == d.table.len():
			// The KwKwK pattern: the one code value allowed to not be
			// in the table yet.
			if d.first {
				return nil, errors.Wrapf(ErrCorruptCodeStream, "code %d before any known code", c)
			}
			prev := d.table.sequence(d.prev)
			seq := appendColor(prev, prev[0])
			d.out = append(d.out, seq...)
			d.table.add(seq)

		default:
			return nil, errors.Wrapf(ErrCorruptCodeStream, "code %d outside table of %d entries", c, d.table.len())
		}

		d.count++
		d.prev = c
		if d.count == 1<<(d.codeWidth-1) && d.codeWidth < maxCodeWidth {
			d.codeWidth++
			d.count = 0
		}
	}
}

// appendColor returns seq plus one trailing color, in a fresh slice so
// that table entries never alias each other's backing arrays.
func appendColor(seq []uint8, c uint8) []uint8 {
	out := make([]uint8, 0, len(seq)+1)
	out = append(out, seq...)
	return append(out, c)
}
