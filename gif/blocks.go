package gif

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// assembleSubBlocks concatenates the length-prefixed data sub-blocks
// starting at off. Each sub-block is a length byte followed by that
// many payload bytes; a zero length byte terminates the sequence.
func assembleSubBlocks(data []byte, off int) ([]byte, error) {
	var out []byte
	for {
		if off >= len(data) {
			return nil, errors.Wrap(ErrTruncatedStream, "no sub-block terminator before end of data")
		}
		n := int(data[off])
		if n == 0 {
			break
		}
		off++
		if off+n > len(data) {
			return nil, errors.Wrapf(ErrTruncatedStream, "%d-byte sub-block at offset %d overruns %d-byte buffer", n, off, len(data))
		}
		out = append(out, data[off:off+n]...)
		off += n
	}
	glog.V(2).Infof("assembled %d payload bytes from sub-blocks", len(out))
	return out, nil
}

// bitReader walks the assembled payload bit by bit, least significant
// bit of each byte first. The cursor only ever moves forward.
type bitReader struct {
	data []byte
	pos  int // in bits
}

// readBits returns the next n bits as an integer whose least
// significant bit is the first bit read.
func (r *bitReader) readBits(n uint) (uint32, error) {
	if r.pos+int(n) > 8*len(r.data) {
		return 0, errors.Wrapf(ErrTruncatedStream, "%d bits requested, %d left", n, 8*len(r.data)-r.pos)
	}
	var v uint32
	for i := uint(0); i < n; i++ {
		bit := r.data[r.pos>>3] >> (uint(r.pos) & 7) & 1
		v |= uint32(bit) << i
		r.pos++
	}
	return v, nil
}
