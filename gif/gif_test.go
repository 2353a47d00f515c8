package gif

import (
	"bytes"
	"testing"

	"badc0de.net/pkg/go-gif/ttesting"
)

// testGIF builds a minimal 2x2 four-color file: a global color table
// of 4 entries and a single data sub-block encoding Clear, 0, 1, 2, 3,
// EOI at a minimum code size of 2.
func testGIF() []byte {
	var b bytes.Buffer
	b.WriteString("GIF89a")
	b.Write([]byte{2, 0, 2, 0}) // logical screen 2x2
	b.WriteByte(0xA1)           // global table present, size exponent 1
	b.Write([]byte{0, 0})       // background index, aspect ratio
	b.Write([]byte{
		0x00, 0x00, 0x00, // 0: black
		0xff, 0x00, 0x00, // 1: red
		0x00, 0xff, 0x00, // 2: green
		0x00, 0x00, 0xff, // 3: blue
	})
	b.WriteByte(0x2C)                       // image separator
	b.Write([]byte{0, 0, 0, 0, 2, 0, 2, 0}) // left, top, 2x2
	b.WriteByte(0x00)                       // packed fields
	b.WriteByte(2)                          // minimum code size
	b.Write([]byte{3, 0x44, 0xB4, 0x02})    // one sub-block
	b.WriteByte(0)                          // block terminator
	b.WriteByte(0x3B)                       // trailer
	return b.Bytes()
}

func TestParseHeader(t *testing.T) {
	h, err := ParseHeader(testGIF())
	if err != nil {
		t.Fatalf("ParseHeader: %s", err)
	}
	if h.Signature != "GIF89a" {
		t.Errorf("signature: got %q; want %q", h.Signature, "GIF89a")
	}
}

func TestParseHeaderShortBuffer(t *testing.T) {
	_, err := ParseHeader(testGIF()[:12])
	ttesting.AssertErrorIs(t, "short buffer", err, ErrMalformedHeader)
}

func TestParseHeaderNonASCII(t *testing.T) {
	data := testGIF()
	data[5] = 0xFF
	_, err := ParseHeader(data)
	ttesting.AssertErrorIs(t, "non-ascii signature", err, ErrMalformedHeader)
}

func TestParseScreenDescriptor(t *testing.T) {
	sd, err := ParseScreenDescriptor(testGIF())
	if err != nil {
		t.Fatalf("ParseScreenDescriptor: %s", err)
	}
	ttesting.AssertEqualUint16(t, "width", sd.Width, 2)
	ttesting.AssertEqualUint16(t, "height", sd.Height, 2)
	ttesting.AssertEqualBool(t, "global color table", sd.GlobalColorTable, true)
	ttesting.AssertEqualInt(t, "color resolution", int(sd.ColorResolution), 2)
	ttesting.AssertEqualBool(t, "sort", sd.Sort, false)
	ttesting.AssertEqualInt(t, "size exponent", int(sd.SizeExponent), 1)
	ttesting.AssertEqualInt(t, "table byte length", sd.ColorTableByteLen(), 12)
}

func TestExtractColorTable(t *testing.T) {
	data := testGIF()
	sd, err := ParseScreenDescriptor(data)
	if err != nil {
		t.Fatalf("ParseScreenDescriptor: %s", err)
	}
	table, err := ExtractColorTable(data, sd)
	if err != nil {
		t.Fatalf("ExtractColorTable: %s", err)
	}
	ttesting.AssertEqualInt(t, "entries", len(table), 4)
	if table[1] != (RGB{R: 0xff}) {
		t.Errorf("entry 1: got %+v; want pure red", table[1])
	}
	if table[3] != (RGB{B: 0xff}) {
		t.Errorf("entry 3: got %+v; want pure blue", table[3])
	}
}

func TestExtractColorTableTruncated(t *testing.T) {
	data := testGIF()[:20] // header plus a fragment of the table
	sd, err := ParseScreenDescriptor(data)
	if err != nil {
		t.Fatalf("ParseScreenDescriptor: %s", err)
	}
	_, err = ExtractColorTable(data, sd)
	ttesting.AssertErrorIs(t, "truncated table", err, ErrInvalidColorTableSize)
}

func TestFindImageDescriptor(t *testing.T) {
	data := testGIF()
	sd, err := ParseScreenDescriptor(data)
	if err != nil {
		t.Fatalf("ParseScreenDescriptor: %s", err)
	}
	d, err := FindImageDescriptor(data, sd)
	if err != nil {
		t.Fatalf("FindImageDescriptor: %s", err)
	}
	ttesting.AssertEqualInt(t, "offset", d.Offset, 25)
	ttesting.AssertEqualUint16(t, "left", d.Left, 0)
	ttesting.AssertEqualUint16(t, "top", d.Top, 0)
	ttesting.AssertEqualUint16(t, "width", d.Width, 2)
	ttesting.AssertEqualUint16(t, "height", d.Height, 2)

	// A zero packed byte means every sub-field is zero.
	ttesting.AssertEqualBool(t, "local color table", d.LocalColorTable, false)
	ttesting.AssertEqualBool(t, "interlace", d.Interlace, false)
	ttesting.AssertEqualBool(t, "sort", d.Sort, false)
	ttesting.AssertEqualInt(t, "reserved", int(d.Reserved), 0)
	ttesting.AssertEqualInt(t, "size exponent", int(d.SizeExponent), 0)
}

func TestFindImageDescriptorPackedFields(t *testing.T) {
	data := testGIF()
	data[25+9] = 0xB5 // 1011 0101
	sd, err := ParseScreenDescriptor(data)
	if err != nil {
		t.Fatalf("ParseScreenDescriptor: %s", err)
	}
	d, err := FindImageDescriptor(data, sd)
	if err != nil {
		t.Fatalf("FindImageDescriptor: %s", err)
	}
	ttesting.AssertEqualBool(t, "local color table", d.LocalColorTable, true)
	ttesting.AssertEqualBool(t, "interlace", d.Interlace, false)
	ttesting.AssertEqualBool(t, "sort", d.Sort, true)
	ttesting.AssertEqualInt(t, "reserved", int(d.Reserved), 3)
	ttesting.AssertEqualInt(t, "size exponent", int(d.SizeExponent), 2)
}

func TestFindImageDescriptorMissing(t *testing.T) {
	data := testGIF()
	data = data[:25] // cut the file just before the separator
	sd, err := ParseScreenDescriptor(data)
	if err != nil {
		t.Fatalf("ParseScreenDescriptor: %s", err)
	}
	_, err = FindImageDescriptor(data, sd)
	ttesting.AssertErrorIs(t, "no separator", err, ErrImageDescriptorNotFound)
}

func TestDecodeIndexed(t *testing.T) {
	m, err := DecodeIndexed(testGIF())
	if err != nil {
		t.Fatalf("DecodeIndexed: %s", err)
	}

	want := [][]uint8{{0, 1}, {2, 3}}
	if len(m.Rows) != len(want) {
		t.Fatalf("rows: got %d; want %d", len(m.Rows), len(want))
	}
	for y, row := range want {
		if !bytes.Equal(m.Rows[y], row) {
			t.Errorf("row %d: got %v; want %v", y, m.Rows[y], row)
		}
	}
}

func TestDecodeIndexedShortBuffer(t *testing.T) {
	_, err := DecodeIndexed([]byte("GIF89a"))
	ttesting.AssertErrorIs(t, "short buffer", err, ErrMalformedHeader)
}

func TestDecodeIndexedTruncatedSubBlock(t *testing.T) {
	data := testGIF()
	data = data[:len(data)-3] // cut payload bytes, terminator and trailer
	_, err := DecodeIndexed(data)
	ttesting.AssertErrorIs(t, "truncated sub-block", err, ErrTruncatedStream)
}

func TestDecodeIndexedDimensionMismatch(t *testing.T) {
	data := testGIF()
	data[25+5] = 3 // declare width 3; four colors no longer fill rows
	_, err := DecodeIndexed(data)
	ttesting.AssertErrorIs(t, "partial trailing row", err, ErrDimensionMismatch)
}

func TestDecode(t *testing.T) {
	img, err := Decode(bytes.NewReader(testGIF()))
	if err != nil {
		t.Fatalf("Decode: %s", err)
	}
	bounds := img.Bounds()
	ttesting.AssertEqualInt(t, "width", bounds.Dx(), 2)
	ttesting.AssertEqualInt(t, "height", bounds.Dy(), 2)

	r, g, b, _ := img.At(1, 0).RGBA()
	if r != 0xffff || g != 0 || b != 0 {
		t.Errorf("pixel 1,0: got %04x %04x %04x; want pure red", r, g, b)
	}
}

func TestDecodeConfig(t *testing.T) {
	cfg, err := DecodeConfig(bytes.NewReader(testGIF()))
	if err != nil {
		t.Fatalf("DecodeConfig: %s", err)
	}
	ttesting.AssertEqualInt(t, "width", cfg.Width, 2)
	ttesting.AssertEqualInt(t, "height", cfg.Height, 2)
}
