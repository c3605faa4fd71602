package mask

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/32bitkid/bitreader"
)

var (
	ErrShortData = errors.New("mask: short data")
	ErrBadHeader = errors.New("mask: bad header")
)

var magic = [4]byte{'H', 'T', 'M', '1'}

// maxPixels bounds the allocation made when decoding an untrusted header.
const maxPixels = 1 << 28

type header struct {
	Magic  [4]byte
	Width  uint32
	Height uint32
}

func bytesPerRow(w int) int { return (w + 7) >> 3 }

// Pack returns the mask with eight pixels per byte, most significant bit
// first. Each row starts on a byte boundary.
func (m *Mask) Pack() []byte {
	bpr := bytesPerRow(m.Width)
	out := make([]byte, bpr*m.Height)
	for y := 0; y < m.Height; y++ {
		row := m.Pix[y*m.Width : (y+1)*m.Width]
		dst := out[y*bpr : (y+1)*bpr]
		for x, v := range row {
			if v != 0 {
				dst[x>>3] |= 0x80 >> uint(x&7)
			}
		}
	}
	return out
}

// Unpack reads a w×h mask in the layout produced by Pack.
func Unpack(r io.Reader, w, h int) (*Mask, error) {
	if w < 0 || h < 0 {
		return nil, fmt.Errorf("mask: invalid size %dx%d", w, h)
	}

	m := New(w, h)
	br := bitreader.NewReader(r)
	padding := uint(bytesPerRow(w)*8 - w)

	for y := 0; y < h; y++ {
		row := m.Pix[y*w : (y+1)*w]
		for x := range row {
			bit, err := br.Read1()
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %v", ErrShortData, y, err)
			}
			if bit {
				row[x] = 1
			}
		}
		if padding > 0 {
			if _, err := br.Read8(padding); err != nil {
				return nil, fmt.Errorf("%w: row %d: %v", ErrShortData, y, err)
			}
		}
	}

	return m, nil
}

// Encode writes a small header followed by the packed mask.
func Encode(w io.Writer, m *Mask) error {
	h := header{
		Magic:  magic,
		Width:  uint32(m.Width),
		Height: uint32(m.Height),
	}
	if err := binary.Write(w, binary.LittleEndian, &h); err != nil {
		return err
	}
	_, err := w.Write(m.Pack())
	return err
}

// Decode reads a mask written by Encode.
func Decode(r io.Reader) (*Mask, error) {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if h.Magic != magic {
		return nil, fmt.Errorf("%w: magic %q", ErrBadHeader, h.Magic[:])
	}
	if uint64(h.Width)*uint64(h.Height) > maxPixels {
		return nil, fmt.Errorf("%w: %dx%d is too large", ErrBadHeader, h.Width, h.Height)
	}
	return Unpack(r, int(h.Width), int(h.Height))
}
