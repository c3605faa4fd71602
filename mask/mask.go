// Package mask implements the binary raster produced by dithering and a
// packed one-bit-per-pixel encoding of it.
package mask

// Mask is a row-major binary raster. Each Pix entry is 1 for foreground
// and 0 for background.
type Mask struct {
	Width  int
	Height int
	Pix    []uint8
}

func New(w, h int) *Mask {
	if w < 0 || h < 0 {
		w, h = 0, 0
	}
	return &Mask{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h),
	}
}

func (m *Mask) Empty() bool {
	return m == nil || m.Width == 0 || m.Height == 0
}

func (m *Mask) At(x, y int) bool {
	return m.Pix[y*m.Width+x] == 1
}

func (m *Mask) Set(x, y int, fg bool) {
	var v uint8
	if fg {
		v = 1
	}
	m.Pix[y*m.Width+x] = v
}

// Count returns the number of foreground pixels.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.Pix {
		n += int(v)
	}
	return n
}
