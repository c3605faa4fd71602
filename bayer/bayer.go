// Package bayer holds the fixed threshold matrices used for ordered
// dithering.
package bayer

// Matrix is a square N×N Bayer ordering. Every value in [0, N²) appears
// exactly once. The zero value is not usable; use one of Bayer2, Bayer4 or
// Bayer8.
type Matrix struct {
	n     int
	cells []uint8
}

var (
	Bayer2 = Matrix{n: 2, cells: []uint8{
		0, 2,
		3, 1,
	}}

	Bayer4 = Matrix{n: 4, cells: []uint8{
		0, 8, 2, 10,
		12, 4, 14, 6,
		3, 11, 1, 9,
		15, 7, 13, 5,
	}}

	Bayer8 = Matrix{n: 8, cells: []uint8{
		0, 32, 8, 40, 2, 34, 10, 42,
		48, 16, 56, 24, 50, 18, 58, 26,
		12, 44, 4, 36, 14, 46, 6, 38,
		60, 28, 52, 20, 62, 30, 54, 22,
		3, 35, 11, 43, 1, 33, 9, 41,
		51, 19, 59, 27, 49, 17, 57, 25,
		15, 47, 7, 39, 13, 45, 5, 37,
		63, 31, 55, 23, 61, 29, 53, 21,
	}}
)

// ForSize returns the matrix with the given side length.
func ForSize(n int) (Matrix, bool) {
	switch n {
	case 2:
		return Bayer2, true
	case 4:
		return Bayer4, true
	case 8:
		return Bayer8, true
	}
	return Matrix{}, false
}

func (m Matrix) Size() int { return m.n }

// At returns the matrix value for pixel (x, y). The matrix is tiled, so any
// non-negative coordinate is valid.
func (m Matrix) At(x, y int) int {
	return int(m.cells[(y%m.n)*m.n+x%m.n])
}

// Threshold returns the intensity that a pixel at (x, y) must exceed to be
// set: (M[y mod N][x mod N] + 0.5) * 255 / N².
func (m Matrix) Threshold(x, y int) float64 {
	return (float64(m.At(x, y)) + 0.5) * 255 / float64(m.n*m.n)
}
