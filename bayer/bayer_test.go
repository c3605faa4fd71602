package bayer

import (
	"testing"
)

var all = []Matrix{Bayer2, Bayer4, Bayer8}

func TestPermutation(t *testing.T) {
	for _, m := range all {
		n := m.Size()
		seen := make([]bool, n*n)
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				v := m.At(x, y)
				if v < 0 || v >= n*n {
					t.Fatalf("%dx%d: value %d out of range", n, n, v)
				}
				if seen[v] {
					t.Fatalf("%dx%d: value %d repeated", n, n, v)
				}
				seen[v] = true
			}
		}
	}
}

// Each matrix of size 2N is built from the one of size N:
// M2n[y][x] = 4*Mn[y mod N][x mod N] + B2[y/N][x/N].
func TestRecursive(t *testing.T) {
	pairs := []struct{ small, big Matrix }{
		{Bayer2, Bayer4},
		{Bayer4, Bayer8},
	}
	for _, p := range pairs {
		n := p.small.Size()
		for y := 0; y < 2*n; y++ {
			for x := 0; x < 2*n; x++ {
				expected := 4*p.small.At(x, y) + Bayer2.At(x/n, y/n)
				if actual := p.big.At(x, y); actual != expected {
					t.Errorf("%d: (%d,%d) expected(%d) != actual(%d)", 2*n, x, y, expected, actual)
				}
			}
		}
	}
}

func TestTiling(t *testing.T) {
	if Bayer4.At(5, 6) != Bayer4.At(1, 2) {
		t.Error("matrix does not tile")
	}
}

func TestThreshold(t *testing.T) {
	if th := Bayer2.Threshold(0, 0); th != 31.875 {
		t.Errorf("unexpected threshold %v", th)
	}
	if th := Bayer2.Threshold(0, 1); th != 3.5*255/4 {
		t.Errorf("unexpected threshold %v", th)
	}
}

func TestForSize(t *testing.T) {
	for _, n := range []int{2, 4, 8} {
		m, ok := ForSize(n)
		if !ok || m.Size() != n {
			t.Errorf("ForSize(%d) failed", n)
		}
	}
	if _, ok := ForSize(3); ok {
		t.Error("expected no 3x3 matrix")
	}
}
