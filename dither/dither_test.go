package dither

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/32bitkid/halftone/bayer"
	"github.com/google/go-cmp/cmp"
)

func uniform(w, h int, v uint8) Gray {
	pix := make([]uint8, w*h)
	for i := range pix {
		pix[i] = v
	}
	return Gray{Width: w, Height: h, Pix: pix}
}

func ramp(w, h int) Gray {
	g := Gray{Width: w, Height: h, Pix: make([]uint8, w*h)}
	for i := range g.Pix {
		g.Pix[i] = uint8(i * 37 % 256)
	}
	return g
}

func TestParseAlgorithm(t *testing.T) {
	for _, a := range Algorithms() {
		parsed, err := ParseAlgorithm(a.String())
		if err != nil {
			t.Fatal(err)
		}
		if parsed != a {
			t.Errorf("expected(%v) != actual(%v)", a, parsed)
		}
	}
	if a, err := ParseAlgorithm(" Floyd-Steinberg "); err != nil || a != FloydSteinberg {
		t.Errorf("case-insensitive lookup failed: %v %v", a, err)
	}
	if _, err := ParseAlgorithm("stucki"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
	}
}

func TestAlgorithmValid(t *testing.T) {
	if len(Algorithms()) != 7 {
		t.Fatalf("expected 7 algorithms, got %d", len(Algorithms()))
	}
	if Algorithm(-1).Valid() || Algorithm(7).Valid() {
		t.Error("out of range algorithm reported valid")
	}
	if s := Algorithm(42).String(); s != "Algorithm(42)" {
		t.Errorf("unexpected %q", s)
	}
}

func TestApplyUnknown(t *testing.T) {
	if _, err := Apply(Algorithm(99), uniform(1, 1, 0), Options{}); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Fatalf("expected ErrUnknownAlgorithm, got %v", err)
	}
}

func TestApplyBadBuffer(t *testing.T) {
	cases := []Gray{
		{Width: 4, Height: 4, Pix: make([]uint8, 15)},
		{Width: -1, Height: 2},
		{Width: maxInt / 2, Height: 4},
	}
	for _, g := range cases {
		for _, a := range Algorithms() {
			if _, err := Apply(a, g, Options{}); !errors.Is(err, ErrBadBuffer) {
				t.Errorf("%v %dx%d: expected ErrBadBuffer, got %v", a, g.Width, g.Height, err)
			}
		}
	}
}

func TestApplyOrderedMatrices(t *testing.T) {
	g := ramp(16, 16)
	pairs := []struct {
		a   Algorithm
		mat bayer.Matrix
	}{
		{Ordered2, bayer.Bayer2},
		{Ordered4, bayer.Bayer4},
		{Ordered8, bayer.Bayer8},
	}
	for _, p := range pairs {
		m, err := Apply(p.a, g, Options{})
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(Ordered(g, p.mat), m); diff != "" {
			t.Errorf("%v: mismatch (-want +got):\n%s", p.a, diff)
		}
	}
}

func TestApplySizes(t *testing.T) {
	g := ramp(13, 9)
	for _, a := range Algorithms() {
		m, err := Apply(a, g, Options{Threshold: 128, Rand: rand.New(rand.NewSource(1))})
		if err != nil {
			t.Fatal(err)
		}
		if m.Width != 13 || m.Height != 9 || len(m.Pix) != len(g.Pix) {
			t.Errorf("%v: unexpected mask size %dx%d/%d", a, m.Width, m.Height, len(m.Pix))
		}
		for _, v := range m.Pix {
			if v > 1 {
				t.Fatalf("%v: non-binary value %d", a, v)
			}
		}
	}
}

func TestThreshold(t *testing.T) {
	g := Gray{Width: 2, Height: 2, Pix: []uint8{10, 200, 10, 200}}
	m := ThresholdMask(g, 128)
	if diff := cmp.Diff([]uint8{0, 1, 0, 1}, m.Pix); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	all := Gray{Width: 256, Height: 1, Pix: make([]uint8, 256)}
	for i := range all.Pix {
		all.Pix[i] = uint8(i)
	}
	for _, th := range []int{-5, 0, 1, 127, 128, 255, 256, 1000} {
		m := ThresholdMask(all, th)
		clamped := th
		if clamped < 0 {
			clamped = 0
		} else if clamped > 255 {
			clamped = 255
		}
		for i, v := range m.Pix {
			if (v == 1) != (i >= clamped) {
				t.Fatalf("T=%d: pixel %d has %d", th, i, v)
			}
		}
	}

	if n := ThresholdMask(all, 0).Count(); n != 256 {
		t.Errorf("T=0: expected all set, got %d", n)
	}
	if n := ThresholdMask(all, 256).Count(); n != 1 {
		t.Errorf("T=256: expected only 255 set, got %d", n)
	}
}

func TestOrderedSinglePixel(t *testing.T) {
	m := Ordered(Gray{Width: 1, Height: 1, Pix: []uint8{128}}, bayer.Bayer2)
	if !m.At(0, 0) {
		t.Error("expected foreground")
	}
	m = Ordered(Gray{Width: 1, Height: 1, Pix: []uint8{31}}, bayer.Bayer2)
	if m.At(0, 0) {
		t.Error("expected background")
	}
}

func TestOrderedCoverage(t *testing.T) {
	for _, mat := range []bayer.Matrix{bayer.Bayer2, bayer.Bayer4, bayer.Bayer8} {
		n := mat.Size()
		for g := 0; g < 256; g += 5 {
			below := 0
			for y := 0; y < n; y++ {
				for x := 0; x < n; x++ {
					if mat.Threshold(x, y) < float64(g) {
						below++
					}
				}
			}

			img := uniform(3*n, 2*n, uint8(g))
			m := Ordered(img, mat)
			if expected := below * 6; m.Count() != expected {
				t.Errorf("%dx%d g=%d: expected(%d) != actual(%d)", n, n, g, expected, m.Count())
			}
			if again := Ordered(img, mat); cmp.Diff(m, again) != "" {
				t.Fatalf("%dx%d g=%d: not reproducible", n, n, g)
			}
		}
	}
}

func TestRandom(t *testing.T) {
	g := uniform(100, 100, 128)
	a := RandomMask(g, rand.New(rand.NewSource(42)))
	b := RandomMask(g, rand.New(rand.NewSource(42)))
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same seed produced different masks:\n%s", diff)
	}

	ratio := float64(a.Count()) / float64(len(a.Pix))
	if math.Abs(ratio-128.0/255) > 0.03 {
		t.Errorf("unexpected fill ratio %v", ratio)
	}

	if n := RandomMask(uniform(50, 50, 255), nil).Count(); n != 2500 {
		t.Errorf("white: expected all set, got %d", n)
	}
}
