package dither

import (
	"errors"
	"fmt"
	"strings"
)

// Algorithm selects a halftoning strategy.
type Algorithm int

const (
	Threshold Algorithm = iota
	FloydSteinberg
	Atkinson
	Ordered2
	Ordered4
	Ordered8
	Random

	algorithmCount // sentinel for validation
)

var ErrUnknownAlgorithm = errors.New("dither: unknown algorithm")

var algorithmNames = [algorithmCount]string{
	Threshold:      "threshold",
	FloydSteinberg: "floyd-steinberg",
	Atkinson:       "atkinson",
	Ordered2:       "ordered-2",
	Ordered4:       "ordered-4",
	Ordered8:       "ordered-8",
	Random:         "random",
}

func (a Algorithm) String() string {
	if a.Valid() {
		return algorithmNames[a]
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Valid reports whether a is a known algorithm.
func (a Algorithm) Valid() bool {
	return a >= 0 && a < algorithmCount
}

// ParseAlgorithm looks up an algorithm by its name. Matching ignores case.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range algorithmNames {
		if n == name {
			return Algorithm(a), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Algorithms returns every algorithm in declaration order.
func Algorithms() []Algorithm {
	all := make([]Algorithm, algorithmCount)
	for i := range all {
		all[i] = Algorithm(i)
	}
	return all
}
