package screen

import (
	"image/color"
	"math"
	"sort"
)

// Palette is a two-tone color scheme. Foreground is drawn for set mask
// pixels and Background for the rest.
type Palette struct {
	Name       string
	Foreground color.RGBA
	Background color.RGBA
}

// DefaultPalette is the name used when a lookup fails.
const DefaultPalette = "black-white"

var palettes = map[string]Palette{}

func init() {
	for _, p := range []struct{ name, fg, bg string }{
		{"black-white", "#ffffff", "#000000"},
		{"white-black", "#000000", "#ffffff"},
		{"gameboy", "#9bbc0f", "#0f380f"},
		{"amber", "#ffb000", "#1e1200"},
		{"green-phosphor", "#33ff66", "#0b1a0f"},
		{"sepia", "#f1e3c6", "#3e2a17"},
		{"blueprint", "#eaf2ff", "#1f4e9c"},
		{"ega-cyan", "#55ffff", "#0000aa"},
		{"newsprint", "#1c1c1c", "#f2efe6"},
	} {
		palettes[p.name] = Palette{
			Name:       p.name,
			Foreground: mustHex(p.fg),
			Background: mustHex(p.bg),
		}
	}
}

// Lookup returns the named palette.
func Lookup(name string) (Palette, bool) {
	p, ok := palettes[name]
	return p, ok
}

// LookupOrDefault returns the named palette, or the default one and false
// if name is unknown.
func LookupOrDefault(name string) (Palette, bool) {
	if p, ok := palettes[name]; ok {
		return p, true
	}
	return palettes[DefaultPalette], false
}

// Names returns the known palette names in sorted order.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Colors returns the palette as an image palette: background at index 0,
// foreground at index 1.
func (p Palette) Colors() color.Palette {
	return color.Palette{p.Background, p.Foreground}
}

// Contrast is the difference in CIE lightness between the two colors, in
// [0, 1].
func (p Palette) Contrast() float64 {
	return math.Abs(lightness(p.Foreground) - lightness(p.Background))
}
