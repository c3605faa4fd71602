// Command halftone dithers an image file into a two-tone image file.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strings"

	"github.com/32bitkid/halftone"
	"github.com/32bitkid/halftone/dither"
	"github.com/32bitkid/halftone/screen"
)

func main() {
	var (
		in         = flag.String("in", "", "input image (png, jpeg, gif, bmp, tiff, webp)")
		out        = flag.String("out", "out.png", "output image (png, gif, bmp, tiff)")
		algorithm  = flag.String("algorithm", dither.FloydSteinberg.String(), "dither algorithm")
		palette    = flag.String("palette", screen.DefaultPalette, "two-color palette")
		block      = flag.Int("block", 1, "block size (1, 2, 4, 8, 16, 32)")
		brightness = flag.Int("brightness", 0, "brightness (-100..100)")
		contrast   = flag.Int("contrast", 0, "contrast (-100..100)")
		gamma      = flag.Float64("gamma", 1, "gamma (0.2..3.0)")
		invert     = flag.Bool("invert", false, "invert intensities")
		threshold  = flag.Int("threshold", 128, "threshold algorithm cut-off (0..255)")
		seed       = flag.Int64("seed", 0, "seed for the random algorithm; 0 picks none")
		maskOut    = flag.String("mask", "", "also write the packed mask here; a .zst suffix compresses it")
		list       = flag.Bool("list", false, "list algorithms and palettes")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	halftone.SetLogger(log)

	if *list {
		printList(os.Stdout)
		return
	}

	alg, err := dither.ParseAlgorithm(*algorithm)
	if err != nil {
		log.Error("bad algorithm", "err", err)
		os.Exit(2)
	}
	if *in == "" {
		log.Error("missing -in")
		flag.Usage()
		os.Exit(2)
	}

	p := halftone.Params{
		Algorithm:  alg,
		Palette:    *palette,
		BlockSize:  *block,
		Brightness: *brightness,
		Contrast:   *contrast,
		Gamma:      *gamma,
		Invert:     *invert,
		Threshold:  *threshold,
	}
	if *seed != 0 {
		p.Rand = rand.New(rand.NewSource(*seed))
	}

	if err := run(*in, *out, *maskOut, p); err != nil {
		log.Error("halftone failed", "err", err)
		os.Exit(1)
	}
	log.Info("wrote image", "out", *out)
}

func run(in, out, maskOut string, p halftone.Params) error {
	img, err := readImage(in)
	if err != nil {
		return err
	}

	res, err := halftone.Process(img, p)
	if err != nil {
		return err
	}
	if res.Empty() {
		return fmt.Errorf("%s: image is empty", in)
	}

	if err := writeImage(out, res.Image); err != nil {
		return err
	}
	if maskOut != "" {
		return writeMask(maskOut, res.Mask)
	}
	return nil
}

func printList(w io.Writer) {
	var names []string
	for _, a := range dither.Algorithms() {
		names = append(names, a.String())
	}
	fmt.Fprintf(w, "algorithms: %s\n", strings.Join(names, ", "))
	fmt.Fprintln(w, "palettes:")
	for _, name := range screen.Names() {
		p, _ := screen.Lookup(name)
		fmt.Fprintf(w, "  %-16s contrast %.2f\n", name, p.Contrast())
	}
}
