package main

import (
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/32bitkid/halftone/mask"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

func readImage(fn string) (image.Image, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return img, nil
}

func encodeImage(w io.Writer, ext string, img *image.Paletted) error {
	switch strings.ToLower(ext) {
	case ".png", "":
		return png.Encode(w, img)
	case ".gif":
		return gif.Encode(w, img, nil)
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("unsupported output format %q", ext)
}

func writeImage(fn string, img *image.Paletted) error {
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	if err := encodeImage(f, filepath.Ext(fn), img); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", fn, err)
	}
	return f.Close()
}

func encodeMask(w io.Writer, compress bool, m *mask.Mask) error {
	if !compress {
		return mask.Encode(w, m)
	}
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if err := mask.Encode(enc, m); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

func writeMask(fn string, m *mask.Mask) error {
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	if err := encodeMask(f, strings.HasSuffix(fn, ".zst"), m); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", fn, err)
	}
	return f.Close()
}
