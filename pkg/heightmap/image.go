package heightmap

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// Format is an image encoding for exported textures.
type Format int

const (
	FormatPNG Format = iota
	FormatBMP
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	return "." + f.String()
}

// ParseFormat parses "png" or "bmp".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "png", "":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	}
	return 0, fmt.Errorf("unknown image format %q", s)
}

// FormatFromPath picks a format from a file extension, falling back to def.
func FormatFromPath(path string, def Format) Format {
	if f, err := ParseFormat(filepath.Ext(path)); err == nil && filepath.Ext(path) != "" {
		return f
	}
	return def
}

// ToImage converts a normalized RGB buffer of width x width pixels into an
// opaque RGBA image. Heightmap row x becomes image row x.
func ToImage(rgb []byte, width int) (*image.RGBA, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	if len(rgb) != width*width*BytesPerPixel {
		return nil, fmt.Errorf("buffer size mismatch: expected %d, got %d", width*width*BytesPerPixel, len(rgb))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, width))
	for p := 0; p < width*width; p++ {
		src := p * BytesPerPixel
		dst := p * 4
		img.Pix[dst+0] = rgb[src+0]
		img.Pix[dst+1] = rgb[src+1]
		img.Pix[dst+2] = rgb[src+2]
		img.Pix[dst+3] = 255
	}

	return img, nil
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	}
	return fmt.Errorf("unsupported image format %v", format)
}
