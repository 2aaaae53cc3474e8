package heightmap

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

func TestToImage(t *testing.T) {
	rgb := []byte{
		0, 0, 0, 64, 64, 64,
		128, 128, 128, 255, 255, 255,
	}

	img, err := ToImage(rgb, 2)
	if err != nil {
		t.Fatalf("ToImage failed: %v", err)
	}

	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Fatalf("expected 2x2 image, got %v", b)
	}

	tests := []struct {
		x, y int
		want uint8
	}{
		{0, 0, 0},
		{1, 0, 64},
		{0, 1, 128},
		{1, 1, 255},
	}
	for _, tt := range tests {
		c := img.RGBAAt(tt.x, tt.y)
		if c.R != tt.want || c.G != tt.want || c.B != tt.want || c.A != 255 {
			t.Errorf("pixel (%d, %d) = %v, want gray %d", tt.x, tt.y, c, tt.want)
		}
	}
}

func TestToImageSizeMismatch(t *testing.T) {
	if _, err := ToImage(make([]byte, 10), 2); err == nil {
		t.Error("expected error for buffer size mismatch")
	}
	if _, err := ToImage(nil, 0); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestEncode(t *testing.T) {
	rgb := make([]byte, 4*4*BytesPerPixel)
	for i := range rgb {
		rgb[i] = byte(i * 5)
	}
	img, err := ToImage(rgb, 4)
	if err != nil {
		t.Fatalf("ToImage failed: %v", err)
	}

	decoders := map[Format]func(*bytes.Reader) (image.Image, error){
		FormatPNG: func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) },
		FormatBMP: func(r *bytes.Reader) (image.Image, error) { return bmp.Decode(r) },
	}

	for format, decode := range decoders {
		t.Run(format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, img, format); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			decoded, err := decode(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if decoded.Bounds() != img.Bounds() {
				t.Fatalf("decoded bounds %v, want %v", decoded.Bounds(), img.Bounds())
			}

			r, _, _, _ := decoded.At(1, 2).RGBA()
			wr, _, _, _ := img.At(1, 2).RGBA()
			if r != wr {
				t.Errorf("pixel (1, 2) red = %d, want %d", r, wr)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		ok   bool
	}{
		{"png", FormatPNG, true},
		{".BMP", FormatBMP, true},
		{"", FormatPNG, true},
		{"jpeg", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.ok && (err != nil || got != tt.want) {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
		if !tt.ok && err == nil {
			t.Errorf("ParseFormat(%q) expected error", tt.in)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	if got := FormatFromPath("out/noise.bmp", FormatPNG); got != FormatBMP {
		t.Errorf("FormatFromPath(.bmp) = %v, want bmp", got)
	}
	if got := FormatFromPath("out/noise", FormatBMP); got != FormatBMP {
		t.Errorf("FormatFromPath(no ext) = %v, want default bmp", got)
	}
	if got := FormatFromPath("out/noise.tiff", FormatPNG); got != FormatPNG {
		t.Errorf("FormatFromPath(.tiff) = %v, want default png", got)
	}
}
