package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/image/bmp"

	"github.com/Faultbox/noisetex/pkg/heightmap"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
}

func TestGenerateFilename(t *testing.T) {
	c := NewCapture("out", "noise", heightmap.FormatBMP)
	c.now = fixedClock

	want := filepath.Join("out", "noise_2024-03-09_14-05-07.bmp")
	if got := c.GenerateFilename(); got != want {
		t.Errorf("GenerateFilename = %q, want %q", got, want)
	}

	c.SetOutputDir("")
	if got := c.GenerateFilename(); got != "noise_2024-03-09_14-05-07.bmp" {
		t.Errorf("GenerateFilename without dir = %q", got)
	}
}

func TestCaptureRGBWritesPNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	c := NewCapture(dir, "noise", heightmap.FormatPNG)
	c.now = fixedClock

	rgb := []byte{
		0, 0, 0, 255, 255, 255,
		128, 128, 128, 64, 64, 64,
	}
	path, err := c.CaptureRGB(rgb, 2)
	if err != nil {
		t.Fatalf("CaptureRGB failed: %v", err)
	}
	if !strings.HasSuffix(path, ".png") {
		t.Errorf("expected .png path, got %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("decoded size = %v", b)
	}
	r, _, _, _ := img.At(1, 0).RGBA()
	if r>>8 != 255 {
		t.Errorf("pixel (1,0) red = %d, want 255", r>>8)
	}
}

func TestCaptureRGBWritesBMP(t *testing.T) {
	c := NewCapture(t.TempDir(), "noise", heightmap.FormatBMP)

	path, err := c.CaptureRGB([]byte{10, 10, 10}, 1)
	if err != nil {
		t.Fatalf("CaptureRGB failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	g, _, _, _ := img.At(0, 0).RGBA()
	if g>>8 != 10 {
		t.Errorf("pixel value = %d, want 10", g>>8)
	}
}

func TestCaptureRGBRejectsBadBuffer(t *testing.T) {
	c := NewCapture(t.TempDir(), "noise", heightmap.FormatPNG)
	if _, err := c.CaptureRGB([]byte{1, 2}, 1); err == nil {
		t.Error("expected error for short buffer")
	}
}
