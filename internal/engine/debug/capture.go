// Package debug provides texture export utilities.
package debug

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/Faultbox/noisetex/pkg/heightmap"
)

// TimestampLayout is used in generated export file names.
const TimestampLayout = "2006-01-02_15-04-05"

// Capture writes images into a directory under timestamped names.
type Capture struct {
	outputDir string
	prefix    string
	format    heightmap.Format
	now       func() time.Time
}

// NewCapture creates a capture handler writing prefix_<timestamp>.<ext>
// files into outputDir.
func NewCapture(outputDir, prefix string, format heightmap.Format) *Capture {
	return &Capture{
		outputDir: outputDir,
		prefix:    prefix,
		format:    format,
		now:       time.Now,
	}
}

// SetOutputDir sets the output directory.
func (c *Capture) SetOutputDir(dir string) {
	c.outputDir = dir
}

// GenerateFilename returns the path the next capture will be written to.
func (c *Capture) GenerateFilename() string {
	filename := fmt.Sprintf("%s_%s%s", c.prefix, c.now().Format(TimestampLayout), c.format.Ext())
	if c.outputDir != "" {
		filename = filepath.Join(c.outputDir, filename)
	}
	return filename
}

// CaptureRGB writes a width x width RGB buffer and returns the file path.
func (c *Capture) CaptureRGB(rgb []byte, width int) (string, error) {
	img, err := heightmap.ToImage(rgb, width)
	if err != nil {
		return "", err
	}
	return c.CaptureFromImage(img)
}

// CaptureFromImage writes img under a generated name.
func (c *Capture) CaptureFromImage(img image.Image) (string, error) {
	if c.outputDir != "" {
		if err := os.MkdirAll(c.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := c.GenerateFilename()
	if err := WriteImage(filename, img, c.format); err != nil {
		return "", err
	}
	return filename, nil
}

// WriteImage encodes img to path in the given format.
func WriteImage(path string, img image.Image, format heightmap.Format) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	if err := heightmap.Encode(file, img, format); err != nil {
		file.Close()
		return fmt.Errorf("encoding %s: %w", format, err)
	}

	return file.Close()
}
