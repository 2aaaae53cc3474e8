package main

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/noisetex/internal/engine/debug"
	"github.com/Faultbox/noisetex/internal/logger"
	"github.com/Faultbox/noisetex/pkg/heightmap"
)

// exportTimestamped writes the current texture into the export directory.
func (app *App) exportTimestamped() {
	buf := app.state.Buffer()
	if buf == nil {
		app.notify("Nothing to export yet", true)
		return
	}

	path, err := app.capture.CaptureRGB(buf, app.state.Size())
	if err != nil {
		logger.Error("export failed", zap.Error(err))
		app.notify(fmt.Sprintf("Export failed: %v", err), true)
		return
	}
	logger.Info("exported texture", zap.String("path", path))
	app.notify("Exported "+path, false)
}

// openExportDialog shows a native save dialog. The chosen path is handed back
// to the render thread through exportPaths.
func (app *App) openExportDialog() {
	startDir, _ := filepath.Abs(app.cfg.Export.Dir)
	go func() {
		filename, err := dialog.File().
			Filter("PNG Image", "png").
			Filter("BMP Image", "bmp").
			SetStartDir(startDir).
			Title("Export Noise Texture").
			Save()

		if err != nil {
			if err != dialog.ErrCancelled {
				logger.Error("file dialog error", zap.Error(err))
			}
			return
		}

		select {
		case app.exportPaths <- filename:
		default:
		}
	}()
}

// exportTo writes the current texture to path, picking the format from its
// extension.
func (app *App) exportTo(path string) {
	buf := app.state.Buffer()
	if buf == nil {
		app.notify("Nothing to export yet", true)
		return
	}

	format := heightmap.FormatFromPath(path, app.exportFormat)
	if filepath.Ext(path) == "" {
		path += format.Ext()
	}

	img, err := heightmap.ToImage(buf, app.state.Size())
	if err == nil {
		err = debug.WriteImage(path, img, format)
	}
	if err != nil {
		logger.Error("export failed", zap.String("path", path), zap.Error(err))
		app.notify(fmt.Sprintf("Export failed: %v", err), true)
		return
	}

	logger.Info("exported texture", zap.String("path", path), zap.Stringer("format", format))
	app.notify("Exported "+path, false)
}

// imguiSink uploads regenerated buffers as ImGui textures.
type imguiSink struct {
	tex *backend.Texture
}

// Upload replaces the displayed texture.
func (s *imguiSink) Upload(width, height int, rgb []byte) {
	var img *image.RGBA
	var err error
	if width != height {
		err = fmt.Errorf("non-square texture %dx%d", width, height)
	} else {
		img, err = heightmap.ToImage(rgb, width)
	}
	if err != nil {
		logger.Error("texture upload failed", zap.Error(err))
		return
	}

	s.Release()
	s.tex = backend.NewTextureFromRgba(img)
}

// Texture returns the current texture, or nil before the first upload.
func (s *imguiSink) Texture() *backend.Texture {
	return s.tex
}

// Release frees the current texture.
func (s *imguiSink) Release() {
	if s.tex != nil {
		s.tex.Release()
		s.tex = nil
	}
}
