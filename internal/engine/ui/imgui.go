// Package ui provides ImGui-based user interface components.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/noisetex/internal/assets"
	"github.com/Faultbox/noisetex/internal/logger"
)

// FontSize is the pixel size used for bundled fonts.
const FontSize = 16.0

// fontFiles are tried in order under the resource root.
var fontFiles = []string{
	"fonts/Roboto-Medium.ttf",
	"fonts/DroidSans.ttf",
}

// Config holds backend window settings.
type Config struct {
	Title  string
	Width  int32
	Height int32
	// ClearColor is the background behind all ImGui windows.
	ClearColor [4]float32
}

// Backend wraps the ImGui SDL backend.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	res     *assets.Resources
}

// NewBackend creates the ImGui window. res may be nil, in which case the
// default ImGui font is used.
func NewBackend(cfg Config, res *assets.Resources) (*Backend, error) {
	b := &Backend{res: res}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	// Fonts must be added once the context exists and before the first frame.
	b.backend.SetAfterCreateContextHook(func() {
		b.loadFont()
	})

	c := cfg.ClearColor
	b.backend.SetBgColor(imgui.NewVec4(c[0], c[1], c[2], c[3]))
	b.backend.CreateWindow(cfg.Title, int(cfg.Width), int(cfg.Height))

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}

	return b, nil
}

// loadFont adds the first bundled font found under the resource root.
func (b *Backend) loadFont() {
	if b.res == nil {
		return
	}

	fontPath := b.res.FirstExisting(fontFiles...)
	if fontPath == "" {
		logger.Debug("no bundled font found, using ImGui default",
			zap.String("root", b.res.Root))
		return
	}

	fontCfg := imgui.NewFontConfig()
	defer fontCfg.Destroy()

	imgui.CurrentIO().Fonts().AddFontFromFileTTFV(fontPath, FontSize, fontCfg, nil)
	logger.Info("loaded font", zap.String("path", fontPath))
}

// Run starts the main render loop.
func (b *Backend) Run(renderFunc func()) {
	b.backend.Run(renderFunc)
}

// GetViewport returns the main viewport work area.
func (b *Backend) GetViewport() (posX, posY, width, height float32) {
	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()
	return workPos.X, workPos.Y, workSize.X, workSize.Y
}

// Combo draws a combo box over items and reports whether the selection
// changed.
func Combo(label string, current *int32, items []string) bool {
	preview := ""
	if *current >= 0 && int(*current) < len(items) {
		preview = items[*current]
	}

	changed := false
	if imgui.BeginCombo(label, preview) {
		for i, item := range items {
			isSelected := int32(i) == *current
			if imgui.SelectableBoolV(item, isSelected, 0, imgui.NewVec2(0, 0)) {
				if !isSelected {
					*current = int32(i)
					changed = true
				}
			}
			if isSelected {
				imgui.SetItemDefaultFocus()
			}
		}
		imgui.EndCombo()
	}
	return changed
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}
