// Noise Explorer - interactive viewer for procedural noise textures.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/noisetex/internal/assets"
	"github.com/Faultbox/noisetex/internal/config"
	"github.com/Faultbox/noisetex/internal/engine/debug"
	"github.com/Faultbox/noisetex/internal/engine/ui"
	"github.com/Faultbox/noisetex/internal/explorer"
	"github.com/Faultbox/noisetex/internal/logger"
	"github.com/Faultbox/noisetex/pkg/heightmap"
)

// clearColor is the background behind the texture.
var clearColor = [4]float32{0.102, 0.110, 0.118, 1.0}

// notifyDuration is how long status messages stay on screen.
const notifyDuration = 3 * time.Second

func main() {
	runtime.LockOSThread()

	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Noise Explorer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	app, err := NewApp(cfg)
	if err != nil {
		logger.Error("failed to create explorer", zap.Error(err))
		os.Exit(1)
	}
	defer app.Close()

	app.Run()
	logger.Info("explorer closed normally")
}

// App is the explorer application state.
type App struct {
	cfg     *config.Config
	backend *ui.Backend
	sink    *imguiSink
	state   *explorer.State
	rng     *rand.Rand

	capture      *debug.Capture
	exportFormat heightmap.Format

	// exportPaths receives paths chosen in the save dialog, which runs on its
	// own goroutine; files are written on the render thread.
	exportPaths chan string

	statusMsg  string
	statusErr  bool
	statusTime time.Time
}

// NewApp creates the window and the explorer state.
func NewApp(cfg *config.Config) (*App, error) {
	noiseCfg, err := cfg.Noise.Build()
	if err != nil {
		return nil, err
	}
	norm, err := cfg.Texture.Normalizer()
	if err != nil {
		return nil, err
	}
	format, err := heightmap.ParseFormat(cfg.Export.Format)
	if err != nil {
		return nil, err
	}

	app := &App{
		cfg:          cfg,
		sink:         &imguiSink{},
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		capture:      debug.NewCapture(cfg.Export.Dir, "noise", format),
		exportFormat: format,
		exportPaths:  make(chan string, 1),
	}

	res := assets.NewResources(cfg.Resources.Dir)
	app.backend, err = ui.NewBackend(ui.Config{
		Title:      cfg.Window.Title,
		Width:      int32(cfg.Window.Width),
		Height:     int32(cfg.Window.Height),
		ClearColor: clearColor,
	}, res)
	if err != nil {
		return nil, err
	}

	app.state, err = explorer.New(cfg.Texture.Size, noiseCfg, norm,
		app.sink, logger.Named("explorer"))
	if err != nil {
		return nil, err
	}

	return app, nil
}

// Close releases GPU resources.
func (app *App) Close() {
	app.sink.Release()
}

// Run starts the main loop.
func (app *App) Run() {
	app.backend.Run(app.render)
}

// render is called each frame.
func (app *App) render() {
	select {
	case path := <-app.exportPaths:
		app.exportTo(path)
	default:
	}

	if ui.IsKeyPressed(imgui.KeyF12) {
		app.exportTimestamped()
	}

	if _, err := app.state.Update(); err != nil {
		app.notify(fmt.Sprintf("Invalid settings: %v", err), true)
	}

	workX, workY, workW, workH := app.backend.GetViewport()
	app.renderTexture(workX, workY, workW, workH)
	app.renderSettings(workX, workY)
	app.renderNotification(workX, workY, workW)
}

// notify shows a status message for notifyDuration.
func (app *App) notify(msg string, isErr bool) {
	app.statusMsg = msg
	app.statusErr = isErr
	app.statusTime = time.Now()
}

// renderTexture draws the noise texture centered in the work area, keeping
// it square.
func (app *App) renderTexture(x, y, w, h float32) {
	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoMove |
		imgui.WindowFlagsNoScrollbar | imgui.WindowFlagsNoBringToFrontOnFocus |
		imgui.WindowFlagsNoBackground | imgui.WindowFlagsNoSavedSettings

	imgui.SetNextWindowPos(imgui.NewVec2(x, y))
	imgui.SetNextWindowSize(imgui.NewVec2(w, h))
	if imgui.BeginV("##NoiseTexture", nil, flags) {
		if tex := app.sink.Texture(); tex != nil {
			// 0.9 of the shorter side, matching the quad used by hellonoise.
			side := 0.9 * min(w, h)
			imgui.SetCursorPos(imgui.NewVec2((w-side)/2, (h-side)/2))
			imgui.ImageWithBgV(
				tex.ID,
				imgui.NewVec2(side, side),
				imgui.NewVec2(0, 0),
				imgui.NewVec2(1, 1),
				imgui.NewVec4(0, 0, 0, 0),
				imgui.NewVec4(1, 1, 1, 1),
			)
		}
	}
	imgui.End()
}

// renderNotification shows the last status message in the top-right corner.
func (app *App) renderNotification(x, y, w float32) {
	if app.statusMsg == "" || time.Since(app.statusTime) >= notifyDuration {
		return
	}

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoFocusOnAppearing
	imgui.SetNextWindowPosV(imgui.NewVec2(x+w-10, y+10), imgui.CondAlways, imgui.NewVec2(1, 0))
	imgui.SetNextWindowBgAlpha(0.85)
	if imgui.BeginV("##Notify", nil, flags) {
		if app.statusErr {
			imgui.TextColored(imgui.NewVec4(1, 0.4, 0.4, 1), app.statusMsg)
		} else {
			imgui.Text(app.statusMsg)
		}
	}
	imgui.End()
}
