package main

import (
	"errors"
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/noisetex/internal/config"
	"github.com/Faultbox/noisetex/internal/engine/ui"
	"github.com/Faultbox/noisetex/internal/explorer"
	"github.com/Faultbox/noisetex/internal/logger"
	"github.com/Faultbox/noisetex/pkg/heightmap"
	"github.com/Faultbox/noisetex/pkg/noise"
)

const (
	minFrequency = 0.001
	maxFrequency = 1.0
	maxOctaves   = 10
)

var (
	kindNames     = noise.KindNames()
	distanceNames = noise.DistanceNames()
	returnNames   = noise.ReturnTypeNames()
	fractalNames  = noise.FractalNames()
)

// renderSettings draws the "Noise Settings" window. Edits are written
// straight into the explorer parameters and picked up by the next Update.
func (app *App) renderSettings(x, y float32) {
	imgui.SetNextWindowPosV(imgui.NewVec2(x+10, y+10), imgui.CondFirstUseEver, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(340, 0), imgui.CondFirstUseEver)
	if !imgui.BeginV("Noise Settings", nil, imgui.WindowFlagsAlwaysAutoResize) {
		imgui.End()
		return
	}

	p := app.state.Params()

	imgui.SliderFloatV("Frequency", &p.Frequency, minFrequency, maxFrequency, "%.3f", imgui.SliderFlagsLogarithmic)

	kind := int32(p.Kind)
	if ui.Combo("Noise Type", &kind, kindNames) {
		p.Kind = noise.Kind(kind)
	}

	imgui.InputInt("Seed", &p.Seed)
	if imgui.Button("Random Seed") {
		app.state.RandomizeSeed(app.rng)
	}

	if p.Kind.IsFractal() {
		imgui.Separator()
		renderFractalSettings(&p.Fractal)
	}
	if p.Kind == noise.Cellular {
		imgui.Separator()
		renderCellularSettings(&p.Cellular)
	}

	imgui.Separator()
	app.renderStats()

	imgui.Separator()
	if imgui.Button("Export") {
		app.exportTimestamped()
	}
	imgui.SameLine()
	if imgui.Button("Export As...") {
		app.openExportDialog()
	}
	imgui.SameLine()
	if imgui.Button("Save Settings") {
		app.saveSettings()
	}
	imgui.TextDisabled("F12 exports to " + app.cfg.Export.Dir)

	io := imgui.CurrentIO()
	if fps := io.Framerate(); fps > 0 {
		imgui.Text(fmt.Sprintf("Application average %.3f ms/frame (%.1f FPS)", 1000/fps, fps))
	}

	imgui.End()
}

func renderFractalSettings(f *explorer.FractalParams) {
	imgui.Text("Fractal")

	ft := int32(f.Type)
	if ui.Combo("Fractal Type", &ft, fractalNames) {
		f.Type = noise.FractalType(ft)
	}
	imgui.SliderIntV("Octaves", &f.Octaves, 1, maxOctaves, "%d", imgui.SliderFlagsNone)
	imgui.SliderFloatV("Lacunarity", &f.Lacunarity, 1.0, 4.0, "%.2f", imgui.SliderFlagsNone)
	imgui.SliderFloatV("Gain", &f.Gain, 0.0, 1.0, "%.2f", imgui.SliderFlagsNone)
}

func renderCellularSettings(c *explorer.CellularParams) {
	imgui.Text("Cellular")

	dist := int32(c.Distance)
	if ui.Combo("Distance Function", &dist, distanceNames) {
		c.Distance = noise.DistanceFunc(dist)
	}
	ret := int32(c.Return)
	if ui.Combo("Return Type", &ret, returnNames) {
		c.Return = noise.ReturnType(ret)
	}
	imgui.SliderFloatV("Jitter", &c.Jitter, 0.0, 1.0, "%.2f", imgui.SliderFlagsNone)

	if c.Return == noise.NoiseLookup {
		lk := int32(c.Lookup.Kind)
		if ui.Combo("Lookup Type", &lk, kindNames) {
			c.Lookup.Kind = noise.Kind(lk)
		}
		imgui.SliderFloatV("Lookup Frequency", &c.Lookup.Frequency, minFrequency, maxFrequency, "%.3f", imgui.SliderFlagsLogarithmic)
	}
}

// renderStats shows the range of the last generated heightmap.
func (app *App) renderStats() {
	st := app.state.Stats()
	imgui.Text(fmt.Sprintf("Size: %d x %d", app.state.Size(), app.state.Size()))
	imgui.Text(fmt.Sprintf("Range: [%.4f, %.4f]", st.Min, st.Max))
	imgui.Text(fmt.Sprintf("Output: [%d, %d]", st.OutMin, st.OutMax))

	err := app.state.LastError()
	switch {
	case errors.Is(err, heightmap.ErrDegenerateRange):
		imgui.TextColored(imgui.NewVec4(1, 0.8, 0, 1), "Flat heightmap (fallback gray)")
	case err != nil:
		imgui.TextColored(imgui.NewVec4(1, 0.4, 0.4, 1), err.Error())
	}
}

// saveSettings writes the current parameters to the user config file.
func (app *App) saveSettings() {
	app.cfg.Noise = noiseSettings(app.state.NoiseConfig())

	path, err := app.cfg.Save()
	if err != nil {
		logger.Error("failed to save settings", zap.Error(err))
		app.notify(fmt.Sprintf("Save failed: %v", err), true)
		return
	}
	logger.Info("saved settings", zap.String("path", path))
	app.notify("Saved settings to "+path, false)
}

// noiseSettings converts a sampler configuration back to the config file form.
func noiseSettings(cfg noise.Config) config.NoiseConfig {
	n := config.NoiseConfig{
		Kind:      cfg.Kind.String(),
		Seed:      cfg.Seed,
		Frequency: cfg.Frequency,
		Fractal: config.FractalConfig{
			Type:       cfg.Fractal.Type.String(),
			Octaves:    cfg.Fractal.Octaves,
			Lacunarity: cfg.Fractal.Lacunarity,
			Gain:       cfg.Fractal.Gain,
		},
		Cellular: config.CellularConfig{
			Distance: cfg.Cellular.Distance.String(),
			Return:   cfg.Cellular.Return.String(),
			Jitter:   cfg.Cellular.Jitter,
		},
	}
	if lk := cfg.Cellular.Lookup; lk != nil {
		n.Cellular.Lookup = config.LookupConfig{
			Kind:      lk.Kind.String(),
			Frequency: lk.Frequency,
		}
	}
	return n
}
