// Package main is the meshforge scene viewer: it builds the configured
// shapes, uploads them and draws the scene with switchable cameras.
package main

import (
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshforge/cmd/meshview/shaders"
	"github.com/Faultbox/meshforge/internal/config"
	"github.com/Faultbox/meshforge/internal/engine/camera"
	"github.com/Faultbox/meshforge/internal/engine/debug"
	"github.com/Faultbox/meshforge/internal/engine/input"
	"github.com/Faultbox/meshforge/internal/engine/renderer"
	"github.com/Faultbox/meshforge/internal/engine/scene"
	"github.com/Faultbox/meshforge/internal/engine/shapes"
	"github.com/Faultbox/meshforge/internal/engine/window"
	"github.com/Faultbox/meshforge/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== meshview ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	s, err := scene.Load(cfg.Assets.Scene)
	if err != nil {
		logger.Fatal("failed to load scene", zap.String("path", cfg.Assets.Scene), zap.Error(err))
	}

	win, err := window.New(window.Config{
		Title:      cfg.Graphics.Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		logger.Fatal("failed to create window", zap.Error(err))
	}
	defer win.Close()

	width, height := win.DrawableSize()
	r, err := renderer.New(renderer.Config{Width: width, Height: height}, map[string]renderer.ShaderSource{
		scene.ProgramPhong:   {Vertex: shaders.PhongVertexShader, Fragment: shaders.PhongFragmentShader},
		scene.ProgramGlass:   {Vertex: shaders.PhongVertexShader, Fragment: shaders.GlassFragmentShader},
		scene.ProgramTexture: {Vertex: shaders.TextureVertexShader, Fragment: shaders.TextureFragmentShader},
	})
	if err != nil {
		logger.Fatal("failed to create renderer", zap.Error(err))
	}
	defer r.Close()

	catalog := shapes.FromConfig(cfg.Assets)
	if err := r.LoadScene(s, catalog, cfg.Assets.TexturePath); err != nil {
		logger.Fatal("failed to load scene assets", zap.Error(err))
	}

	rig := camera.DefaultRig(float32(cfg.Graphics.Width) / float32(cfg.Graphics.Height))
	capture := debug.NewCapturer(cfg.Export.Dir, "meshview")
	run(win, r, s, rig, capture, cfg.Graphics)

	logger.Info("viewer closed normally")
}

// run is the event/draw loop. Frames are drawn only after something
// changed.
func run(win *window.Window, r *renderer.Renderer, s *scene.Scene, rig *camera.Rig, capture *debug.Capturer, gfx config.GraphicsConfig) {
	in := input.New()
	dirty := true

	var frameDelay uint32
	if gfx.FPSLimit > 0 {
		frameDelay = uint32(1000 / gfx.FPSLimit)
	}

	for {
		start := sdl.GetTicks()

		if in.Update() {
			return
		}

		if size, ok := in.Resized(); ok && size.Height > 0 {
			w, h := win.DrawableSize()
			r.Resize(w, h)
			rig.SetAspect(float32(size.Width) / float32(size.Height))
			dirty = true
		}

		for _, a := range in.Actions() {
			logger.Debug("action", zap.Stringer("action", a))
			if i, ok := a.CameraIndex(); ok && rig.Select(i) {
				win.SetTitle(fmt.Sprintf("%s [camera %d]", gfx.Title, i+1))
			}
			switch a {
			case input.ActionAnimate:
				rig.Animating = true
			case input.ActionStop:
				rig.Animating = false
			case input.ActionReset:
				rig.Reset()
			case input.ActionScreenshot:
				// redraw so the back buffer holds the current frame
				r.Begin()
				r.DrawScene(s, rig.Current())
				pixels, w, h := r.ReadPixels()
				if name, err := capture.Save(pixels, w, h); err != nil {
					logger.Error("screenshot failed", zap.Error(err))
				} else {
					logger.Info("screenshot saved", zap.String("path", name))
				}
			case input.ActionQuit:
				return
			}
			dirty = true
		}

		if rig.Tick() {
			dirty = true
		}

		if dirty {
			dirty = false
			r.Begin()
			r.DrawScene(s, rig.Current())
			r.End()
			win.SwapBuffers()
		}

		if frameDelay > 0 {
			if elapsed := sdl.GetTicks() - start; elapsed < frameDelay {
				sdl.Delay(frameDelay - elapsed)
			}
		} else if !rig.Animating {
			// idle without spinning
			sdl.Delay(5)
		}
	}
}
