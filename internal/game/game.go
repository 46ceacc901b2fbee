// Package game implements the scene state, its controls and the main loop.
package game

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/invoker/internal/assets"
	"github.com/Faultbox/invoker/internal/config"
	"github.com/Faultbox/invoker/internal/engine/audio"
	"github.com/Faultbox/invoker/internal/engine/input"
	"github.com/Faultbox/invoker/internal/engine/renderer"
	"github.com/Faultbox/invoker/internal/engine/scene"
	"github.com/Faultbox/invoker/internal/engine/texture"
	"github.com/Faultbox/invoker/internal/engine/window"
	"github.com/Faultbox/invoker/internal/logger"
)

// Title is the window title.
const Title = "Invoker"

// Game is the main game instance.
type Game struct {
	config   *config.Config
	running  bool
	window   window.Window
	renderer *renderer.Renderer
	assets   *assets.Manager
	textures *texture.Loader
	scene    *scene.Scene
	audio    *audio.Manager

	tracker input.Tracker
	pointer input.Pointer
	state   *SceneState
}

// New creates the window and GL context and loads every scene resource.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing game",
		zap.String("backend", cfg.Graphics.Backend),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("assets", cfg.Assets.Root),
	)

	g := &Game{
		config: cfg,
		assets: assets.NewManager(cfg.Assets.Root),
		state:  NewSceneState(cfg),
	}

	// Fail before opening a window when required files are absent.
	if err := g.assets.Require(assets.Required(cfg.Assets.Strict)...); err != nil {
		return nil, err
	}

	var err error
	g.window, err = window.New(cfg.Graphics.Backend, window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer must be created AFTER the window, since the GL context must exist.
	width, height := g.window.FramebufferSize()
	g.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.textures = texture.NewLoader(g.assets, texture.GLUploader{}, cfg.Assets.Strict)
	g.scene, err = scene.Load(g.assets, g.textures, scene.Options{ShaderDir: cfg.Assets.ShaderDir})
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to load scene: %w", err)
	}

	g.audio = newAudio(cfg, g.assets)

	logger.Info("game initialized successfully")
	return g, nil
}

// newAudio returns nil when audio is disabled or the device is unavailable.
func newAudio(cfg *config.Config, mgr *assets.Manager) *audio.Manager {
	if !cfg.Audio.Enabled {
		return nil
	}
	a := audio.New()
	a.SetMasterVolume(cfg.Audio.MasterVolume)
	a.SetSFXVolume(cfg.Audio.SFXVolume)
	a.SetMuted(cfg.Audio.Muted)
	if a.LoadEffects(mgr) == 0 {
		logger.Debug("no sound effects found, audio disabled")
		return nil
	}
	if err := a.Init(); err != nil {
		logger.Warn("audio unavailable", zap.Error(err))
		return nil
	}
	return a
}

// Run starts the main game loop.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting game loop")

	for g.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		// 1. Input
		snap := g.window.PollInput()
		g.tracker.Advance(snap)
		if snap.Resized {
			g.renderer.Resize(snap.Width, snap.Height)
		}
		actions := ReadActions(&g.tracker, &g.pointer)
		if actions.Quit {
			g.running = false
			break
		}

		// 2. Update
		for _, e := range g.state.Update(dt, actions) {
			g.handleEvent(e)
		}

		// 3. Render
		frame, err := g.scene.Compose(g.state.View(g.renderer.AspectRatio()))
		if err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		g.renderer.Render(frame)

		// 4. Present
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Float32("dt_ms", dt*1000))
			if g.config.Game.ShowFPS {
				g.window.SetTitle(fmt.Sprintf("%s - %d fps", Title, frameCount))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (g *Game) handleEvent(e Event) {
	var effect audio.Effect
	switch e {
	case EventMeteorLaunched:
		logger.Debug("meteor launched")
		effect = audio.EffectMeteorLaunch
	case EventMeteorExpired:
		logger.Debug("meteor expired")
		effect = audio.EffectMeteorImpact
	case EventGhostToggled:
		logger.Debug("ghost walk toggled", zap.Bool("active", g.state.Ghost.Active))
		effect = audio.EffectGhostWalk
	default:
		return
	}

	if g.audio == nil {
		return
	}
	if err := g.audio.Play(effect); err != nil && !errors.Is(err, audio.ErrNotInitialized) {
		logger.Warn("failed to play sound", zap.Stringer("effect", effect), zap.Error(err))
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.audio != nil {
		g.audio.Close()
	}
	if g.scene != nil {
		g.scene.Close()
	}
	if g.textures != nil {
		g.textures.Release()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
	g.assets.Release()
}
