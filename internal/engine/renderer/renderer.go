// Package renderer owns the OpenGL context state and executes ordered
// draw passes.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/invoker/internal/logger"
)

// ClearGray is the background gray level.
const ClearGray = 0.1

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer handles context setup, viewport and frame submission.
type Renderer struct {
	config  Config
	applier StateApplier
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.TEXTURE_CUBE_MAP_SEAMLESS)
	gl.StencilOp(gl.KEEP, gl.KEEP, gl.REPLACE)
	gl.ClearColor(ClearGray, ClearGray, ClearGray, 1.0)

	r := &Renderer{config: cfg, applier: GLApplier{}}
	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Resize updates the viewport to the framebuffer size.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("viewport resized", zap.Int("width", width), zap.Int("height", height))
}

// AspectRatio returns width/height of the current viewport.
func (r *Renderer) AspectRatio() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Render submits a built frame.
func (r *Renderer) Render(f *Frame) {
	Submit(f, r.applier)
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
}

// GLApplier issues the GL calls for each declared State.
type GLApplier struct{}

// Clear implements StateApplier.
func (GLApplier) Clear() {
	gl.StencilMask(0xFF)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
}

// Apply implements StateApplier.
func (GLApplier) Apply(s State) {
	switch s.Depth {
	case DepthLessEqual:
		gl.DepthFunc(gl.LEQUAL)
	default:
		gl.DepthFunc(gl.LESS)
	}

	switch s.Stencil.Func {
	case StencilWrite:
		gl.Enable(gl.STENCIL_TEST)
		gl.StencilOp(gl.KEEP, gl.KEEP, gl.REPLACE)
		gl.StencilFunc(gl.ALWAYS, s.Stencil.Ref, s.Stencil.ReadMask)
		gl.StencilMask(s.Stencil.WriteMask)
	case StencilNotEqual:
		gl.Enable(gl.STENCIL_TEST)
		gl.StencilFunc(gl.NOTEQUAL, s.Stencil.Ref, s.Stencil.ReadMask)
		gl.StencilMask(s.Stencil.WriteMask)
	default:
		gl.Disable(gl.STENCIL_TEST)
	}

	if s.Blend == BlendAlpha {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	} else {
		gl.Disable(gl.BLEND)
	}
}

// Reset implements StateApplier.
func (GLApplier) Reset() {
	gl.StencilMask(0xFF)
	gl.StencilFunc(gl.ALWAYS, 0, 0xFF)
	gl.Disable(gl.STENCIL_TEST)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
}
