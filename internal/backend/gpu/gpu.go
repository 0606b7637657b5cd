//go:build gpu

// Package gpu implements the GPU-buffer Renderer of spec.md §4.5: a
// position buffer and a color buffer live on the device. Kernels run on
// the host against a shadow copy of the colors; the shadow is uploaded to
// the color buffer and read back with glGetBufferSubData at Export. No
// compute shader is compiled or dispatched, and no buffer is mapped. Grounded
// on the dispatch-per-effect / single-command-buffer-per-frame shape of
// original_source/sis-remapper/src/wgpu_corsair.rs, realized with
// github.com/go-gl/gl (the examples pack's only GPU compute surface; wgpu
// itself has no Go binding in the pack — see DESIGN.md).
//
// Build-tag gated behind "gpu" since it requires cgo and a current OpenGL
// 4.3+ context (SSBOs and glDispatchCompute are 4.3+), exactly like the
// teacher's own Pi-only ledcontrol package was gated to linux/arm.
package gpu

import (
	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/sis-remapper/ledcore/internal/colormath"
	"github.com/sis-remapper/ledcore/internal/framebuffer"
)

// gpuPos and gpuColor mirror the std430 layout a compute shader would read:
// vec2 position, vec4 color, both 16-byte aligned.
type gpuPos struct{ x, y, pad0, pad1 float32 }
type gpuColor struct{ r, g, b, a float32 }

// Renderer drives a position SSBO and a color SSBO through a current
// OpenGL context. The host shadow (shadow) is what kernels mutate: the
// host computes the frame and uploads it, just as the position buffer is
// uploaded once at Load. The device buffers are written at Load, Reset and
// Export and read back at Export; no GLSL kernel runs on them.
type Renderer struct {
	n int

	ids    []framebuffer.LedId
	posBuf uint32
	colBuf uint32

	shadow []colormath.Color
	pos    []framebuffer.Position
}

// New constructs an empty GPU back-end. Requires a current OpenGL context.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Load(specs []framebuffer.LedSpec) error {
	r.n = len(specs)
	r.ids = make([]framebuffer.LedId, r.n)
	r.pos = make([]framebuffer.Position, r.n)
	r.shadow = make([]colormath.Color, r.n)

	gpuPositions := make([]gpuPos, r.n)
	for i, s := range specs {
		r.ids[i] = s.Id
		r.pos[i] = s.Pos
		gpuPositions[i] = gpuPos{x: float32(s.Pos.X), y: float32(s.Pos.Y)}
	}

	if r.posBuf == 0 {
		gl.GenBuffers(1, &r.posBuf)
	}
	if r.colBuf == 0 {
		gl.GenBuffers(1, &r.colBuf)
	}

	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, r.posBuf)
	gl.BufferData(gl.SHADER_STORAGE_BUFFER, len(gpuPositions)*16, gl.Ptr(gpuPositions), gl.STATIC_DRAW)

	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, r.colBuf)
	gl.BufferData(gl.SHADER_STORAGE_BUFFER, r.n*16, nil, gl.DYNAMIC_COPY)

	r.Reset()
	return nil
}

func (r *Renderer) Reset() {
	for i := range r.shadow {
		r.shadow[i] = framebuffer.ResetColor
	}
	r.uploadColors()
}

func (r *Renderer) uploadColors() {
	gpuColors := make([]gpuColor, r.n)
	for i, c := range r.shadow {
		gpuColors[i] = gpuColor{r: c.R, g: c.G, b: c.B, a: c.A}
	}
	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, r.colBuf)
	gl.BufferSubData(gl.SHADER_STORAGE_BUFFER, 0, len(gpuColors)*16, gl.Ptr(gpuColors))
}

func (r *Renderer) Accessor() framebuffer.Accessor {
	return (*accessor)(r)
}

// Export dispatches nothing further (any Kernel calls already ran against
// the Accessor this tick); it uploads the shadow colors, reads the device
// color buffer back with glGetBufferSubData, and converts to 8-bit, per
// spec.md §4.3.
func (r *Renderer) Export() []framebuffer.LedColor {
	r.uploadColors()

	readback := make([]gpuColor, r.n)
	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, r.colBuf)
	gl.GetBufferSubData(gl.SHADER_STORAGE_BUFFER, 0, len(readback)*16, gl.Ptr(readback))

	out := make([]framebuffer.LedColor, r.n)
	for i, c := range readback {
		out[i] = framebuffer.LedColor{
			Id:    r.ids[i],
			Color: colormath.ToU8Color(colormath.Color{R: c.r, G: c.g, B: c.b, A: c.a}),
		}
	}
	return out
}

type accessor Renderer

func (a *accessor) Len() int { return a.n }

func (a *accessor) Position(i int) framebuffer.Position { return a.pos[i] }

func (a *accessor) Color(i int) colormath.Color { return a.shadow[i] }

func (a *accessor) SetColor(i int, c colormath.Color) { a.shadow[i] = c }

func (a *accessor) IndexOf(id framebuffer.LedId) (int, bool) {
	for i, got := range a.ids {
		if got == id {
			return i, true
		}
	}
	return 0, false
}
