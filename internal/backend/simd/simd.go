// Package simd implements a structure-of-arrays Renderer modelling the
// wide-SIMD back-end of spec.md §4.3/§4.5: positions packed 8-per-vector,
// colors packed 5-per-vector (plus one padding lane). The examples pack
// carries no Go vector-intrinsics library (see DESIGN.md), so lanes are
// plain fixed-size arrays walked with ordinary loops rather than actual CPU
// SIMD instructions — the layout is what's modelled here, not the
// instruction set.
package simd

import (
	"github.com/sis-remapper/ledcore/internal/colormath"
	"github.com/sis-remapper/ledcore/internal/framebuffer"
)

const (
	posLaneWidth   = 8 // 8 positions (two f32 components each) per vector
	colorLaneWidth = 5 // 5 RGBA colors per vector, plus one padding color slot
)

type posVector [posLaneWidth]framebuffer.Position

type colorVector struct {
	colors [colorLaneWidth]colormath.Color
	// pad occupies the sixth lane slot; never read or written by kernels.
	pad colormath.Color
}

// Renderer is the simd back-end's Renderer implementation.
type Renderer struct {
	n       int
	ids     []framebuffer.LedId
	posVecs []posVector
	colVecs []colorVector
}

// New constructs an empty simd back-end.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Load(specs []framebuffer.LedSpec) error {
	r.n = len(specs)
	r.ids = make([]framebuffer.LedId, r.n)
	r.posVecs = make([]posVector, (r.n+posLaneWidth-1)/posLaneWidth)
	r.colVecs = make([]colorVector, (r.n+colorLaneWidth-1)/colorLaneWidth)

	for i, s := range specs {
		r.ids[i] = s.Id
		vi, lane := i/posLaneWidth, i%posLaneWidth
		r.posVecs[vi][lane] = s.Pos
	}
	r.Reset()
	return nil
}

func (r *Renderer) Reset() {
	for vi := range r.colVecs {
		for lane := range r.colVecs[vi].colors {
			r.colVecs[vi].colors[lane] = framebuffer.ResetColor
		}
	}
}

func (r *Renderer) Accessor() framebuffer.Accessor {
	return (*accessor)(r)
}

// Export walks the packed color vectors and emits exactly N external
// entries, discarding any padding lanes in a short final vector
// (spec.md §4.3).
func (r *Renderer) Export() []framebuffer.LedColor {
	out := make([]framebuffer.LedColor, r.n)
	for i := 0; i < r.n; i++ {
		vi, lane := i/colorLaneWidth, i%colorLaneWidth
		out[i] = framebuffer.LedColor{
			Id:    r.ids[i],
			Color: colormath.ToU8Color(r.colVecs[vi].colors[lane]),
		}
	}
	return out
}

type accessor Renderer

func (a *accessor) Len() int { return a.n }

func (a *accessor) Position(i int) framebuffer.Position {
	vi, lane := i/posLaneWidth, i%posLaneWidth
	return a.posVecs[vi][lane]
}

func (a *accessor) Color(i int) colormath.Color {
	vi, lane := i/colorLaneWidth, i%colorLaneWidth
	return a.colVecs[vi].colors[lane]
}

func (a *accessor) SetColor(i int, c colormath.Color) {
	vi, lane := i/colorLaneWidth, i%colorLaneWidth
	a.colVecs[vi].colors[lane] = c
}

func (a *accessor) IndexOf(id framebuffer.LedId) (int, bool) {
	for i, got := range a.ids {
		if got == id {
			return i, true
		}
	}
	return 0, false
}
