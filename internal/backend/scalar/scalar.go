// Package scalar implements the array-of-structs Renderer: one LED at a
// time, serving as the oracle back-end against which simd and gpu are
// checked for agreement (spec.md §4.5).
package scalar

import (
	"github.com/sis-remapper/ledcore/internal/colormath"
	"github.com/sis-remapper/ledcore/internal/framebuffer"
)

type led struct {
	pos   framebuffer.Position
	id    framebuffer.LedId
	color colormath.Color
}

// Renderer is the scalar back-end's Renderer implementation.
type Renderer struct {
	leds []led
}

// New constructs an empty scalar back-end.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Load(specs []framebuffer.LedSpec) error {
	r.leds = make([]led, len(specs))
	for i, s := range specs {
		r.leds[i] = led{pos: s.Pos, id: s.Id, color: framebuffer.ResetColor}
	}
	return nil
}

func (r *Renderer) Reset() {
	for i := range r.leds {
		r.leds[i].color = framebuffer.ResetColor
	}
}

func (r *Renderer) Accessor() framebuffer.Accessor {
	return (*accessor)(r)
}

func (r *Renderer) Export() []framebuffer.LedColor {
	out := make([]framebuffer.LedColor, len(r.leds))
	for i, l := range r.leds {
		out[i] = framebuffer.LedColor{Id: l.id, Color: colormath.ToU8Color(l.color)}
	}
	return out
}

// accessor is Renderer viewed through framebuffer.Accessor; it is the same
// underlying slice, just a narrower view for kernels.
type accessor Renderer

func (a *accessor) Len() int { return len(a.leds) }

func (a *accessor) Position(i int) framebuffer.Position { return a.leds[i].pos }

func (a *accessor) Color(i int) colormath.Color { return a.leds[i].color }

func (a *accessor) SetColor(i int, c colormath.Color) { a.leds[i].color = c }

func (a *accessor) IndexOf(id framebuffer.LedId) (int, bool) {
	for i, l := range a.leds {
		if l.id == id {
			return i, true
		}
	}
	return 0, false
}
