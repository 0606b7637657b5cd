// Package effects implements the effect kernels of spec.md §4.2: static
// fill, linear wave, radial ripple, and color-change, plus their per-LED
// override variants. Kernels mutate a framebuffer.Accessor in place and are
// idempotent with respect to their parameters.
package effects

import (
	"github.com/sis-remapper/ledcore/internal/colormath"
	"github.com/sis-remapper/ledcore/internal/framebuffer"
)

// LedUnit is the spatial scale constant relating animation speed and
// light-amount to positions (spec.md §6).
const LedUnit = 20.0

// WaveMidpointX and the ripple midpoint are the fixed geometric constants
// of spec.md §6.
const WaveMidpointX = 100.0

const (
	RippleMidpointX = 200.0
	RippleMidpointY = 100.0
)

// Kernel mutates every LED of fb at frame time tMs.
type Kernel func(fb framebuffer.Accessor, tMs uint64)

// KeyedKernel mutates a single LED slot of fb at frame time tMs.
type KeyedKernel func(fb framebuffer.Accessor, i int, tMs uint64)

// Static is a flat fill composited over every LED (spec.md §4.2.1).
type Static struct {
	Color colormath.Color
}

// Wave is a travelling linear wavefront sampled from an animation along a
// rotated axis (spec.md §4.2.2).
type Wave struct {
	Animation    colormath.Animation
	DurationMs   uint32
	Speed        float64
	RotationRad  float32
	LightAmount  float64
	TwoSided     bool
}

// Ripple is a travelling radial wavefront centered on the ripple midpoint
// (spec.md §4.2.3).
type Ripple struct {
	Animation   colormath.Animation
	DurationMs  uint32
	Speed       float64
	LightAmount float64
}

// ColorChange is a one-shot animation sample applied to every LED, driven
// purely by elapsed time (spec.md §4.2.4).
type ColorChange struct {
	Animation  colormath.Animation
	DurationMs uint32
}

// Effect is the tagged union of the four effect variants. Exactly one
// field is non-nil; dispatch happens once per tick via Kernel/KeyedKernel,
// not per LED (spec.md §9).
type Effect struct {
	Static      *Static
	Wave        *Wave
	Ripple      *Ripple
	ColorChange *ColorChange
}

// Kernel returns this effect's global (whole-framebuffer) kernel.
func (e Effect) Kernel() Kernel {
	switch {
	case e.Static != nil:
		return staticKernel(*e.Static)
	case e.Wave != nil:
		return waveKernel(*e.Wave)
	case e.Ripple != nil:
		return rippleKernel(*e.Ripple)
	case e.ColorChange != nil:
		return colorChangeKernel(*e.ColorChange)
	default:
		return func(framebuffer.Accessor, uint64) {}
	}
}

// KeyedKernel returns this effect's single-LED override kernel.
func (e Effect) KeyedKernel() KeyedKernel {
	switch {
	case e.Static != nil:
		return staticKeyedKernel(*e.Static)
	case e.Wave != nil:
		return waveKeyedKernel(*e.Wave)
	case e.Ripple != nil:
		return rippleKeyedKernel(*e.Ripple)
	case e.ColorChange != nil:
		return colorChangeKeyedKernel(*e.ColorChange)
	default:
		return func(framebuffer.Accessor, int, uint64) {}
	}
}

// ApplyGlobal runs the kernel of every effect in stack, in order (paint order, spec.md §3),
// over the whole framebuffer.
func ApplyGlobal(fb framebuffer.Accessor, tMs uint64, stack []Effect) {
	for _, e := range stack {
		e.Kernel()(fb, tMs)
	}
}

// Override is one per-LED effect override entry (spec.md §3).
type Override struct {
	Led    framebuffer.LedId
	Effect Effect
}

// ApplyOverrides runs each override's keyed kernel, in order, against
// whichever framebuffer slot matches its LedId. Applied after the global
// stack (spec.md §3, §4.2.5); multiple overrides targeting the same LedId
// apply in the given order (spec.md §9 open question).
func ApplyOverrides(fb framebuffer.Accessor, tMs uint64, overrides []Override) {
	for _, o := range overrides {
		i, ok := fb.IndexOf(o.Led)
		if !ok {
			continue
		}
		o.Effect.KeyedKernel()(fb, i, tMs)
	}
}

func clampUnit(s float64) float64 {
	switch {
	case s < 0:
		return 0
	case s > 1:
		return 1
	default:
		return s
	}
}
