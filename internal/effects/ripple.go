package effects

import (
	"math"

	"github.com/sis-remapper/ledcore/internal/colormath"
	"github.com/sis-remapper/ledcore/internal/framebuffer"
)

type rippleParams struct {
	head  float64
	width float64
}

func computeRippleParams(tMs uint64, r Ripple) rippleParams {
	durMs := uint64(r.DurationMs)
	wrapped := float64(tMs % durMs)
	return rippleParams{
		head:  (wrapped / 1000.0) * r.Speed * LedUnit,
		width: r.LightAmount * LedUnit,
	}
}

func rippleKernel(r Ripple) Kernel {
	return func(fb framebuffer.Accessor, tMs uint64) {
		p := computeRippleParams(tMs, r)
		for i := 0; i < fb.Len(); i++ {
			applyRipple(fb, i, r, p)
		}
	}
}

func rippleKeyedKernel(r Ripple) KeyedKernel {
	return func(fb framebuffer.Accessor, i int, tMs uint64) {
		p := computeRippleParams(tMs, r)
		applyRipple(fb, i, r, p)
	}
}

func applyRipple(fb framebuffer.Accessor, i int, r Ripple, p rippleParams) {
	pos := fb.Position(i)
	dx := pos.X - RippleMidpointX
	dy := pos.Y - RippleMidpointY
	radius := math.Sqrt(dx*dx + dy*dy)
	d := p.head - radius

	if d <= 0 || d >= p.width {
		return
	}

	s := float32(d / p.width)
	effectColor := colormath.Sample(r.Animation, s)
	fb.SetColor(i, colormath.Compose(fb.Color(i), effectColor))
}
