package effects

import (
	"math"

	"github.com/sis-remapper/ledcore/internal/colormath"
	"github.com/sis-remapper/ledcore/internal/framebuffer"
)

// waveParams are the per-tick derived quantities shared by every LED
// (spec.md §4.2.2): head = ((t_ms mod duration_ms)/1000)*speed*LED_UNIT,
// width = light_amount*LED_UNIT.
type waveParams struct {
	head  float64
	width float64
}

func computeWaveParams(tMs uint64, w Wave) waveParams {
	durMs := uint64(w.DurationMs)
	wrapped := float64(tMs % durMs)
	return waveParams{
		head:  (wrapped / 1000.0) * w.Speed * LedUnit,
		width: w.LightAmount * LedUnit,
	}
}

func waveKernel(w Wave) Kernel {
	return func(fb framebuffer.Accessor, tMs uint64) {
		p := computeWaveParams(tMs, w)
		for i := 0; i < fb.Len(); i++ {
			applyWave(fb, i, w, p)
		}
	}
}

func waveKeyedKernel(w Wave) KeyedKernel {
	return func(fb framebuffer.Accessor, i int, tMs uint64) {
		p := computeWaveParams(tMs, w)
		applyWave(fb, i, w, p)
	}
}

func applyWave(fb framebuffer.Accessor, i int, w Wave, p waveParams) {
	pos := fb.Position(i)
	rot := float64(w.RotationRad)
	posRotated := pos.X*math.Cos(rot) - pos.Y*math.Sin(rot)

	var d float64
	if w.TwoSided {
		d = p.head - math.Abs(posRotated-WaveMidpointX)
	} else {
		d = p.head - posRotated
	}

	if d <= 0 || d >= p.width {
		return
	}

	s := float32(d / p.width)
	effectColor := colormath.Sample(w.Animation, s)
	fb.SetColor(i, colormath.Compose(fb.Color(i), effectColor))
}
