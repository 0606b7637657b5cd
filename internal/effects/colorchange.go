package effects

import (
	"github.com/sis-remapper/ledcore/internal/colormath"
	"github.com/sis-remapper/ledcore/internal/framebuffer"
)

// colorChangeKernel samples a one-shot animation at s = t_ms/duration_ms,
// clamped to [0,1] (spec.md §4.2.4; the clamp-vs-wrap choice for s outside
// [0,1] is this implementation's resolution of the open question in
// spec.md §9 — see DESIGN.md).
func colorChangeKernel(cc ColorChange) Kernel {
	return func(fb framebuffer.Accessor, tMs uint64) {
		effectColor := sampleColorChange(cc, tMs)
		for i := 0; i < fb.Len(); i++ {
			fb.SetColor(i, colormath.Compose(fb.Color(i), effectColor))
		}
	}
}

func colorChangeKeyedKernel(cc ColorChange) KeyedKernel {
	return func(fb framebuffer.Accessor, i int, tMs uint64) {
		effectColor := sampleColorChange(cc, tMs)
		fb.SetColor(i, colormath.Compose(fb.Color(i), effectColor))
	}
}

func sampleColorChange(cc ColorChange, tMs uint64) colormath.Color {
	s := float64(tMs) / float64(cc.DurationMs)
	s = clampUnit(s)
	return colormath.Sample(cc.Animation, float32(s))
}
