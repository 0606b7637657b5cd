package effects

import (
	"github.com/sis-remapper/ledcore/internal/colormath"
	"github.com/sis-remapper/ledcore/internal/framebuffer"
)

// staticKernel alpha-composes the effect's color over every LED's
// under-color (spec.md §4.2.1).
func staticKernel(s Static) Kernel {
	return func(fb framebuffer.Accessor, _ uint64) {
		for i := 0; i < fb.Len(); i++ {
			applyStatic(fb, i, s)
		}
	}
}

func staticKeyedKernel(s Static) KeyedKernel {
	return func(fb framebuffer.Accessor, i int, _ uint64) {
		applyStatic(fb, i, s)
	}
}

func applyStatic(fb framebuffer.Accessor, i int, s Static) {
	fb.SetColor(i, colormath.Compose(fb.Color(i), s.Color))
}
