package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sis-remapper/ledcore/internal/colormath"
	"github.com/sis-remapper/ledcore/internal/effects"
	"github.com/sis-remapper/ledcore/internal/framebuffer"
)

// fixtureLeds is a small, deliberately irregular LED layout exercising
// multiple lane boundaries for the simd back-end (posLaneWidth=8,
// colorLaneWidth=5) while staying readable for scalar/gpu too.
func fixtureLeds(n int) []framebuffer.LedSpec {
	specs := make([]framebuffer.LedSpec, n)
	for i := 0; i < n; i++ {
		specs[i] = framebuffer.LedSpec{
			Id: framebuffer.LedId(1000 + i),
			Pos: framebuffer.Position{
				X: float64(i%23) * 7.3,
				Y: float64((i*13)%19) * 4.1,
			},
		}
	}
	return specs
}

func fixtureStack() []effects.Effect {
	anim := colormath.Animation{Keyframes: []colormath.Keyframe{
		{Timestamp: 0, Color: colormath.Color{R: 1, A: 1}},
		{Timestamp: 0.4, Color: colormath.Color{G: 1, A: 1}},
		{Timestamp: 1, Color: colormath.Color{B: 1, A: 1}},
	}}
	return []effects.Effect{
		{Static: &effects.Static{Color: colormath.Color{R: 0.2, G: 0.2, B: 0.2, A: 0.3}}},
		{Wave: &effects.Wave{Animation: anim, DurationMs: 1000, Speed: 2, LightAmount: 3, RotationRad: 0.3}},
		{Ripple: &effects.Ripple{Animation: anim, DurationMs: 1300, Speed: 1.5, LightAmount: 2}},
		{ColorChange: &effects.ColorChange{Animation: anim, DurationMs: 2000}},
	}
}

// ConformanceSuite runs the shared framebuffer invariants (spec.md §8)
// against the given Renderer constructor, used by every back-end's own
// _test.go so scalar, simd, and (when built with the "gpu" tag) gpu all
// prove the same contract.
func ConformanceSuite(t *testing.T, newRenderer func() Renderer) {
	t.Run("length preservation", func(t *testing.T) {
		n := 37
		r := newRenderer()
		require.NoError(t, r.Load(fixtureLeds(n)))
		exported := r.Export()
		require.Len(t, exported, n)
		for i, rec := range exported {
			assert.Equal(t, framebuffer.LedId(1000+i), rec.Id)
		}
	})

	t.Run("reset correctness", func(t *testing.T) {
		r := newRenderer()
		require.NoError(t, r.Load(fixtureLeds(11)))
		r.Reset()
		for _, rec := range r.Export() {
			assert.Equal(t, [4]uint8{0, 0, 0, 255}, rec.Color)
		}
	})

	t.Run("ordering: opaque B overwrites opaque A", func(t *testing.T) {
		r := newRenderer()
		require.NoError(t, r.Load(fixtureLeds(5)))
		r.Reset()
		effects.ApplyGlobal(r.Accessor(), 0, []effects.Effect{
			{Static: &effects.Static{Color: colormath.Color{R: 1, A: 1}}},
			{Static: &effects.Static{Color: colormath.Color{B: 1, A: 1}}},
		})
		for _, rec := range r.Export() {
			assert.Equal(t, [4]uint8{0, 0, 255, 255}, rec.Color)
		}
	})
}

// AgreeWithinOneLSB asserts two back-ends agree within one 8-bit quant on
// every channel for the same stack/time, per spec.md §8's back-end
// equivalence property.
func AgreeWithinOneLSB(t *testing.T, oracle, candidate func() Renderer) {
	n := 41
	leds := fixtureLeds(n)
	stack := fixtureStack()

	for _, tMs := range []uint64{0, 1, 250, 500, 999, 1000, 1001, 2500} {
		o := oracle()
		require.NoError(t, o.Load(leds))
		o.Reset()
		effects.ApplyGlobal(o.Accessor(), tMs, stack)

		c := candidate()
		require.NoError(t, c.Load(leds))
		c.Reset()
		effects.ApplyGlobal(c.Accessor(), tMs, stack)

		oExp, cExp := o.Export(), c.Export()
		require.Len(t, cExp, len(oExp))
		for i := range oExp {
			for ch := 0; ch < 4; ch++ {
				diff := int(oExp[i].Color[ch]) - int(cExp[i].Color[ch])
				if diff < 0 {
					diff = -diff
				}
				assert.LessOrEqualf(t, diff, 1, "t=%d led=%d channel=%d oracle=%v candidate=%v", tMs, i, ch, oExp[i].Color, cExp[i].Color)
			}
		}
	}
}
