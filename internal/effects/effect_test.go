package effects_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sis-remapper/ledcore/internal/backend/scalar"
	"github.com/sis-remapper/ledcore/internal/colormath"
	"github.com/sis-remapper/ledcore/internal/effects"
	"github.com/sis-remapper/ledcore/internal/framebuffer"
)

func newScalarFb(t *testing.T, specs []framebuffer.LedSpec) *scalar.Renderer {
	t.Helper()
	r := scalar.New()
	require.NoError(t, r.Load(specs))
	r.Reset()
	return r
}

func specs(positions ...framebuffer.Position) []framebuffer.LedSpec {
	out := make([]framebuffer.LedSpec, len(positions))
	for i, p := range positions {
		out[i] = framebuffer.LedSpec{Id: framebuffer.LedId(i + 1), Pos: p}
	}
	return out
}

// Scenario 1: black baseline.
func TestBlackBaseline(t *testing.T) {
	r := newScalarFb(t, specs(framebuffer.Position{X: 1, Y: 2}, framebuffer.Position{X: 3, Y: 4}, framebuffer.Position{X: 5, Y: 6}))
	for _, rec := range r.Export() {
		assert.Equal(t, [4]uint8{0, 0, 0, 255}, rec.Color)
	}
}

// Scenario 2: static opaque white.
func TestStaticOpaqueWhite(t *testing.T) {
	r := newScalarFb(t, specs(framebuffer.Position{}, framebuffer.Position{X: 1}))
	fb := r.Accessor()
	effects.ApplyGlobal(fb, 0, []effects.Effect{
		{Static: &effects.Static{Color: colormath.Color{R: 1, G: 1, B: 1, A: 1}}},
	})
	for _, rec := range r.Export() {
		assert.Equal(t, [4]uint8{255, 255, 255, 255}, rec.Color)
	}
}

// Scenario 3: static transparent half + static opaque red.
func TestStaticStackOrdering(t *testing.T) {
	r := newScalarFb(t, specs(framebuffer.Position{}, framebuffer.Position{X: 10}))
	fb := r.Accessor()
	effects.ApplyGlobal(fb, 0, []effects.Effect{
		{Static: &effects.Static{Color: colormath.Color{A: 0.5}}},
		{Static: &effects.Static{Color: colormath.Color{R: 1, A: 1}}},
	})
	for _, rec := range r.Export() {
		assert.Equal(t, [4]uint8{255, 0, 0, 255}, rec.Color)
	}
}

// Scenario 4: wave edge.
func TestWaveEdge(t *testing.T) {
	r := newScalarFb(t, specs(framebuffer.Position{X: 0, Y: 0}))
	fb := r.Accessor()
	wave := effects.Wave{
		Animation: colormath.Animation{Keyframes: []colormath.Keyframe{
			{Timestamp: 0.0, Color: colormath.Color{R: 1, A: 1}},
			{Timestamp: 1.0, Color: colormath.Color{G: 1, A: 1}},
		}},
		DurationMs:  1000,
		Speed:       1,
		RotationRad: 0,
		LightAmount: 1,
		TwoSided:    false,
	}
	effects.ApplyGlobal(fb, 500, []effects.Effect{{Wave: &wave}})
	rec := r.Export()[0]
	assert.InDelta(t, 128, int(rec.Color[0]), 1)
	assert.InDelta(t, 128, int(rec.Color[1]), 1)
	assert.Equal(t, uint8(0), rec.Color[2])
	assert.Equal(t, uint8(255), rec.Color[3])
}

// Scenario 5: ripple centre boundary exclusion.
func TestRippleCentreBoundaryExcluded(t *testing.T) {
	r := newScalarFb(t, specs(framebuffer.Position{X: 200, Y: 100}))
	fb := r.Accessor()
	ripple := effects.Ripple{
		Animation: colormath.Animation{Keyframes: []colormath.Keyframe{
			{Timestamp: 0, Color: colormath.Color{R: 1, A: 1}},
		}},
		DurationMs:  1000,
		Speed:       1,
		LightAmount: 0.5,
	}
	effects.ApplyGlobal(fb, 500, []effects.Effect{{Ripple: &ripple}})
	rec := r.Export()[0]
	assert.Equal(t, [4]uint8{0, 0, 0, 255}, rec.Color)
}

// Scenario 6: per-LED override wins.
func TestPerLedOverrideWins(t *testing.T) {
	r := newScalarFb(t, specs(framebuffer.Position{}, framebuffer.Position{X: 1}, framebuffer.Position{X: 2}))
	fb := r.Accessor()
	effects.ApplyGlobal(fb, 0, []effects.Effect{
		{Static: &effects.Static{Color: colormath.Color{A: 1}}},
	})
	effects.ApplyOverrides(fb, 0, []effects.Override{
		{Led: 2, Effect: effects.Effect{Static: &effects.Static{Color: colormath.Color{R: 1, G: 1, B: 1, A: 1}}}},
	})
	exported := r.Export()
	assert.Equal(t, [4]uint8{0, 0, 0, 255}, exported[0].Color)
	assert.Equal(t, [4]uint8{255, 255, 255, 255}, exported[1].Color)
	assert.Equal(t, [4]uint8{0, 0, 0, 255}, exported[2].Color)
}

// Monotonic wrap: wave outputs at t and t+duration agree exactly.
func TestWaveMonotonicWrap(t *testing.T) {
	r1 := newScalarFb(t, specs(framebuffer.Position{X: 50, Y: 0}))
	r2 := newScalarFb(t, specs(framebuffer.Position{X: 50, Y: 0}))
	wave := effects.Wave{
		Animation: colormath.Animation{Keyframes: []colormath.Keyframe{
			{Timestamp: 0, Color: colormath.Color{R: 1, A: 1}},
			{Timestamp: 1, Color: colormath.Color{B: 1, A: 1}},
		}},
		DurationMs:  777,
		Speed:       3,
		LightAmount: 2,
	}
	effects.ApplyGlobal(r1.Accessor(), 321, []effects.Effect{{Wave: &wave}})
	effects.ApplyGlobal(r2.Accessor(), 321+777, []effects.Effect{{Wave: &wave}})
	assert.Equal(t, r1.Export(), r2.Export())
}

// Identity under empty static: a single Static{(0,0,0,0)} leaves reset value.
func TestIdentityUnderEmptyStatic(t *testing.T) {
	r := newScalarFb(t, specs(framebuffer.Position{}))
	effects.ApplyGlobal(r.Accessor(), 0, []effects.Effect{{Static: &effects.Static{}}})
	assert.Equal(t, [4]uint8{0, 0, 0, 255}, r.Export()[0].Color)
}

// RemoveAllEffects idempotence is a renderloop/state concern; at the
// effects level, re-running ApplyGlobal with an empty stack is a no-op
// beyond Reset, which this asserts directly.
func TestEmptyStackIsNoOp(t *testing.T) {
	r := newScalarFb(t, specs(framebuffer.Position{}, framebuffer.Position{X: 9}))
	effects.ApplyGlobal(r.Accessor(), 42, nil)
	for _, rec := range r.Export() {
		assert.Equal(t, [4]uint8{0, 0, 0, 255}, rec.Color)
	}
}
