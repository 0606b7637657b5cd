package colormath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func anim(kfs ...Keyframe) Animation {
	return Animation{Name: "t", Keyframes: kfs}
}

func TestSampleBeforeFirstKeyframeClamps(t *testing.T) {
	a := anim(
		Keyframe{Timestamp: 0.2, Color: Color{R: 1}},
		Keyframe{Timestamp: 0.8, Color: Color{G: 1}},
	)
	got := Sample(a, 0.0)
	assert.Equal(t, Color{R: 1}, got)
}

func TestSampleMidpoint(t *testing.T) {
	a := anim(
		Keyframe{Timestamp: 0.0, Color: Color{R: 1, A: 1}},
		Keyframe{Timestamp: 1.0, Color: Color{G: 1, A: 1}},
	)
	got := Sample(a, 0.5)
	require.InDelta(t, 0.5, got.R, 1e-6)
	require.InDelta(t, 0.5, got.G, 1e-6)
	require.InDelta(t, 1.0, got.A, 1e-6)
}

func TestSampleAfterLastKeyframeHolds(t *testing.T) {
	a := anim(
		Keyframe{Timestamp: 0.0, Color: Color{R: 1}},
		Keyframe{Timestamp: 0.5, Color: Color{B: 1}},
	)
	got := Sample(a, 1.0)
	assert.Equal(t, Color{B: 1}, got)
}

func TestSampleSingleKeyframe(t *testing.T) {
	a := anim(Keyframe{Timestamp: 0.3, Color: Color{R: 0.5, A: 1}})
	for _, s := range []float32{0, 0.3, 1} {
		got := Sample(a, s)
		assert.Equal(t, Color{R: 0.5, A: 1}, got)
	}
}

func TestComposeOpaqueOverWins(t *testing.T) {
	under := Color{R: 0, G: 0, B: 0, A: 0.5}
	over := Color{R: 1, G: 0, B: 0, A: 1}
	got := Compose(under, over)
	assert.Equal(t, Color{R: 1, G: 0, B: 0, A: 1}, got)
}

func TestComposeZeroAlphaResultIsZero(t *testing.T) {
	got := Compose(Color{}, Color{})
	assert.Equal(t, Color{}, got)
}

func TestComposeTransparentOverLeavesUnderVisible(t *testing.T) {
	under := Color{R: 0, G: 0, B: 0, A: 1}
	over := Color{R: 1, G: 1, B: 1, A: 0}
	got := Compose(under, over)
	assert.InDelta(t, 0, got.R, 1e-6)
	assert.InDelta(t, 1, got.A, 1e-6)
}

func TestToU8RoundsAndClamps(t *testing.T) {
	assert.Equal(t, uint8(0), ToU8(-1))
	assert.Equal(t, uint8(255), ToU8(2))
	assert.Equal(t, uint8(128), ToU8(0.5))
	assert.Equal(t, uint8(255), ToU8(1))
	assert.Equal(t, uint8(0), ToU8(0))
}

func TestFromU8RoundTrip(t *testing.T) {
	for _, b := range []uint8{0, 1, 128, 254, 255} {
		assert.InDelta(t, float32(b)/255.0, FromU8(b), 1e-6)
	}
}

func TestToU8ColorAndFromU8Color(t *testing.T) {
	c := Color{R: 1, G: 0, B: 1, A: 1}
	u8 := ToU8Color(c)
	assert.Equal(t, [4]uint8{255, 0, 255, 255}, u8)
	back := FromU8Color(u8)
	assert.Equal(t, c, back)
}
