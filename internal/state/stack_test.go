package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sis-remapper/ledcore/internal/colormath"
	"github.com/sis-remapper/ledcore/internal/effects"
	"github.com/sis-remapper/ledcore/internal/framebuffer"
	"github.com/sis-remapper/ledcore/internal/state"
)

func TestStackAppendsInOrder(t *testing.T) {
	var s state.Stack
	white := effects.Effect{Static: &effects.Static{Color: colormath.Color{R: 1, G: 1, B: 1, A: 1}}}
	red := effects.Effect{Static: &effects.Static{Color: colormath.Color{R: 1, A: 1}}}

	s.Apply(state.MsgAddEffect(white))
	s.Apply(state.MsgAddEffect(red))

	require.Len(t, s.Global, 2)
	assert.Equal(t, white, s.Global[0])
	assert.Equal(t, red, s.Global[1])
}

func TestStackAddEffectLed(t *testing.T) {
	var s state.Stack
	e := effects.Effect{Static: &effects.Static{Color: colormath.Color{A: 1}}}

	s.Apply(state.MsgAddEffectLed(framebuffer.LedId(7), e))

	require.Len(t, s.Keyed, 1)
	assert.Equal(t, framebuffer.LedId(7), s.Keyed[0].Led)
}

func TestStackRemoveAllEffectsClearsBoth(t *testing.T) {
	var s state.Stack
	s.Apply(state.MsgAddEffect(effects.Effect{Static: &effects.Static{}}))
	s.Apply(state.MsgAddEffectLed(framebuffer.LedId(1), effects.Effect{Static: &effects.Static{}}))

	s.Apply(state.MsgRemoveAllEffects())

	assert.Empty(t, s.Global)
	assert.Empty(t, s.Keyed)
}

func TestStackRemoveAllEffectsIdempotent(t *testing.T) {
	var s state.Stack
	s.Apply(state.MsgRemoveAllEffects())
	s.Apply(state.MsgRemoveAllEffects())
	assert.Empty(t, s.Global)
	assert.Empty(t, s.Keyed)
}

func TestConnectedNotConnectedCarryNoStackMutation(t *testing.T) {
	var s state.Stack
	s.Apply(state.MsgConnected())
	s.Apply(state.MsgNotConnected())
	assert.Empty(t, s.Global)
	assert.Empty(t, s.Keyed)
}

func TestChannelIsSingleProducerSingleConsumer(t *testing.T) {
	tx, rx := state.NewChannel()
	tx <- state.MsgAddEffect(effects.Effect{Static: &effects.Static{}})
	tx <- state.MsgRemoveAllEffects()

	first := <-rx
	second := <-rx

	assert.Equal(t, state.AddEffect, first.Kind)
	assert.Equal(t, state.RemoveAllEffects, second.Kind)
}
