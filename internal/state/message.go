// Package state defines the messages used to mutate the render loop's
// effect stack from outside its own goroutine, and the channel they
// travel on.
package state

import (
	"github.com/sis-remapper/ledcore/internal/effects"
	"github.com/sis-remapper/ledcore/internal/framebuffer"
)

// Kind tags which field of Message is populated.
type Kind int

const (
	Connected Kind = iota
	NotConnected
	AddEffect
	AddEffectLed
	RemoveAllEffects
)

// Message is a single mutation or session-state notification sent to the
// render loop. Only the field matching Kind is meaningful.
type Message struct {
	Kind   Kind
	Effect effects.Effect
	Led    framebuffer.LedId
}

func MsgConnected() Message    { return Message{Kind: Connected} }
func MsgNotConnected() Message { return Message{Kind: NotConnected} }

func MsgAddEffect(e effects.Effect) Message {
	return Message{Kind: AddEffect, Effect: e}
}

func MsgAddEffectLed(led framebuffer.LedId, e effects.Effect) Message {
	return Message{Kind: AddEffectLed, Led: led, Effect: e}
}

func MsgRemoveAllEffects() Message { return Message{Kind: RemoveAllEffects} }
