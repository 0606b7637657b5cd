package state

import "github.com/sis-remapper/ledcore/internal/effects"

// Stack accumulates the effect stack mutated by messages and read once per
// tick by the render loop. It is not safe for concurrent use; the render
// loop owns it and drains messages into it between ticks.
type Stack struct {
	Global []effects.Effect
	Keyed  []effects.Override
}

// Apply folds a single message into the stack. Connected/NotConnected
// carry no stack mutation of their own; the render loop reacts to those
// by changing its own run state instead.
func (s *Stack) Apply(msg Message) {
	switch msg.Kind {
	case AddEffect:
		s.Global = append(s.Global, msg.Effect)
	case AddEffectLed:
		s.Keyed = append(s.Keyed, effects.Override{Led: msg.Led, Effect: msg.Effect})
	case RemoveAllEffects:
		s.Global = nil
		s.Keyed = nil
	}
}
