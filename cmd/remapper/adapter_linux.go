//go:build linux

package main

import (
	"github.com/sis-remapper/ledcore/internal/config"
	"github.com/sis-remapper/ledcore/internal/framebuffer"
	"github.com/sis-remapper/ledcore/internal/sdk"
	"github.com/sis-remapper/ledcore/internal/sdk/stripsim"
)

// newAdapter wires a physical WS281x strip on Linux builds, since no
// vendor lighting SDK ships for this target; the strip is laid out as a
// single row, LED_UNIT apart, matching spec.md §6's coordinate space.
func newAdapter(cfg config.StripConfig) sdk.Adapter {
	positions := make([]framebuffer.LedSpec, cfg.LedCount)
	for i := range positions {
		positions[i] = framebuffer.LedSpec{
			Id:  framebuffer.LedId(i),
			Pos: framebuffer.Position{X: float64(i) * 20.0, Y: 0},
		}
	}
	return stripsim.New(stripsim.Config{
		GPIOPin:    cfg.GPIOPin,
		LedCount:   cfg.LedCount,
		Brightness: cfg.Brightness,
		Positions:  positions,
	})
}
