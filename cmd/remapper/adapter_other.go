//go:build !linux

package main

import (
	"github.com/sis-remapper/ledcore/internal/config"
	"github.com/sis-remapper/ledcore/internal/framebuffer"
	"github.com/sis-remapper/ledcore/internal/sdk"
	"github.com/sis-remapper/ledcore/internal/sdk/mock"
)

// newAdapter falls back to the in-memory mock off Linux, since the strip
// adapter needs real GPIO/PWM hardware access.
func newAdapter(cfg config.StripConfig) sdk.Adapter {
	a := mock.New()
	a.Devices = []sdk.DeviceInfo{{Id: mock.DeviceId, Type: sdk.DeviceKeyboard}}
	positions := make([]framebuffer.LedSpec, cfg.LedCount)
	for i := range positions {
		positions[i] = framebuffer.LedSpec{
			Id:  framebuffer.LedId(i),
			Pos: framebuffer.Position{X: float64(i) * 20.0, Y: 0},
		}
	}
	a.Positions = map[string][]framebuffer.LedSpec{mock.DeviceId: positions}
	return a
}
