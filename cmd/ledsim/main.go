// Command ledsim renders a fixed effect stack through the scalar back-end
// and prints each tick's export, for manually inspecting kernel output
// without any SDK or hardware attached.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/sis-remapper/ledcore/internal/backend"
	"github.com/sis-remapper/ledcore/internal/colormath"
	"github.com/sis-remapper/ledcore/internal/effects"
	"github.com/sis-remapper/ledcore/internal/framebuffer"
)

func main() {
	ledCount := flag.Int("leds", 10, "number of LEDs in the simulated row")
	ticks := flag.Int("ticks", 20, "number of frames to render")
	period := flag.Duration("period", 100*time.Millisecond, "simulated render period")
	flag.Parse()

	r := mustRenderer()
	specs := make([]framebuffer.LedSpec, *ledCount)
	for i := range specs {
		specs[i] = framebuffer.LedSpec{Id: framebuffer.LedId(i), Pos: framebuffer.Position{X: float64(i) * effects.LedUnit, Y: 0}}
	}
	if err := r.Load(specs); err != nil {
		panic(err)
	}

	stack := []effects.Effect{
		{Wave: &effects.Wave{
			Animation: colormath.Animation{Keyframes: []colormath.Keyframe{
				{Timestamp: 0, Color: colormath.Color{R: 1, A: 1}},
				{Timestamp: 1, Color: colormath.Color{B: 1, A: 1}},
			}},
			DurationMs:  2000,
			Speed:       1,
			LightAmount: 3,
		}},
	}

	var tMs uint64
	for i := 0; i < *ticks; i++ {
		r.Reset()
		effects.ApplyGlobal(r.Accessor(), tMs, stack)
		exported := r.Export()

		fmt.Printf("t=%4dms ", tMs)
		for _, led := range exported {
			fmt.Printf("#%02x%02x%02x ", led.Color[0], led.Color[1], led.Color[2])
		}
		fmt.Println()

		tMs += uint64(period.Milliseconds())
	}
}

func mustRenderer() backend.Renderer {
	r, err := backend.Select(backend.Scalar)
	if err != nil {
		panic(err)
	}
	return r
}
