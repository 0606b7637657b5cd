//go:build linux

// Package stripsim implements sdk.Adapter against a real WS281x strip via
// rpi-ws281x-go, for bring-up on hardware that has no vendor lighting SDK
// at all, adapted from the teacher's Client/ledcontrol device-handle
// idiom in Client/ledcontrol/win.go.
package stripsim

import (
	"github.com/pkg/errors"
	ws2811 "github.com/rpi-ws281x/rpi-ws281x-go"

	"github.com/sis-remapper/ledcore/internal/framebuffer"
	"github.com/sis-remapper/ledcore/internal/sdk"
)

// DeviceId is the single strip's identifier, since a GPIO-attached strip
// has no enumeration concept of its own.
const DeviceId = "strip0"

// Config mirrors the handful of rpi-ws281x-go channel settings this
// adapter actually needs.
type Config struct {
	GPIOPin    int
	LedCount   int
	Brightness int
	Positions  []framebuffer.LedSpec
}

// Adapter drives one WS281x strip through a single PWM channel.
type Adapter struct {
	cfg    Config
	dev    *ws2811.WS2811
	onUp   func(sdk.SessionState)
	closed bool
}

func New(cfg Config) *Adapter {
	return &Adapter{cfg: cfg}
}

func (a *Adapter) Connect(onState func(sdk.SessionState)) error {
	a.onUp = onState
	onState(sdk.Connecting)

	opt := ws2811.DefaultOptions
	opt.Channels[0].GpioPin = a.cfg.GPIOPin
	opt.Channels[0].LedCount = a.cfg.LedCount
	opt.Channels[0].Brightness = a.cfg.Brightness

	dev, err := ws2811.MakeWS2811(&opt)
	if err != nil {
		onState(sdk.ConnectionRefused)
		return errors.Wrap(err, "stripsim: MakeWS2811")
	}
	if err := dev.Init(); err != nil {
		onState(sdk.ConnectionRefused)
		return errors.Wrap(err, "stripsim: Init")
	}

	a.dev = dev
	onState(sdk.Connected)
	return nil
}

func (a *Adapter) EnumerateDevices() ([]sdk.DeviceInfo, error) {
	return []sdk.DeviceInfo{{Id: DeviceId, Type: sdk.DeviceKeyboard}}, nil
}

func (a *Adapter) GetLedPositions(deviceId string) ([]framebuffer.LedSpec, error) {
	if deviceId != DeviceId {
		return nil, errors.Errorf("stripsim: unknown device %q", deviceId)
	}
	return a.cfg.Positions, nil
}

// SetLedColors packs straight-alpha framebuffer.LedColor into 0xRRGGBB,
// dropping alpha: a physical strip has no per-pixel coverage concept, the
// render loop has already composited onto opaque black by the time a
// frame reaches an Adapter.
func (a *Adapter) SetLedColors(deviceId string, colors []framebuffer.LedColor) error {
	if deviceId != DeviceId {
		return errors.Errorf("stripsim: unknown device %q", deviceId)
	}
	if a.dev == nil {
		return errors.New("stripsim: not connected")
	}

	buf := a.dev.Leds(0)
	byId := make(map[framebuffer.LedId]int, len(a.cfg.Positions))
	for i, spec := range a.cfg.Positions {
		byId[spec.Id] = i
	}
	for _, lc := range colors {
		i, ok := byId[lc.Id]
		if !ok || i >= len(buf) {
			continue
		}
		buf[i] = uint32(lc.Color[0])<<16 | uint32(lc.Color[1])<<8 | uint32(lc.Color[2])
	}
	if err := a.dev.Render(); err != nil {
		return errors.Wrap(err, "stripsim: Render")
	}
	return errors.Wrap(a.dev.Wait(), "stripsim: Wait")
}

func (a *Adapter) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	if a.dev != nil {
		a.dev.Fini()
	}
	if a.onUp != nil {
		a.onUp(sdk.Closed)
	}
	return nil
}
