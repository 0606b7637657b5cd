// Package sdk defines the boundary between the render loop and whatever
// vendor lighting SDK (or local hardware driver) actually owns the
// keyboard/strip connection.
package sdk

import (
	"github.com/sis-remapper/ledcore/internal/framebuffer"
)

// SessionState mirrors the vendor SDK's connection lifecycle, restated
// from original_source/icue-bindings/src/types.rs's CorsairSessionState.
type SessionState int

const (
	Closed SessionState = iota
	Connecting
	Connected
	ConnectionLost
	ConnectionRefused
	Timeout
	Invalid
)

func (s SessionState) String() string {
	switch s {
	case Closed:
		return "closed"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case ConnectionLost:
		return "connection_lost"
	case ConnectionRefused:
		return "connection_refused"
	case Timeout:
		return "timeout"
	default:
		return "invalid"
	}
}

// DeviceType mirrors CorsairDeviceType, restricted to the kinds the render
// loop cares about filtering on.
type DeviceType int

const (
	DeviceUnknown DeviceType = iota
	DeviceKeyboard
	DeviceMouse
	DeviceMousemat
	DeviceHeadset
	DeviceHeadsetStand
	DeviceFanLedController
	DeviceLedController
)

// DeviceInfo identifies one connected lighting-capable device.
type DeviceInfo struct {
	Id   string
	Type DeviceType
}

// Adapter is the boundary implemented once per target (a real vendor SDK
// binding, a WS281x strip, or an in-memory fake for tests). The render
// loop never talks to hardware directly; it only ever calls an Adapter.
type Adapter interface {
	// Connect establishes (or re-establishes) a session and delivers
	// session-state transitions to onState until ctx-independent Close.
	// Implementations call onState at least once with the initial state.
	Connect(onState func(SessionState)) error

	// EnumerateDevices lists the devices the current session can see.
	EnumerateDevices() ([]DeviceInfo, error)

	// GetLedPositions returns the fixed LED layout for a device.
	GetLedPositions(deviceId string) ([]framebuffer.LedSpec, error)

	// SetLedColors uploads one frame's worth of colors to a device.
	SetLedColors(deviceId string, colors []framebuffer.LedColor) error

	// Close releases the session.
	Close() error
}
