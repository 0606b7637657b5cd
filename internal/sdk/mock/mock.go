// Package mock provides an in-memory sdk.Adapter for exercising the
// render loop without a real vendor SDK or strip attached.
package mock

import (
	"sync"

	"github.com/sis-remapper/ledcore/internal/framebuffer"
	"github.com/sis-remapper/ledcore/internal/sdk"
)

// DeviceId is the id used by callers that need a single stand-in device
// (e.g. the non-Linux build's fallback wiring) without enumerating one.
const DeviceId = "kb0"

// Adapter is a programmable fake: tests set its device layout up front and
// can push session-state transitions with Push. Every SetLedColors call is
// recorded for later assertion.
type Adapter struct {
	mu sync.Mutex

	Devices   []sdk.DeviceInfo
	Positions map[string][]framebuffer.LedSpec

	onState func(sdk.SessionState)
	closed  bool

	Uploads []Upload

	// UploadErr, when set, is returned by SetLedColors instead of
	// recording the frame, letting tests exercise the render loop's
	// upload-failure-but-keep-running path.
	UploadErr error
}

type Upload struct {
	DeviceId string
	Colors   []framebuffer.LedColor
}

func New() *Adapter {
	return &Adapter{Positions: make(map[string][]framebuffer.LedSpec)}
}

func (a *Adapter) Connect(onState func(sdk.SessionState)) error {
	a.mu.Lock()
	a.onState = onState
	a.mu.Unlock()
	onState(sdk.Connected)
	return nil
}

// Push delivers a session-state transition as if the vendor SDK's
// callback had fired, for tests that drive the render loop's
// Disconnected/Setup/Running state machine directly.
func (a *Adapter) Push(state sdk.SessionState) {
	a.mu.Lock()
	cb := a.onState
	a.mu.Unlock()
	if cb != nil {
		cb(state)
	}
}

func (a *Adapter) EnumerateDevices() ([]sdk.DeviceInfo, error) {
	return a.Devices, nil
}

func (a *Adapter) GetLedPositions(deviceId string) ([]framebuffer.LedSpec, error) {
	return a.Positions[deviceId], nil
}

func (a *Adapter) SetLedColors(deviceId string, colors []framebuffer.LedColor) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.UploadErr != nil {
		return a.UploadErr
	}
	cp := make([]framebuffer.LedColor, len(colors))
	copy(cp, colors)
	a.Uploads = append(a.Uploads, Upload{DeviceId: deviceId, Colors: cp})
	return nil
}

func (a *Adapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closed = true
	return nil
}

func (a *Adapter) Closed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.closed
}
