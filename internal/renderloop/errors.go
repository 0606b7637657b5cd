package renderloop

import "github.com/pkg/errors"

var (
	// ErrDeviceAbsent is returned from setup when EnumerateDevices found
	// no keyboard; Run logs it and falls back to Disconnected to wait for
	// the next Connected transition.
	ErrDeviceAbsent = errors.New("no keyboard device found")

	// ErrChannelClosed is fatal: Run returns it when the message channel
	// is closed out from under the loop.
	ErrChannelClosed = errors.New("message channel closed")
)
