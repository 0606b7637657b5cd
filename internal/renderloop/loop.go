// Package renderloop implements the single render thread: it owns the
// framebuffer and effect stack, drains mutation messages, and on each
// tick composes the stack onto the framebuffer and hands the result to
// an sdk.Adapter.
package renderloop

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sis-remapper/ledcore/internal/backend"
	"github.com/sis-remapper/ledcore/internal/effects"
	"github.com/sis-remapper/ledcore/internal/framebuffer"
	"github.com/sis-remapper/ledcore/internal/sdk"
	"github.com/sis-remapper/ledcore/internal/state"
)

// DefaultPeriod is the render period used until SetPeriod changes it.
const DefaultPeriod = 100 * time.Millisecond

// TickStat is published after every completed tick, for the status
// surface to report on.
type TickStat struct {
	TMs        uint64
	LedCount   int
	UploadErr  error
	Generation uint64
}

// Loop is the Disconnected/Setup/Running state machine of spec.md §4.4.
// A Loop is built once and run once; it is not safe for concurrent Run
// calls.
type Loop struct {
	rx       state.Receiver
	adapter  sdk.Adapter
	renderer backend.Renderer
	logger   *zap.Logger

	periodNs atomic.Int64
	now      func() time.Time
	onTick   func(TickStat)

	stack      state.Stack
	deviceId   string
	t0         time.Time
	generation uint64
}

// Option configures a Loop at construction time.
type Option func(*Loop)

// WithClock overrides the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(l *Loop) { l.now = now }
}

// WithTickObserver registers a callback invoked once per completed tick.
func WithTickObserver(f func(TickStat)) Option {
	return func(l *Loop) { l.onTick = f }
}

func New(rx state.Receiver, adapter sdk.Adapter, renderer backend.Renderer, logger *zap.Logger, opts ...Option) *Loop {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &Loop{rx: rx, adapter: adapter, renderer: renderer, logger: logger, now: time.Now}
	l.periodNs.Store(int64(DefaultPeriod))
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SetPeriod changes the render period. Safe to call from any goroutine
// (e.g. a config hot-reload watcher); no lock is taken on the render
// path itself (spec.md §5).
func (l *Loop) SetPeriod(d time.Duration) {
	if d <= 0 {
		return
	}
	l.periodNs.Store(int64(d))
}

func (l *Loop) Period() time.Duration {
	return time.Duration(l.periodNs.Load())
}

type runState int

const (
	disconnected runState = iota
	setup
	running
)

// Run drives the state machine until ctx is cancelled or the message
// channel closes. A closed channel is treated as fatal and returned as
// ErrChannelClosed; ctx cancellation returns nil.
func (l *Loop) Run(ctx context.Context) error {
	st := disconnected
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		switch st {
		case disconnected:
			ok, err := l.waitConnected(ctx)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			st = setup

		case setup:
			if err := l.doSetup(); err != nil {
				if errors.Is(err, ErrDeviceAbsent) {
					l.logger.Warn("no keyboard found, waiting for reconnect")
					st = disconnected
					continue
				}
				return err
			}
			st = running

		case running:
			stayConnected, err := l.tick(ctx)
			if err != nil {
				return err
			}
			if !stayConnected {
				st = disconnected
			}
		}
	}
}

// waitConnected blocks on the channel, applying every message it sees,
// until either a Connected message arrives (returns true) or ctx is
// cancelled (returns false).
func (l *Loop) waitConnected(ctx context.Context) (bool, error) {
	for {
		select {
		case <-ctx.Done():
			return false, nil
		case msg, ok := <-l.rx:
			if !ok {
				return false, ErrChannelClosed
			}
			l.stack.Apply(msg)
			if msg.Kind == state.Connected {
				return true, nil
			}
		}
	}
}

func (l *Loop) doSetup() error {
	devices, err := l.adapter.EnumerateDevices()
	if err != nil {
		return errors.Wrap(err, "enumerate devices")
	}

	var deviceId string
	found := false
	for _, d := range devices {
		if d.Type == sdk.DeviceKeyboard {
			deviceId = d.Id
			found = true
			break
		}
	}
	if !found {
		return ErrDeviceAbsent
	}

	specs, err := l.adapter.GetLedPositions(deviceId)
	if err != nil {
		return errors.Wrap(err, "get led positions")
	}
	if err := l.renderer.Load(specs); err != nil {
		return errors.Wrap(err, "load framebuffer")
	}

	l.deviceId = deviceId
	l.t0 = l.now()
	l.generation++
	return nil
}

// tick runs one Running iteration (spec.md §4.4): drain, compose,
// export, upload, sleep. The returned bool is false once a NotConnected
// message was seen during drain, so Run falls back to Disconnected after
// this tick's work (already in flight) completes.
func (l *Loop) tick(ctx context.Context) (bool, error) {
	stayConnected := true

drain:
	for {
		select {
		case msg, ok := <-l.rx:
			if !ok {
				return false, ErrChannelClosed
			}
			if msg.Kind == state.NotConnected {
				stayConnected = false
			}
			l.stack.Apply(msg)
		default:
			break drain
		}
	}

	tMs := uint64(l.now().Sub(l.t0).Milliseconds())

	l.renderer.Reset()
	fb := l.renderer.Accessor()
	effects.ApplyGlobal(fb, tMs, l.stack.Global)
	effects.ApplyOverrides(fb, tMs, l.stack.Keyed)

	exported := l.renderer.Export()
	colors := make([]framebuffer.LedColor, len(exported))
	copy(colors, exported)

	uploadErr := l.adapter.SetLedColors(l.deviceId, colors)
	if uploadErr != nil {
		l.logger.Warn("led upload failed", zap.Error(uploadErr))
	}

	if l.onTick != nil {
		l.onTick(TickStat{TMs: tMs, LedCount: len(colors), UploadErr: uploadErr, Generation: l.generation})
	}

	select {
	case <-ctx.Done():
		return false, nil
	case <-time.After(l.Period()):
	}

	return stayConnected, nil
}
