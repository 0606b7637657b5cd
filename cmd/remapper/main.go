// Command remapper is the render core's process entry point: it loads
// tunables, builds the logger and status surface, selects a back-end,
// wires the platform SDK adapter, and runs the render loop until
// terminated.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/sis-remapper/ledcore/internal/backend"
	"github.com/sis-remapper/ledcore/internal/config"
	"github.com/sis-remapper/ledcore/internal/logger"
	"github.com/sis-remapper/ledcore/internal/renderloop"
	"github.com/sis-remapper/ledcore/internal/sdk"
	"github.com/sis-remapper/ledcore/internal/state"
	"github.com/sis-remapper/ledcore/internal/statusui"
)

func main() {
	configPath := flag.String("config", "", "path to the tunables file")
	flag.Parse()

	tun, loader, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	log, err := logger.New(tun.Logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "build logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	renderer, err := backend.Select(backend.Kind(tun.Backend))
	if err != nil {
		// BackendUnavailable: abort with no fallback (spec.md §7).
		log.Fatal("selected backend unavailable", zap.String("backend", string(tun.Backend)), zap.Error(err))
	}

	adapter := newAdapter(tun.Strip)

	tx, rx := state.NewChannel()
	ui := statusui.New(log)

	loop := renderloop.New(rx, adapter, renderer, log, renderloop.WithTickObserver(ui.PublishTick))
	loop.SetPeriod(tun.RenderPeriod)

	loader.Watch(func(t config.Tunables) {
		loop.SetPeriod(t.RenderPeriod)
		log.Info("tunables reloaded", zap.Duration("render_period", t.RenderPeriod))
	})

	onState := func(s sdk.SessionState) {
		// The SDK callback's sole job is forwarding a session-state
		// transition onto the render channel (spec.md §4.6).
		if s == sdk.Connected {
			tx <- state.MsgConnected()
		} else {
			tx <- state.MsgNotConnected()
		}
	}
	if err := adapter.Connect(onState); err != nil {
		log.Warn("initial adapter connect failed, waiting for reconnect", zap.Error(err))
	}

	httpSrv := &http.Server{Addr: tun.Status.Addr, Handler: ui.Handler()}
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("status server stopped", zap.Error(err))
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		<-ctx.Done()
		_ = httpSrv.Shutdown(context.Background())
		_ = adapter.Close()
	}()

	if err := loop.Run(ctx); err != nil {
		log.Fatal("render loop exited with error", zap.Error(err))
	}
}
