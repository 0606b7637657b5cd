// Package statusui exposes an HTTP+WebSocket observability surface over
// the render loop's tick telemetry, adapted from the teacher's
// Server.go/WebServer.go chi-router-plus-websocket-hub shape (HMAC device
// auth and the devices.json registry are dropped; there is exactly one
// render core per process here, so there is nothing to authenticate
// against).
package statusui

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/sis-remapper/ledcore/internal/renderloop"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server serves /healthz, /status, and a /ws tick-telemetry feed.
type Server struct {
	logger *zap.Logger
	router chi.Router

	mu       sync.RWMutex
	lastTick renderloop.TickStat
	haveTick bool
	conns    map[uuid.UUID]*websocket.Conn
}

func New(logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{logger: logger, conns: make(map[uuid.UUID]*websocket.Conn)}

	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealthz)
	r.Get("/status", s.handleStatus)
	r.Get("/ws", s.handleWS)
	s.router = r

	return s
}

func (s *Server) Handler() http.Handler { return s.router }

// PublishTick records the latest tick and fans it out to every connected
// websocket client. Called from the render loop's WithTickObserver hook;
// takes no lock on the render path itself beyond this method's own mutex.
func (s *Server) PublishTick(stat renderloop.TickStat) {
	s.mu.Lock()
	s.lastTick = stat
	s.haveTick = true
	conns := make([]*websocket.Conn, 0, len(s.conns))
	for _, c := range s.conns {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	payload, err := json.Marshal(tickView(stat))
	if err != nil {
		return
	}
	for _, c := range conns {
		_ = c.WriteMessage(websocket.TextMessage, payload)
	}
}

type tick struct {
	TMs        uint64 `json:"t_ms"`
	LedCount   int    `json:"led_count"`
	Generation uint64 `json:"generation"`
	UploadErr  string `json:"upload_error,omitempty"`
}

func tickView(s renderloop.TickStat) tick {
	t := tick{TMs: s.TMs, LedCount: s.LedCount, Generation: s.Generation}
	if s.UploadErr != nil {
		t.UploadErr = s.UploadErr.Error()
	}
	return t
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	stat, have := s.lastTick, s.haveTick
	s.mu.RUnlock()

	if !have {
		writeJSON(w, map[string]any{"status": "waiting_for_first_tick"})
		return
	}
	writeJSON(w, tickView(stat))
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	id := uuid.New()

	s.mu.Lock()
	s.conns[id] = conn
	s.mu.Unlock()
	s.logger.Info("statusui: client connected", zap.String("conn_id", id.String()))

	defer func() {
		s.mu.Lock()
		delete(s.conns, id)
		s.mu.Unlock()
		_ = conn.Close()
		s.logger.Info("statusui: client disconnected", zap.String("conn_id", id.String()))
	}()

	conn.SetReadLimit(1 << 16)
	_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
