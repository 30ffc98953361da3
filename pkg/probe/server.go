package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net"
	"net/http"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"

	"house_price/pkg/contextx"
	"house_price/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const httpServerReadHeaderTimeout = 5 * time.Second

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Server отдаёт liveness (/healthz) и readiness (/ready). Пока не вызван
// MarkReady, /ready отвечает 503.
type Server struct {
	listenAddress string
	options       Options

	mu         sync.RWMutex
	ready      bool
	components map[string]string
}

type Options struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type state struct {
	Options

	Ready      bool              `json:"ready"`
	Components map[string]string `json:"components,omitempty"`
}

func NewServer(
	listenAddress string,
	options Options,
) *Server {
	return &Server{
		listenAddress: listenAddress,
		options:       options,
		components:    make(map[string]string),
	}
}

// SetComponent запоминает состояние компонента (например, "model": "disabled").
func (s *Server) SetComponent(name, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.components[name] = status
}

func (s *Server) MarkReady() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ready = true
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", s.handlerHealthz)
	mux.HandleFunc("/ready", s.handlerReady)

	return mux
}

func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              s.listenAddress,
		Handler:           s.Handler(),
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		if err := httpServer.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger(ctx).Error("httpServer.Shutdown", logx.Error(err))
		}
	}()

	logger(ctx).Info("probe server started", slog.String("address", s.listenAddress))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpServer.ListenAndServe: %w", err)
	}

	logger(ctx).Info("probe server stopped")

	return nil
}

func (s *Server) snapshot() state {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return state{
		Options:    s.options,
		Ready:      s.ready,
		Components: maps.Clone(s.components),
	}
}

func (s *Server) handlerHealthz(w http.ResponseWriter, _ *http.Request) {
	s.write(w, http.StatusOK, s.snapshot())
}

func (s *Server) handlerReady(w http.ResponseWriter, _ *http.Request) {
	st := s.snapshot()

	status := http.StatusOK
	if !st.Ready {
		status = http.StatusServiceUnavailable
	}

	s.write(w, status, st)
}

func (s *Server) write(w http.ResponseWriter, status int, st state) {
	body, _ := json.Marshal(st) //nolint:errcheck,errchkjson

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body) //nolint:errcheck
}
