package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"time"

	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/config"
	"github.com/PhysikOnline-FFM/fpraktikum2.0/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server owns the root chi mux and the listener
type Server struct {
	addr string
	mux  *chi.Mux
	srv  *stdhttp.Server
}

// NewServer listens on ADDR, or on :PORT when only a port is set
func NewServer(cfg config.Conf) *Server {
	addr := cfg.MayString("ADDR", ":"+cfg.MayString("PORT", "4000"))
	m := chi.NewRouter()
	return &Server{
		addr: addr,
		mux:  m,
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: cfg.MayDuration("READ_HEADER_TIMEOUT", 10*time.Second),
		},
	}
}

// Router returns the mux behind the Router seam
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Handler is the root handler, tests serve it without listening
func (s *Server) Handler() stdhttp.Handler { return s.mux }

// Run starts the server and blocks until it stops or ctx is done
// a done ctx triggers a graceful shutdown bounded by ShutdownTimeout
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")
	log.Info().Str("addr", s.addr).Msg("http listening")

	errc := make(chan error, 1)
	go func() { errc <- s.srv.ListenAndServe() }()

	select {
	case err := <-errc:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info().Msg("http shutting down")
		shCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return s.srv.Shutdown(shCtx)
	}
}

// ShutdownTimeout bounds the drain after the run context is done
var ShutdownTimeout = 10 * time.Second
