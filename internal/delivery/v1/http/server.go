package http

import (
	"context"
	"net"
	"net/http"

	"github.com/DRSN-tech/storefront/internal/cfg"
)

const maxHeaderBytes = 64 << 10

// Server — HTTP-сервер витрины. Останавливается через closer приложения.
type Server struct {
	srv *http.Server
}

func NewServer(handler http.Handler, cfg *cfg.HTTPConfig) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              net.JoinHostPort("", cfg.Port),
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadTimeout,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			MaxHeaderBytes:    maxHeaderBytes,
		},
	}
}

func (s *Server) Addr() string {
	return s.srv.Addr
}

// Run блокируется до остановки. После Stop возвращает http.ErrServerClosed.
func (s *Server) Run() error {
	return s.srv.ListenAndServe()
}

// Stop дожидается активных запросов, пока не истечёт ctx.
func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
