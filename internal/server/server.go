package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pin-keeper/internal/config"
	"github.com/MKhiriev/go-pin-keeper/internal/handler"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer binds the router address, so an occupied port fails here
// rather than at RunServer.
func NewServer(handlers *handler.Handlers, cfg config.RouterConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	if err != nil {
		return nil, err
	}

	return &server{httpServer: httpSrv, logger: logger}, nil
}

func (s *server) Addr() string {
	return s.httpServer.listener.Addr().String()
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	serveErr := make(chan error, 1)

	s.logger.Info().Str("address", s.Addr()).Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		err := <-serveErr
		s.logger.Info().Msg("server Shutdown gracefully")
		return err
	case err := <-serveErr:
		return err
	}
}
