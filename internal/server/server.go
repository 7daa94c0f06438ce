package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-app-scaffold/internal/config"
	"github.com/MKhiriev/go-app-scaffold/internal/handler"
	"github.com/MKhiriev/go-app-scaffold/internal/logger"
	"github.com/MKhiriev/go-app-scaffold/internal/workers"
)

type server struct {
	httpServers []*httpServer
	background  *workers.Workers
	logger      *logger.Logger
}

// NewServer creates one HTTP server per handler present in handlers. The
// background workers run for as long as the servers do; background may be
// nil.
func NewServer(handlers *handler.Handlers, cfg config.StructuredConfig, background *workers.Workers, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{background: background, logger: logger}

	if handlers != nil && handlers.API != nil && cfg.Server.HTTPAddress != "" {
		servers.httpServers = append(servers.httpServers,
			newHTTPServer("api", handlers.API.Init(), cfg.Server.HTTPAddress, logger))
	}
	if handlers != nil && handlers.Web != nil && cfg.Web.HTTPAddress != "" {
		servers.httpServers = append(servers.httpServers,
			newHTTPServer("web", handlers.Web.Init(), cfg.Web.HTTPAddress, logger))
	}

	if len(servers.httpServers) == 0 {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	for _, srv := range s.httpServers {
		srv.Shutdown()
	}
}

// run serves until ctx is done, then shuts the servers down and waits for
// the background workers to return.
func (s *server) run(ctx context.Context) {
	var wg sync.WaitGroup

	if s.background != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.background.Run(ctx)
		}()
	}

	for _, srv := range s.httpServers {
		s.logger.Info().Str("server", srv.name).Msg("Launching HTTP server")
		wg.Add(1)
		go func() {
			defer wg.Done()
			srv.RunServer()
		}()
	}

	<-ctx.Done()

	s.Shutdown()
	wg.Wait()

	s.logger.Info().Msg("server Shutdown gracefully")
}
