package handler

import (
	"github.com/MKhiriev/go-app-scaffold/internal/adapter"
	"github.com/MKhiriev/go-app-scaffold/internal/config"
	"github.com/MKhiriev/go-app-scaffold/internal/gate"
	"github.com/MKhiriev/go-app-scaffold/internal/handler/http"
	"github.com/MKhiriev/go-app-scaffold/internal/handler/web"
	"github.com/MKhiriev/go-app-scaffold/internal/logger"
	"github.com/MKhiriev/go-app-scaffold/internal/metrics"
	"github.com/MKhiriev/go-app-scaffold/internal/service"
)

// Handlers holds the transport handlers of one process. The API server sets
// API, the web service sets Web.
type Handlers struct {
	API *http.Handler
	Web *web.Handler
}

func NewAPIHandlers(services *service.Services, pipeline *gate.Pipeline, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new api handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{API: http.NewHandler(services, pipeline, m, cfg, logger)}, nil
}

func NewWebHandlers(backend adapter.BackendAdapter, source adapter.ConfigSource, cfg config.Web, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new web handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	h, err := web.NewHandler(backend, source, logger)
	if err != nil {
		return nil, err
	}

	return &Handlers{Web: h}, nil
}
