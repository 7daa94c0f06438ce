package http

import (
	"github.com/MKhiriev/go-app-scaffold/internal/config"
	"github.com/MKhiriev/go-app-scaffold/internal/gate"
	"github.com/MKhiriev/go-app-scaffold/internal/logger"
	"github.com/MKhiriev/go-app-scaffold/internal/metrics"
	"github.com/MKhiriev/go-app-scaffold/internal/service"
)

type Handler struct {
	services *service.Services
	gate     *gate.Pipeline
	metrics  *metrics.Metrics
	cfg      config.Server

	logger *logger.Logger
}

// NewHandler builds the API handler. m may be nil, in which case nothing is
// recorded and /api/metrics answers 404.
func NewHandler(services *service.Services, pipeline *gate.Pipeline, m *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		gate:     pipeline,
		metrics:  m,
		cfg:      cfg,
		logger:   logger,
	}
}
