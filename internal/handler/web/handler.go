package web

import (
	"github.com/MKhiriev/go-app-scaffold/internal/adapter"
	"github.com/MKhiriev/go-app-scaffold/internal/logger"
)

type Handler struct {
	backend   adapter.BackendAdapter
	source    adapter.ConfigSource
	renderer  *renderer
	staticDir string

	logger *logger.Logger
}

// NewHandler builds the web handler. The environment label shown on every
// page is read from source per request; staticDir is fixed at startup.
func NewHandler(backend adapter.BackendAdapter, source adapter.ConfigSource, logger *logger.Logger) (*Handler, error) {
	r, err := newRenderer()
	if err != nil {
		return nil, err
	}

	logger.Info().Msg("web handler created")
	return &Handler{
		backend:   backend,
		source:    source,
		renderer:  r,
		staticDir: source.Snapshot().Web.StaticDir,
		logger:    logger,
	}, nil
}
