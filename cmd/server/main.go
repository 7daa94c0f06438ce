package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-app-scaffold/internal/config"
	"github.com/MKhiriev/go-app-scaffold/internal/gate"
	"github.com/MKhiriev/go-app-scaffold/internal/handler"
	"github.com/MKhiriev/go-app-scaffold/internal/logger"
	"github.com/MKhiriev/go-app-scaffold/internal/metrics"
	"github.com/MKhiriev/go-app-scaffold/internal/server"
	"github.com/MKhiriev/go-app-scaffold/internal/service"
	"github.com/MKhiriev/go-app-scaffold/internal/workers"
	"github.com/MKhiriev/go-app-scaffold/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("api-server")
	holder, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	cfg := holder.Snapshot()
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	holder.OnReload(func(cfg config.StructuredConfig) {
		if err := logger.SetLevel(cfg.App.LogLevel); err != nil {
			log.Err(err).Msg("keeping previous log level")
		}
	})

	log.Info().
		Str("environment", cfg.App.Environment).
		Str("address", cfg.Server.HTTPAddress).
		Int("hash_workers", cfg.Workers.HashWorkers).
		Msg("starting api server")

	m := metrics.New()
	pool := workers.NewPool(cfg.Workers.HashWorkers)
	defer pool.Close()

	services, err := service.NewServices(cfg, pool, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewAPIHandlers(services, gate.NewAPIPipeline(holder), m, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	background, err := reloaders(holder, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating config watcher")
	}

	srv, err := server.NewServer(handlers, cfg, background, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// reloaders returns the SIGHUP reloader and, when a JSON config file is in
// use, the file watcher.
func reloaders(holder *config.Holder, log *logger.Logger) (*workers.Workers, error) {
	ws := []workers.Worker{server.ReloadOnSignal(holder, log)}

	watcher, err := config.NewWatcher(holder, log)
	if err != nil {
		return nil, err
	}
	if watcher != nil {
		ws = append(ws, watcher)
	}

	return workers.NewWorkers(ws...), nil
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(info.BuildCommit()))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
