package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-app-scaffold/internal/adapter"
	"github.com/MKhiriev/go-app-scaffold/internal/config"
	"github.com/MKhiriev/go-app-scaffold/internal/handler"
	"github.com/MKhiriev/go-app-scaffold/internal/logger"
	"github.com/MKhiriev/go-app-scaffold/internal/server"
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

	log := logger.NewLogger("web")
	holder, err := config.GetWebConfig(os.Args[1:])
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
		Str("address", cfg.Web.HTTPAddress).
		Str("api_url", cfg.Web.APIURL).
		Msg("starting web server")

	backend, err := adapter.NewHTTPBackendAdapter(holder, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating backend adapter")
	}

	handlers, err := handler.NewWebHandlers(backend, holder, cfg.Web, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	ws := []workers.Worker{server.ReloadOnSignal(holder, log)}
	watcher, err := config.NewWatcher(holder, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating config watcher")
	}
	if watcher != nil {
		ws = append(ws, watcher)
	}

	srv, err := server.NewServer(handlers, cfg, workers.NewWorkers(ws...), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
