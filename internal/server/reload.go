package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-app-scaffold/internal/config"
	"github.com/MKhiriev/go-app-scaffold/internal/logger"
	"github.com/MKhiriev/go-app-scaffold/internal/workers"
)

// ReloadOnSignal returns a worker that reloads holder every time the process
// receives SIGHUP. A failed reload is logged and the previous configuration
// stays in effect.
func ReloadOnSignal(holder *config.Holder, logger *logger.Logger) workers.Worker {
	return workers.WorkerFunc(func(ctx context.Context) {
		signals := make(chan os.Signal, 1)
		signal.Notify(signals, syscall.SIGHUP)
		defer signal.Stop(signals)

		reloadOn(holder, logger, signals).Run(ctx)
	})
}

func reloadOn(holder *config.Holder, logger *logger.Logger, signals <-chan os.Signal) workers.Worker {
	return workers.WorkerFunc(func(ctx context.Context) {
		for {
			select {
			case <-ctx.Done():
				return
			case <-signals:
				if err := holder.Reload(); err != nil {
					logger.Err(err).Msg("config reload failed, keeping previous config")
					continue
				}
				logger.Info().Msg("config reloaded on signal")
			}
		}
	})
}
