package config

import (
	"runtime"
	"time"

	"github.com/MKhiriev/go-app-scaffold/internal/crypto"
)

// MinPBKDF2Iterations is the lowest iteration count accepted for new
// password hash records.
const MinPBKDF2Iterations = crypto.MinIterations

// DefaultHealthPath is the path of the unauthenticated health check.
const DefaultHealthPath = "/api/health"

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment:         "development",
			LogLevel:            "info",
			HealthPath:          DefaultHealthPath,
			PBKDF2Iterations:    MinPBKDF2Iterations,
			PBKDF2MaxIterations: crypto.DefaultMaxIterations,
			Version:             "dev",
		},
		Server: Server{
			HTTPAddress:    "127.0.0.1:8000",
			RequestTimeout: 30 * time.Second,
			CORSOrigins: []string{
				"http://localhost",
				"http://localhost:80",
				"http://localhost:3000",
			},
		},
		Web: Web{
			HTTPAddress:    "127.0.0.1:3000",
			APIURL:         "http://localhost:8000",
			StaticDir:      "./static",
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			HashWorkers: runtime.NumCPU(),
		},
	}
}
