// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validateServer checks that the merged [StructuredConfig] satisfies all
// invariants of the API server before it is used.
//
// An empty API token is rejected: with an empty shared secret the
// authentication gate would have nothing to compare against.
func (cfg *StructuredConfig) validateServer() error {
	if strings.TrimSpace(cfg.App.APIToken) == "" {
		return fmt.Errorf("%w: empty API token", ErrInvalidAppConfigs)
	}

	if cfg.App.PBKDF2Iterations < MinPBKDF2Iterations {
		return fmt.Errorf("%w: pbkdf2 iterations must be at least %d", ErrInvalidAppConfigs, MinPBKDF2Iterations)
	}

	if cfg.App.PBKDF2MaxIterations < cfg.App.PBKDF2Iterations {
		return fmt.Errorf("%w: pbkdf2 max iterations must be at least %d", ErrInvalidAppConfigs, cfg.App.PBKDF2Iterations)
	}

	if !strings.HasPrefix(cfg.App.HealthPath, "/") {
		return fmt.Errorf("%w: health path must start with '/'", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.HashWorkers < 1 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// validateWeb checks the settings required by the web rendering service.
func (cfg *StructuredConfig) validateWeb() error {
	if cfg.Web.HTTPAddress == "" || cfg.Web.APIURL == "" || cfg.Web.RequestTimeout <= 0 {
		return ErrInvalidWebConfigs
	}

	if strings.TrimSpace(cfg.WebAPIToken()) == "" {
		return fmt.Errorf("%w: empty API token", ErrInvalidWebConfigs)
	}

	return nil
}
