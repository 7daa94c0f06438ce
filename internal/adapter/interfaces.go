// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client the web service uses to talk to the
// API server.
//
// The primary abstraction is [BackendAdapter], which decouples page handlers
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPBackendAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-app-scaffold/internal/config"
	"github.com/MKhiriev/go-app-scaffold/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter defines read access to the API server. Implementations attach
// the bearer token to every request and map non-2xx answers to the sentinel
// errors of this package.
type BackendAdapter interface {
	// GetUsers fetches GET /api/users.
	GetUsers(ctx context.Context) ([]models.User, error)

	// GetItems fetches GET /api/items.
	GetItems(ctx context.Context) ([]models.Item, error)
}

// ConfigSource yields the current configuration. [*config.Holder] satisfies
// it, so a reloaded token is used from the next request on.
type ConfigSource interface {
	Snapshot() config.StructuredConfig
}
