// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-app-scaffold/internal/crypto"
	"github.com/MKhiriev/go-app-scaffold/internal/logger"
	"github.com/MKhiriev/go-app-scaffold/internal/metrics"
	"github.com/MKhiriev/go-app-scaffold/internal/workers"
)

// passwordService runs the CPU-bound hasher on a bounded worker pool so
// that hashing load never occupies request goroutines beyond waiting.
type passwordService struct {
	hasher  crypto.PasswordHasher
	pool    *workers.Pool
	metrics *metrics.Metrics

	logger *logger.Logger
}

// NewPasswordService wires hasher to pool. metrics may be nil.
func NewPasswordService(hasher crypto.PasswordHasher, pool *workers.Pool, m *metrics.Metrics, logger *logger.Logger) PasswordService {
	return &passwordService{
		hasher:  hasher,
		pool:    pool,
		metrics: m,
		logger:  logger,
	}
}

// HashPassword implements [PasswordService]. If ctx ends first the caller
// gets ctx.Err(); the hash still completes in the pool.
func (s *passwordService) HashPassword(ctx context.Context, password string) (string, error) {
	start := time.Now()
	record, err := workers.Do(ctx, s.pool, func() (crypto.HashRecord, error) {
		return s.hasher.Hash(password)
	})
	s.metrics.ObservePasswordOperation("hash", resultLabel(err), time.Since(start))

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	return record.String(), nil
}

// VerifyPassword implements [PasswordService].
func (s *passwordService) VerifyPassword(ctx context.Context, password, record string) (bool, error) {
	start := time.Now()
	ok, err := workers.Do(ctx, s.pool, func() (bool, error) {
		return s.hasher.Verify(password, record)
	})
	s.metrics.ObservePasswordOperation("verify", resultLabel(err), time.Since(start))

	if err != nil {
		if isRecordError(err) {
			logger.FromContext(ctx).Warn().Err(err).Msg("stored password hash is corrupt")
			return false, fmt.Errorf("%w: %w", ErrInvalidPasswordHash, err)
		}
		return false, err
	}

	return ok, nil
}

func isRecordError(err error) bool {
	return errors.Is(err, crypto.ErrMalformedRecord) ||
		errors.Is(err, crypto.ErrInvalidIterationCount) ||
		errors.Is(err, crypto.ErrInvalidEncoding)
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "abandoned"
	default:
		return "error"
	}
}
