// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// MinIterations is the lowest PBKDF2 iteration count accepted for new records.
	MinIterations = 100_000

	// SaltSize is the length of a freshly generated salt in bytes.
	SaltSize = 16

	// KeySize is the length of a freshly derived key in bytes (SHA-256 output).
	KeySize = 32

	// DefaultMaxIterations is the default ceiling on the iteration count of
	// records accepted by Verify.
	DefaultMaxIterations = 1_000_000
)

// pbkdf2Hasher is the PBKDF2-HMAC-SHA256 implementation of [PasswordHasher].
type pbkdf2Hasher struct {
	iterations    int
	maxIterations int

	// random is the salt source; crypto/rand.Reader outside of tests.
	random io.Reader
}

// NewPBKDF2Hasher constructs a [PasswordHasher] that stamps new records with
// the given iteration count. Counts below [MinIterations] are rejected with
// [ErrWeakParameters]; a maxIterations below iterations with
// [ErrIterationCeiling].
//
// Verification uses the iteration count stored in the record, so a hasher
// can check records created with any earlier setting up to maxIterations.
func NewPBKDF2Hasher(iterations, maxIterations int) (PasswordHasher, error) {
	if iterations < MinIterations {
		return nil, fmt.Errorf("%w: %d < %d", ErrWeakParameters, iterations, MinIterations)
	}
	if maxIterations < iterations {
		return nil, fmt.Errorf("%w: %d < %d", ErrIterationCeiling, maxIterations, iterations)
	}

	return &pbkdf2Hasher{
		iterations:    iterations,
		maxIterations: maxIterations,
		random:        rand.Reader,
	}, nil
}

// Hash implements [PasswordHasher].
func (h *pbkdf2Hasher) Hash(password string) (HashRecord, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return HashRecord{}, fmt.Errorf("%w: %w", ErrRandomnessUnavailable, err)
	}

	return HashRecord{
		Iterations: h.iterations,
		Salt:       salt,
		DerivedKey: deriveKey(password, salt, h.iterations, KeySize),
	}, nil
}

// Verify implements [PasswordHasher]. Records outside the hasher's bounds
// are rejected before any key is derived. The derived key is compared with
// [subtle.ConstantTimeCompare].
func (h *pbkdf2Hasher) Verify(password string, record string) (bool, error) {
	parsed, err := ParseHashRecord(record)
	if err != nil {
		return false, err
	}
	if err := parsed.CheckBounds(h.maxIterations); err != nil {
		return false, err
	}

	derived := deriveKey(password, parsed.Salt, parsed.Iterations, KeySize)

	return subtle.ConstantTimeCompare(derived, parsed.DerivedKey) == 1, nil
}

func deriveKey(password string, salt []byte, iterations, keyLen int) []byte {
	return pbkdf2.Key([]byte(password), salt, iterations, keyLen, sha256.New)
}
