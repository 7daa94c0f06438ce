// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// HashRecord is the parsed form of a stored password hash.
//
// Wire format: "<iterations>:<base64(salt)>:<base64(derived key)>" using
// standard base64 with padding. Records are treated as immutable values; a
// password change produces a new record.
type HashRecord struct {
	Iterations int
	Salt       []byte
	DerivedKey []byte
}

// String serializes the record into its wire format.
func (r HashRecord) String() string {
	return strconv.Itoa(r.Iterations) + ":" +
		base64.StdEncoding.EncodeToString(r.Salt) + ":" +
		base64.StdEncoding.EncodeToString(r.DerivedKey)
}

// ParseHashRecord parses the wire format produced by [HashRecord.String].
//
// Errors are checked in order: segment count ([ErrMalformedRecord]),
// iteration count ([ErrInvalidIterationCount]), then salt and key encoding
// ([ErrInvalidEncoding]). Empty salt or key segments are rejected as
// invalid encoding, since an empty key would match any password.
func ParseHashRecord(s string) (HashRecord, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return HashRecord{}, fmt.Errorf("%w: expected 3 segments, got %d", ErrMalformedRecord, len(parts))
	}

	iterations, err := strconv.Atoi(parts[0])
	if err != nil {
		return HashRecord{}, fmt.Errorf("%w: %w", ErrInvalidIterationCount, err)
	}
	if iterations < 1 {
		return HashRecord{}, fmt.Errorf("%w: %d", ErrInvalidIterationCount, iterations)
	}

	salt, err := decodeSegment(parts[1])
	if err != nil {
		return HashRecord{}, fmt.Errorf("%w: salt: %w", ErrInvalidEncoding, err)
	}

	key, err := decodeSegment(parts[2])
	if err != nil {
		return HashRecord{}, fmt.Errorf("%w: derived key: %w", ErrInvalidEncoding, err)
	}

	return HashRecord{
		Iterations: iterations,
		Salt:       salt,
		DerivedKey: key,
	}, nil
}

// CheckBounds reports whether r has the shape this package produces: a
// [SaltSize] salt, a [KeySize] key and at most maxIterations iterations.
// It returns [ErrInvalidIterationCount] or [ErrInvalidEncoding] otherwise.
func (r HashRecord) CheckBounds(maxIterations int) error {
	if r.Iterations > maxIterations {
		return fmt.Errorf("%w: %d exceeds %d", ErrInvalidIterationCount, r.Iterations, maxIterations)
	}
	if len(r.Salt) != SaltSize {
		return fmt.Errorf("%w: salt is %d bytes, want %d", ErrInvalidEncoding, len(r.Salt), SaltSize)
	}
	if len(r.DerivedKey) != KeySize {
		return fmt.Errorf("%w: derived key is %d bytes, want %d", ErrInvalidEncoding, len(r.DerivedKey), KeySize)
	}
	return nil
}

func decodeSegment(segment string) ([]byte, error) {
	if segment == "" {
		return nil, fmt.Errorf("empty segment")
	}
	return base64.StdEncoding.DecodeString(segment)
}
