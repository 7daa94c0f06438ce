// Package crypto implements one-way password hashing for stored credentials.
//
// Passwords are derived with PBKDF2-HMAC-SHA256 and serialized as a
// [HashRecord] of the form "iterations:base64(salt):base64(key)". Every
// record carries its own iteration count, so raising the cost for new
// records never invalidates old ones.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into storable records and checks
// passwords against them.
//
// Both operations are CPU-bound and safe for concurrent use.
type PasswordHasher interface {
	// Hash derives a new record from password using a fresh random salt.
	// Returns ErrRandomnessUnavailable if no secure salt can be produced.
	Hash(password string) (HashRecord, error)

	// Verify reports whether password matches the serialized record.
	// A structurally invalid or out-of-bounds record yields an error
	// (ErrMalformedRecord, ErrInvalidIterationCount or ErrInvalidEncoding),
	// never false.
	Verify(password string, record string) (bool, error)
}
