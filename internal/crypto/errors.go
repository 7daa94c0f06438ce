package crypto

import "errors"

var (
	// ErrRandomnessUnavailable is returned when the system CSPRNG fails.
	ErrRandomnessUnavailable = errors.New("secure randomness unavailable")

	// ErrMalformedRecord means the record does not have exactly three
	// colon-separated segments.
	ErrMalformedRecord = errors.New("malformed hash record")

	// ErrInvalidIterationCount means the first segment is not a positive integer.
	ErrInvalidIterationCount = errors.New("invalid iteration count in hash record")

	// ErrInvalidEncoding means the salt or key segment is not valid base64.
	ErrInvalidEncoding = errors.New("invalid encoding in hash record")

	// ErrWeakParameters is returned when a hasher is constructed with fewer
	// than MinIterations iterations.
	ErrWeakParameters = errors.New("pbkdf2 iteration count below minimum")

	// ErrIterationCeiling is returned when a hasher is constructed with a
	// verification ceiling below its own iteration count.
	ErrIterationCeiling = errors.New("pbkdf2 iteration ceiling below iteration count")
)
