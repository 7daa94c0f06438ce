package gate

import "errors"

// Rejection reasons.
var (
	ErrMissingCredential   = errors.New("missing credential")
	ErrMalformedCredential = errors.New("malformed credential")
	ErrInvalidCredential   = errors.New("invalid credential")
)

// ReasonLabel returns a short, stable label for a rejection reason, suitable
// for logs and metric labels.
func ReasonLabel(reason error) string {
	switch {
	case errors.Is(reason, ErrMissingCredential):
		return "missing"
	case errors.Is(reason, ErrMalformedCredential):
		return "malformed"
	case errors.Is(reason, ErrInvalidCredential):
		return "invalid"
	default:
		return "other"
	}
}
