package gate

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-app-scaffold/internal/config"
)

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
)

// HealthCheckBypass forwards requests whose path equals the configured
// health path exactly.
func HealthCheckBypass() Stage {
	return func(r *http.Request, cfg config.StructuredConfig) Decision {
		if cfg.App.HealthPath != "" && r.URL.Path == cfg.App.HealthPath {
			return Allow()
		}
		return Continue()
	}
}

// BearerToken checks the "Authorization: Bearer <token>" header against the
// configured API token. The prefix is case-sensitive. The comparison runs in
// fixed time with respect to the token contents and length, and an empty
// configured token never matches.
func BearerToken() Stage {
	return func(r *http.Request, cfg config.StructuredConfig) Decision {
		values := r.Header.Values(authorizationHeader)
		if len(values) == 0 {
			return Deny(ErrMissingCredential)
		}
		if len(values) > 1 {
			return Deny(ErrMalformedCredential)
		}

		header := values[0]
		if !isVisibleASCII(header) || !strings.HasPrefix(header, bearerPrefix) {
			return Deny(ErrMalformedCredential)
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))

		if !tokensEqual(token, cfg.App.APIToken) {
			return Deny(ErrInvalidCredential)
		}

		return Allow()
	}
}

func tokensEqual(got, expected string) bool {
	if expected == "" {
		return false
	}
	gotSum := sha256.Sum256([]byte(got))
	expectedSum := sha256.Sum256([]byte(expected))
	return subtle.ConstantTimeCompare(gotSum[:], expectedSum[:]) == 1
}

// isVisibleASCII reports whether s consists of printable ASCII and tabs only.
func isVisibleASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\t' {
			continue
		}
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}
