package service

import (
	"github.com/MKhiriev/go-app-scaffold/internal/config"
	"github.com/MKhiriev/go-app-scaffold/internal/crypto"
	"github.com/MKhiriev/go-app-scaffold/internal/logger"
	"github.com/MKhiriev/go-app-scaffold/internal/metrics"
	"github.com/MKhiriev/go-app-scaffold/internal/validators"
	"github.com/MKhiriev/go-app-scaffold/internal/workers"
)

type Services struct {
	UserService     UserService
	ItemService     ItemService
	PasswordService PasswordService
	AppInfoService  AppInfoService
}

// NewServices builds the API services. Request validation is layered over
// the user, item and password services.
func NewServices(cfg config.StructuredConfig, pool *workers.Pool, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewPBKDF2Hasher(cfg.App.PBKDF2Iterations, cfg.App.PBKDF2MaxIterations)
	if err != nil {
		return nil, err
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRequestValidator()
	passwords := NewPasswordService(hasher, pool, m, logger)

	return &Services{
		UserService:     NewUserValidationService(validator).Wrap(NewUserService(passwords, logger)),
		ItemService:     NewItemValidationService(validator).Wrap(NewItemService(logger)),
		PasswordService: NewPasswordValidationService(validator).Wrap(passwords),
		AppInfoService:  appInfo,
	}, nil
}
