package service

import (
	"context"

	"github.com/MKhiriev/go-app-scaffold/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// UserService manages user accounts. The current implementation serves a
// fixed set of mock users and persists nothing.
type UserService interface {
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// ItemService manages items. Like [UserService] it works on mock data.
type ItemService interface {
	GetItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, id int64) (models.Item, error)
	CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error)
	UpdateItem(ctx context.Context, id int64, req models.UpdateItemRequest) (models.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}

// PasswordService hashes and verifies passwords off the request goroutine.
type PasswordService interface {
	// HashPassword returns the serialized hash record of password.
	HashPassword(ctx context.Context, password string) (string, error)

	// VerifyPassword reports whether password matches record. A corrupt
	// record yields ErrInvalidPasswordHash rather than false.
	VerifyPassword(ctx context.Context, password, record string) (bool, error)
}

// AppInfoService exposes build and runtime information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
