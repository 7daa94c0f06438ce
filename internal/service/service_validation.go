package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-app-scaffold/internal/validators"
	"github.com/MKhiriev/go-app-scaffold/models"
)

// UserValidationService rejects malformed create and update requests
// before they reach the wrapped [UserService].
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService(validator validators.Validator) UserServiceWrapper {
	return &UserValidationService{validator: validator}
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}

func (v *UserValidationService) GetUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.GetUsers(ctx)
}

func (v *UserValidationService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return v.inner.GetUser(ctx, id)
}

func (v *UserValidationService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateUser(ctx, req)
}

func (v *UserValidationService) UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.UpdateUser(ctx, id, req)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, id int64) error {
	return v.inner.DeleteUser(ctx, id)
}

// ItemValidationService is the [ItemService] counterpart of
// [UserValidationService].
type ItemValidationService struct {
	inner     ItemService
	validator validators.Validator
}

func NewItemValidationService(validator validators.Validator) ItemServiceWrapper {
	return &ItemValidationService{validator: validator}
}

func (v *ItemValidationService) Wrap(inner ItemService) ItemService {
	v.inner = inner
	return v
}

func (v *ItemValidationService) GetItems(ctx context.Context) ([]models.Item, error) {
	return v.inner.GetItems(ctx)
}

func (v *ItemValidationService) GetItem(ctx context.Context, id int64) (models.Item, error) {
	return v.inner.GetItem(ctx, id)
}

func (v *ItemValidationService) CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateItem(ctx, req)
}

func (v *ItemValidationService) UpdateItem(ctx context.Context, id int64, req models.UpdateItemRequest) (models.Item, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.UpdateItem(ctx, id, req)
}

func (v *ItemValidationService) DeleteItem(ctx context.Context, id int64) error {
	return v.inner.DeleteItem(ctx, id)
}

// PasswordValidationService rejects verify requests with empty fields
// before they are queued on the hashing pool.
type PasswordValidationService struct {
	inner     PasswordService
	validator validators.Validator
}

func NewPasswordValidationService(validator validators.Validator) PasswordServiceWrapper {
	return &PasswordValidationService{validator: validator}
}

func (v *PasswordValidationService) Wrap(inner PasswordService) PasswordService {
	v.inner = inner
	return v
}

func (v *PasswordValidationService) HashPassword(ctx context.Context, password string) (string, error) {
	return v.inner.HashPassword(ctx, password)
}

func (v *PasswordValidationService) VerifyPassword(ctx context.Context, password, record string) (bool, error) {
	req := models.VerifyPasswordRequest{Password: password, PasswordHash: record}
	if err := v.validator.Validate(ctx, req); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.VerifyPassword(ctx, password, record)
}
