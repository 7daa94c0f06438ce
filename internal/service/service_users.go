package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-app-scaffold/internal/logger"
	"github.com/MKhiriev/go-app-scaffold/models"
)

// userService serves the mock users. Nothing is persisted: created and
// updated users are synthesized from the request.
type userService struct {
	passwords PasswordService

	logger *logger.Logger
}

func NewUserService(passwords PasswordService, logger *logger.Logger) UserService {
	return &userService{
		passwords: passwords,
		logger:    logger,
	}
}

func (s *userService) GetUsers(ctx context.Context) ([]models.User, error) {
	return mockUsers(), nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return findUser(id)
}

// CreateUser hashes the password and returns the new user with id 3.
func (s *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := s.passwords.HashPassword(ctx, req.Password)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("error hashing password of a new user")
		return models.User{}, fmt.Errorf("error creating user: %w", err)
	}

	user := models.User{
		ID:           nextMockID,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		IsActive:     true,
		IsAdmin:      req.IsAdmin != nil && *req.IsAdmin,
		CreatedAt:    day3,
		UpdatedAt:    day3,
	}

	log.Info().Str("username", user.Username).Msg("created user")
	return user, nil
}

// UpdateUser applies the non-nil fields of req over the mock user.
func (s *userService) UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := findUser(id)
	if err != nil {
		return models.User{}, err
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}
	if req.Password != nil {
		hash, err := s.passwords.HashPassword(ctx, *req.Password)
		if err != nil {
			log.Err(err).Int64("id", id).Msg("error hashing updated password")
			return models.User{}, fmt.Errorf("error updating user: %w", err)
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = day3

	log.Info().Str("username", user.Username).Msg("updated user")
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if _, err := findUser(id); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Int64("id", id).Msg("deleted user")
	return nil
}

func findUser(id int64) (models.User, error) {
	for _, u := range mockUsers() {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("%w: id %d", ErrUserNotFound, id)
}
