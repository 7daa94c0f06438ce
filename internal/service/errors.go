package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrUserNotFound = errors.New("user not found")
	ErrItemNotFound = errors.New("item not found")

	ErrPasswordHashing     = errors.New("failed to hash password")
	ErrInvalidPasswordHash = errors.New("invalid password hash")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
