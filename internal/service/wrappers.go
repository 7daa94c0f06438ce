package service

// Kept out of interfaces.go: the generated mocks in internal/mock must not
// import this package.

// UserServiceWrapper decorates a UserService, e.g. with validation.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// ItemServiceWrapper decorates an ItemService.
type ItemServiceWrapper interface {
	Wrap(ItemService) ItemService
}

// PasswordServiceWrapper decorates a PasswordService.
type PasswordServiceWrapper interface {
	Wrap(PasswordService) PasswordService
}
