package services

import (
	"errors"
	"fmt"
)

var (
	ErrTableNotFound        = errors.New("table not found")
	ErrTableUnavailable     = errors.New("table is not available")
	ErrDuplicateTableNumber = errors.New("table number already exists")
	ErrMenuItemNotFound     = errors.New("menu item not found")
	ErrItemUnavailable      = errors.New("menu item is not available")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrAdminNotFound        = errors.New("admin not found")
	ErrDuplicateUsername    = errors.New("username already exists")
	ErrProtectedAdmin       = errors.New("the bootstrap admin cannot be removed")
	ErrInvalidCredentials   = errors.New("invalid credentials")
)

// ValidationError rejects a request before anything is written.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrTableNotFound) ||
		errors.Is(err, ErrMenuItemNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrAdminNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrTableUnavailable) ||
		errors.Is(err, ErrDuplicateTableNumber) ||
		errors.Is(err, ErrItemUnavailable) ||
		errors.Is(err, ErrDuplicateUsername) ||
		errors.Is(err, ErrProtectedAdmin)
}
