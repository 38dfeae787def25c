// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"mealplanner/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail / ErrDuplicateUsername are returned by Create when the
// corresponding unique constraint is violated. ErrDuplicate is returned when
// a uniqueness violation occurred but the violated column could not be told.
var (
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateUsername = errors.New("username already taken")
	ErrDuplicate         = errors.New("duplicate record")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByLogin retrieves a single user whose email or username matches
	// the given identifier.
	FindByLogin(ctx context.Context, login string) (*entity.User, error)

	// FindByEmailOrUsername retrieves any user matching either value,
	// preferring an email match when both collide with different rows.
	FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.User, error)

	// Create persists a new user entity to the storage and backfills the
	// generated ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user; dependent likes and schedules cascade.
	Delete(ctx context.Context, id uint) error
}
