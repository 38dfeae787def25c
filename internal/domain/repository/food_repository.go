package repository

import (
	"context"
	"errors"

	"mealplanner/internal/domain/entity"
)

// ErrFoodNotFound is returned when no food matches the given key.
var ErrFoodNotFound = errors.New("food not found")

// FoodRepository defines catalog and like-association persistence.
type FoodRepository interface {
	// Create persists a new food entry.
	Create(ctx context.Context, food *entity.Food) error

	// FindByID retrieves a single food by its unique ID.
	FindByID(ctx context.Context, id uint) (*entity.Food, error)

	// FindByName retrieves a single food by its unique name.
	FindByName(ctx context.Context, name string) (*entity.Food, error)

	// ListByCategory retrieves all foods in a category, ordered by name.
	ListByCategory(ctx context.Context, category entity.FoodCategory) ([]*entity.Food, error)

	// Delete removes a food; likes and ingredient rows cascade.
	Delete(ctx context.Context, id uint) error

	// Like records that a user likes a food. Returns ErrDuplicate when the
	// pair already exists.
	Like(ctx context.Context, userID, foodID uint) error

	// Unlike removes a like pair if present.
	Unlike(ctx context.Context, userID, foodID uint) error

	// ListLiked returns all foods liked by the user.
	ListLiked(ctx context.Context, userID uint) ([]*entity.Food, error)
}
