package repository

import (
	"context"
	"errors"
	"time"

	"mealplanner/internal/domain/entity"
)

// ErrMealNotFound is returned when no meal matches the given key.
var ErrMealNotFound = errors.New("meal not found")

// MealRepository defines meal, scheduling, and ingredient persistence.
type MealRepository interface {
	// Create persists a new meal.
	Create(ctx context.Context, meal *entity.Meal) error

	// FindByID retrieves a single meal by its unique ID.
	FindByID(ctx context.Context, id uint) (*entity.Meal, error)

	// Update modifies an existing meal, including its macro totals.
	Update(ctx context.Context, meal *entity.Meal) error

	// Delete removes a meal; schedules and ingredient rows cascade.
	Delete(ctx context.Context, id uint) error

	// Schedule records a meal on a user's plan. Duplicate rows for the same
	// user, meal, date, and slot are allowed.
	Schedule(ctx context.Context, scheduled *entity.ScheduledMeal) error

	// ScheduledForDate returns the user's schedule entries for a single
	// calendar date, ordered by meal number.
	ScheduledForDate(ctx context.Context, userID uint, date time.Time) ([]*entity.ScheduledMeal, error)

	// AddIngredient attaches a food to a meal. Returns ErrDuplicate when the
	// food is already an ingredient of the meal.
	AddIngredient(ctx context.Context, ing *entity.MealIngredient) error

	// RemoveIngredient detaches a food from a meal if present.
	RemoveIngredient(ctx context.Context, mealID, foodID uint) error

	// ListIngredients returns all ingredient rows of a meal.
	ListIngredients(ctx context.Context, mealID uint) ([]*entity.MealIngredient, error)
}
