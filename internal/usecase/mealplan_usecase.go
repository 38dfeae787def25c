package usecase

import (
	"context"
	"time"

	"mealplanner/internal/domain/entity"
)

// ScheduleMealInput defines the data required to put a meal on a user's plan.
type ScheduleMealInput struct {
	UserID     uint
	MealID     uint
	Date       time.Time
	MealNumber int
}

// AddIngredientInput defines the data required to attach a food to a meal.
type AddIngredientInput struct {
	MealID   uint
	FoodID   uint
	Quantity float64
	Unit     string
	Notes    string
}

// MealPlanUsecase defines meal-planning business operations: liked foods,
// scheduling, and meal composition with macro total upkeep.
type MealPlanUsecase interface {
	LikeFood(ctx context.Context, userID, foodID uint) error
	UnlikeFood(ctx context.Context, userID, foodID uint) error
	LikedFoods(ctx context.Context, userID uint) ([]*entity.Food, error)

	ScheduleMeal(ctx context.Context, input ScheduleMealInput) (*entity.ScheduledMeal, error)
	MealsForDate(ctx context.Context, userID uint, date time.Time) ([]*entity.ScheduledMeal, error)

	AddIngredient(ctx context.Context, input AddIngredientInput) (*entity.Meal, error)
	RemoveIngredient(ctx context.Context, mealID, foodID uint) (*entity.Meal, error)
}
