package postgres

import (
	"context"
	"time"

	"mealplanner/internal/domain/entity"
	"mealplanner/internal/domain/repository"
	"mealplanner/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// mealRepository implements the domain.MealRepository interface using GORM.
type mealRepository struct {
	db *gorm.DB
}

// NewMealRepository is the constructor for mealRepository.
func NewMealRepository(db *gorm.DB) repository.MealRepository {
	return &mealRepository{db: db}
}

// Create persists a new meal.
func (repo *mealRepository) Create(ctx context.Context, meal *entity.Meal) error {
	mealM := fromMealDomain(meal)

	if err := repo.db.WithContext(ctx).Create(mealM).Error; err != nil {
		return errors.Wrap(err, "failed to create meal")
	}

	meal.ID = mealM.ID
	meal.CreatedAt = mealM.CreatedAt
	meal.UpdatedAt = mealM.UpdatedAt

	return nil
}

// FindByID retrieves a single meal by its unique ID, preloading ingredients.
func (repo *mealRepository) FindByID(ctx context.Context, id uint) (*entity.Meal, error) {
	mealM := new(model.MealModel)
	err := repo.db.WithContext(ctx).
		Preload("Ingredients").
		First(mealM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMealNotFound
		}

		return nil, errors.Wrap(err, "failed to find meal by id")
	}

	return toMealDomain(mealM), nil
}

// Update modifies an existing meal, including its macro totals.
func (repo *mealRepository) Update(ctx context.Context, meal *entity.Meal) error {
	mealM := fromMealDomain(meal)
	// Ingredient rows are managed through AddIngredient/RemoveIngredient.
	mealM.Ingredients = nil

	if err := repo.db.WithContext(ctx).Save(mealM).Error; err != nil {
		return errors.Wrap(err, "failed to update meal")
	}

	meal.UpdatedAt = mealM.UpdatedAt

	return nil
}

// Delete removes a meal row. Schedules and ingredient rows cascade.
func (repo *mealRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.MealModel{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete meal")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMealNotFound
	}

	return nil
}

// Schedule records a meal on a user's plan. Duplicate rows are allowed.
func (repo *mealRepository) Schedule(ctx context.Context, scheduled *entity.ScheduledMeal) error {
	scheduledM := &model.UserMealModel{
		UserID:     scheduled.UserID,
		MealID:     scheduled.MealID,
		Date:       truncateToDate(scheduled.Date),
		MealNumber: scheduled.MealNumber,
	}

	if err := repo.db.WithContext(ctx).Create(scheduledM).Error; err != nil {
		return errors.Wrap(err, "failed to schedule meal")
	}

	scheduled.ID = scheduledM.ID
	scheduled.Date = scheduledM.Date
	scheduled.CreatedAt = scheduledM.CreatedAt

	return nil
}

// ScheduledForDate returns the user's schedule entries for a single calendar
// date, ordered by meal number then insertion order.
func (repo *mealRepository) ScheduledForDate(ctx context.Context, userID uint, date time.Time) ([]*entity.ScheduledMeal, error) {
	var scheduledMs []*model.UserMealModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, truncateToDate(date)).
		Order("meal_number, id").
		Find(&scheduledMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list scheduled meals")
	}

	scheduled := make([]*entity.ScheduledMeal, 0, len(scheduledMs))
	for _, scheduledM := range scheduledMs {
		scheduled = append(scheduled, &entity.ScheduledMeal{
			ID:         scheduledM.ID,
			UserID:     scheduledM.UserID,
			MealID:     scheduledM.MealID,
			Date:       scheduledM.Date,
			MealNumber: scheduledM.MealNumber,
			CreatedAt:  scheduledM.CreatedAt,
		})
	}

	return scheduled, nil
}

// AddIngredient attaches a food to a meal.
func (repo *mealRepository) AddIngredient(ctx context.Context, ing *entity.MealIngredient) error {
	ingM := &model.MealIngredientModel{
		MealID:   ing.MealID,
		FoodID:   ing.FoodID,
		Quantity: ing.Quantity,
		Unit:     ing.Unit,
		Notes:    ing.Notes,
	}

	if err := repo.db.WithContext(ctx).Create(ingM).Error; err != nil {
		if _, ok := duplicateKeyDetail(err); ok {
			return repository.ErrDuplicate
		}

		return errors.Wrap(err, "failed to add ingredient")
	}

	ing.ID = ingM.ID
	ing.CreatedAt = ingM.CreatedAt

	return nil
}

// RemoveIngredient detaches a food from a meal if present.
func (repo *mealRepository) RemoveIngredient(ctx context.Context, mealID, foodID uint) error {
	err := repo.db.WithContext(ctx).
		Where("meal_id = ? AND food_id = ?", mealID, foodID).
		Delete(&model.MealIngredientModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to remove ingredient")
	}

	return nil
}

// ListIngredients returns all ingredient rows of a meal.
func (repo *mealRepository) ListIngredients(ctx context.Context, mealID uint) ([]*entity.MealIngredient, error) {
	var ingMs []*model.MealIngredientModel
	err := repo.db.WithContext(ctx).
		Where("meal_id = ?", mealID).
		Order("id").
		Find(&ingMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ingredients")
	}

	ings := make([]*entity.MealIngredient, 0, len(ingMs))
	for _, ingM := range ingMs {
		ings = append(ings, toMealIngredientDomain(ingM))
	}

	return ings, nil
}

// truncateToDate strips the time-of-day component, keeping the date in UTC.
func truncateToDate(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// toMealDomain converts a GORM MealModel to a domain Meal entity.
func toMealDomain(data *model.MealModel) *entity.Meal {
	if data == nil {
		return nil
	}

	ings := make([]*entity.MealIngredient, 0, len(data.Ingredients))
	for i := range data.Ingredients {
		ings = append(ings, toMealIngredientDomain(&data.Ingredients[i]))
	}

	return &entity.Meal{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		TotalCalories: data.TotalCalories,
		TotalProtein:  data.TotalProtein,
		TotalCarbs:    data.TotalCarbs,
		TotalFat:      data.TotalFat,
		PrepTime:      data.PrepTime,
		Ingredients:   ings,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromMealDomain converts a domain Meal entity to a GORM MealModel for persistence.
func fromMealDomain(data *entity.Meal) *model.MealModel {
	if data == nil {
		return nil
	}

	return &model.MealModel{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		TotalCalories: data.TotalCalories,
		TotalProtein:  data.TotalProtein,
		TotalCarbs:    data.TotalCarbs,
		TotalFat:      data.TotalFat,
		PrepTime:      data.PrepTime,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toMealIngredientDomain(data *model.MealIngredientModel) *entity.MealIngredient {
	if data == nil {
		return nil
	}

	return &entity.MealIngredient{
		ID:        data.ID,
		MealID:    data.MealID,
		FoodID:    data.FoodID,
		Quantity:  data.Quantity,
		Unit:      data.Unit,
		Notes:     data.Notes,
		CreatedAt: data.CreatedAt,
	}
}
