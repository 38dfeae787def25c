package postgres

import (
	"context"

	"mealplanner/internal/domain/entity"
	"mealplanner/internal/domain/repository"
	"mealplanner/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// foodRepository implements the domain.FoodRepository interface using GORM.
type foodRepository struct {
	db *gorm.DB
}

// NewFoodRepository is the constructor for foodRepository.
func NewFoodRepository(db *gorm.DB) repository.FoodRepository {
	return &foodRepository{db: db}
}

// Create persists a new food entry.
func (repo *foodRepository) Create(ctx context.Context, food *entity.Food) error {
	foodM := fromFoodDomain(food)

	if err := repo.db.WithContext(ctx).Create(foodM).Error; err != nil {
		if _, ok := duplicateKeyDetail(err); ok {
			return repository.ErrDuplicate
		}

		return errors.Wrap(err, "failed to create food")
	}

	food.ID = foodM.ID
	food.CreatedAt = foodM.CreatedAt
	food.UpdatedAt = foodM.UpdatedAt

	return nil
}

// FindByID retrieves a single food by its unique ID.
func (repo *foodRepository) FindByID(ctx context.Context, id uint) (*entity.Food, error) {
	foodM := new(model.FoodModel)
	if err := repo.db.WithContext(ctx).First(foodM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFoodNotFound
		}

		return nil, errors.Wrap(err, "failed to find food by id")
	}

	return toFoodDomain(foodM), nil
}

// FindByName retrieves a single food by its unique name.
func (repo *foodRepository) FindByName(ctx context.Context, name string) (*entity.Food, error) {
	foodM := new(model.FoodModel)
	if err := repo.db.WithContext(ctx).Where("name = ?", name).First(foodM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFoodNotFound
		}

		return nil, errors.Wrap(err, "failed to find food by name")
	}

	return toFoodDomain(foodM), nil
}

// ListByCategory retrieves all foods in a category, ordered by name.
func (repo *foodRepository) ListByCategory(ctx context.Context, category entity.FoodCategory) ([]*entity.Food, error) {
	var foodMs []*model.FoodModel
	err := repo.db.WithContext(ctx).
		Where("category = ?", category.String()).
		Order("name").
		Find(&foodMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list foods by category")
	}

	foods := make([]*entity.Food, 0, len(foodMs))
	for _, foodM := range foodMs {
		foods = append(foods, toFoodDomain(foodM))
	}

	return foods, nil
}

// Delete removes a food row. Likes and ingredient rows cascade at the database.
func (repo *foodRepository) Delete(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.FoodModel{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete food")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFoodNotFound
	}

	return nil
}

// Like records that a user likes a food.
func (repo *foodRepository) Like(ctx context.Context, userID, foodID uint) error {
	likeM := &model.FoodUserLikeModel{UserID: userID, FoodID: foodID}

	if err := repo.db.WithContext(ctx).Create(likeM).Error; err != nil {
		if _, ok := duplicateKeyDetail(err); ok {
			return repository.ErrDuplicate
		}

		return errors.Wrap(err, "failed to like food")
	}

	return nil
}

// Unlike removes a like pair if present. Removing an absent pair is a no-op.
func (repo *foodRepository) Unlike(ctx context.Context, userID, foodID uint) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND food_id = ?", userID, foodID).
		Delete(&model.FoodUserLikeModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to unlike food")
	}

	return nil
}

// ListLiked returns all foods liked by the user, ordered by name.
func (repo *foodRepository) ListLiked(ctx context.Context, userID uint) ([]*entity.Food, error) {
	var foodMs []*model.FoodModel
	err := repo.db.WithContext(ctx).
		Joins("JOIN food_user_likes ON food_user_likes.food_id = foods.id").
		Where("food_user_likes.user_id = ?", userID).
		Order("foods.name").
		Find(&foodMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list liked foods")
	}

	foods := make([]*entity.Food, 0, len(foodMs))
	for _, foodM := range foodMs {
		foods = append(foods, toFoodDomain(foodM))
	}

	return foods, nil
}

// toFoodDomain converts a GORM FoodModel to a domain Food entity.
func toFoodDomain(data *model.FoodModel) *entity.Food {
	if data == nil {
		return nil
	}

	return &entity.Food{
		ID:              data.ID,
		Name:            data.Name,
		Category:        entity.FoodCategory(data.Category),
		Calories:        data.Calories,
		Protein:         data.Protein,
		Carbs:           data.Carbs,
		Fat:             data.Fat,
		Fiber:           data.Fiber,
		ServingSize:     data.ServingSize,
		Unit:            data.Unit,
		NonInflammatory: data.NonInflammatory,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromFoodDomain converts a domain Food entity to a GORM FoodModel for persistence.
func fromFoodDomain(data *entity.Food) *model.FoodModel {
	if data == nil {
		return nil
	}

	return &model.FoodModel{
		ID:              data.ID,
		Name:            data.Name,
		Category:        data.Category.String(),
		Calories:        data.Calories,
		Protein:         data.Protein,
		Carbs:           data.Carbs,
		Fat:             data.Fat,
		Fiber:           data.Fiber,
		ServingSize:     data.ServingSize,
		Unit:            data.Unit,
		NonInflammatory: data.NonInflammatory,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
