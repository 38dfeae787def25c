package postgres

import (
	"context"
	"testing"

	"mealplanner/internal/domain/entity"
	"mealplanner/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoodRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewFoodRepository(db)
	ctx := context.Background()

	food := createTestFood(t, repo, "Chicken Breast", entity.CategoryMeat)

	byID, err := repo.FindByID(ctx, food.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chicken Breast", byID.Name)
	assert.Equal(t, entity.CategoryMeat, byID.Category)

	byName, err := repo.FindByName(ctx, "Chicken Breast")
	require.NoError(t, err)
	assert.Equal(t, food.ID, byName.ID)

	_, err = repo.FindByName(ctx, "Unicorn Steak")
	assert.ErrorIs(t, err, repository.ErrFoodNotFound)
}

func TestFoodRepository_Create_DuplicateName(t *testing.T) {
	db := newTestDB(t)
	repo := NewFoodRepository(db)
	ctx := context.Background()

	createTestFood(t, repo, "Salmon", entity.CategoryFish)

	err := repo.Create(ctx, &entity.Food{Name: "Salmon", Category: entity.CategoryFish})
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestFoodRepository_ListByCategory_OrderedByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewFoodRepository(db)
	ctx := context.Background()

	createTestFood(t, repo, "Spinach", entity.CategoryVegetable)
	createTestFood(t, repo, "Broccoli", entity.CategoryVegetable)
	createTestFood(t, repo, "Salmon", entity.CategoryFish)

	foods, err := repo.ListByCategory(ctx, entity.CategoryVegetable)
	require.NoError(t, err)
	require.Len(t, foods, 2)
	assert.Equal(t, "Broccoli", foods[0].Name)
	assert.Equal(t, "Spinach", foods[1].Name)

	empty, err := repo.ListByCategory(ctx, entity.CategoryBeverage)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFoodRepository_LikeUnlike(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	foodRepo := NewFoodRepository(db)
	ctx := context.Background()

	user := createTestUser(t, userRepo, "john@example.com", "johndoe")
	salmon := createTestFood(t, foodRepo, "Salmon", entity.CategoryFish)
	broccoli := createTestFood(t, foodRepo, "Broccoli", entity.CategoryVegetable)

	require.NoError(t, foodRepo.Like(ctx, user.ID, salmon.ID))
	require.NoError(t, foodRepo.Like(ctx, user.ID, broccoli.ID))

	// The same pair twice violates the unique constraint.
	err := foodRepo.Like(ctx, user.ID, salmon.ID)
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	liked, err := foodRepo.ListLiked(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, liked, 2)
	assert.Equal(t, "Broccoli", liked[0].Name)
	assert.Equal(t, "Salmon", liked[1].Name)

	require.NoError(t, foodRepo.Unlike(ctx, user.ID, salmon.ID))

	liked, err = foodRepo.ListLiked(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, liked, 1)
	assert.Equal(t, "Broccoli", liked[0].Name)

	// Unliking an absent pair is a no-op.
	assert.NoError(t, foodRepo.Unlike(ctx, user.ID, salmon.ID))
}

func TestFoodRepository_Delete_CascadesLikesAndIngredients(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewUserRepository(db)
	foodRepo := NewFoodRepository(db)
	mealRepo := NewMealRepository(db)
	ctx := context.Background()

	user := createTestUser(t, userRepo, "john@example.com", "johndoe")
	food := createTestFood(t, foodRepo, "Salmon", entity.CategoryFish)
	meal := createTestMeal(t, mealRepo, "Salmon Bowl")

	require.NoError(t, foodRepo.Like(ctx, user.ID, food.ID))
	require.NoError(t, mealRepo.AddIngredient(ctx, &entity.MealIngredient{
		MealID:   meal.ID,
		FoodID:   food.ID,
		Quantity: 1,
	}))

	require.NoError(t, foodRepo.Delete(ctx, food.ID))

	liked, err := foodRepo.ListLiked(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, liked)

	ings, err := mealRepo.ListIngredients(ctx, meal.ID)
	require.NoError(t, err)
	assert.Empty(t, ings)
}
