package postgres

import (
	"context"
	"testing"

	"mealplanner/internal/domain/entity"
	"mealplanner/internal/domain/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema
// applied. Foreign keys are enabled so cascade behavior matches production.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)

	// A pooled in-memory sqlite would hand each connection its own empty
	// database; pin the pool to a single connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))

	return db
}

func newTestUser(email, username string) *entity.User {
	return &entity.User{
		Email:             email,
		Username:          username,
		PasswordHash:      "hashed-password",
		FullName:          "Test User",
		Sex:               entity.SexOther,
		AddressLine1:      "1 Main St",
		City:              "Springfield",
		StateProvinceCode: "IL",
		CountryCode:       "US",
		PostalCode:        "62704",
	}
}

func createTestUser(t *testing.T, repo repository.UserRepository, email, username string) *entity.User {
	t.Helper()

	user := newTestUser(email, username)
	require.NoError(t, repo.Create(context.Background(), user))
	require.NotZero(t, user.ID)

	return user
}

func createTestFood(t *testing.T, repo repository.FoodRepository, name string, category entity.FoodCategory) *entity.Food {
	t.Helper()

	food := &entity.Food{
		Name:        name,
		Category:    category,
		Calories:    100,
		Protein:     10,
		Carbs:       5,
		Fat:         2,
		ServingSize: "100",
		Unit:        "g",
	}
	require.NoError(t, repo.Create(context.Background(), food))
	require.NotZero(t, food.ID)

	return food
}

func createTestMeal(t *testing.T, repo repository.MealRepository, name string) *entity.Meal {
	t.Helper()

	meal := &entity.Meal{
		Name:        name,
		Description: "test meal",
		PrepTime:    15,
	}
	require.NoError(t, repo.Create(context.Background(), meal))
	require.NotZero(t, meal.ID)

	return meal
}
