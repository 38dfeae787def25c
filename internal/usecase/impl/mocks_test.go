package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"mealplanner/internal/domain/entity"
	"mealplanner/internal/domain/repository"
	"mealplanner/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubTxManager runs the transactional function directly against a factory
// that hands out the test's mock repositories.
type stubTxManager struct {
	factory repository.RepositoryFactory
}

func (m *stubTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

type stubRepoFactory struct {
	userRepo repository.UserRepository
	foodRepo repository.FoodRepository
	mealRepo repository.MealRepository
}

func (f *stubRepoFactory) NewUserRepository() repository.UserRepository { return f.userRepo }
func (f *stubRepoFactory) NewFoodRepository() repository.FoodRepository { return f.foodRepo }
func (f *stubRepoFactory) NewMealRepository() repository.MealRepository { return f.mealRepo }

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *mockUserRepository) FindByLogin(ctx context.Context, login string) (*entity.User, error) {
	args := m.Called(ctx, login)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *mockUserRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*entity.User, error) {
	args := m.Called(ctx, email, username)
	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type mockFoodRepository struct {
	mock.Mock
}

func (m *mockFoodRepository) Create(ctx context.Context, food *entity.Food) error {
	args := m.Called(ctx, food)

	return args.Error(0)
}

func (m *mockFoodRepository) FindByID(ctx context.Context, id uint) (*entity.Food, error) {
	args := m.Called(ctx, id)
	food, _ := args.Get(0).(*entity.Food)

	return food, args.Error(1)
}

func (m *mockFoodRepository) FindByName(ctx context.Context, name string) (*entity.Food, error) {
	args := m.Called(ctx, name)
	food, _ := args.Get(0).(*entity.Food)

	return food, args.Error(1)
}

func (m *mockFoodRepository) ListByCategory(ctx context.Context, category entity.FoodCategory) ([]*entity.Food, error) {
	args := m.Called(ctx, category)
	foods, _ := args.Get(0).([]*entity.Food)

	return foods, args.Error(1)
}

func (m *mockFoodRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *mockFoodRepository) Like(ctx context.Context, userID, foodID uint) error {
	args := m.Called(ctx, userID, foodID)

	return args.Error(0)
}

func (m *mockFoodRepository) Unlike(ctx context.Context, userID, foodID uint) error {
	args := m.Called(ctx, userID, foodID)

	return args.Error(0)
}

func (m *mockFoodRepository) ListLiked(ctx context.Context, userID uint) ([]*entity.Food, error) {
	args := m.Called(ctx, userID)
	foods, _ := args.Get(0).([]*entity.Food)

	return foods, args.Error(1)
}

type mockMealRepository struct {
	mock.Mock
}

func (m *mockMealRepository) Create(ctx context.Context, meal *entity.Meal) error {
	args := m.Called(ctx, meal)

	return args.Error(0)
}

func (m *mockMealRepository) FindByID(ctx context.Context, id uint) (*entity.Meal, error) {
	args := m.Called(ctx, id)
	meal, _ := args.Get(0).(*entity.Meal)

	return meal, args.Error(1)
}

func (m *mockMealRepository) Update(ctx context.Context, meal *entity.Meal) error {
	args := m.Called(ctx, meal)

	return args.Error(0)
}

func (m *mockMealRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *mockMealRepository) Schedule(ctx context.Context, scheduled *entity.ScheduledMeal) error {
	args := m.Called(ctx, scheduled)

	return args.Error(0)
}

func (m *mockMealRepository) ScheduledForDate(ctx context.Context, userID uint, date time.Time) ([]*entity.ScheduledMeal, error) {
	args := m.Called(ctx, userID, date)
	scheduled, _ := args.Get(0).([]*entity.ScheduledMeal)

	return scheduled, args.Error(1)
}

func (m *mockMealRepository) AddIngredient(ctx context.Context, ing *entity.MealIngredient) error {
	args := m.Called(ctx, ing)

	return args.Error(0)
}

func (m *mockMealRepository) RemoveIngredient(ctx context.Context, mealID, foodID uint) error {
	args := m.Called(ctx, mealID, foodID)

	return args.Error(0)
}

func (m *mockMealRepository) ListIngredients(ctx context.Context, mealID uint) ([]*entity.MealIngredient, error) {
	args := m.Called(ctx, mealID)
	ings, _ := args.Get(0).([]*entity.MealIngredient)

	return ings, args.Error(1)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) IssueToken(userID uint) (string, int, error) {
	args := m.Called(userID)

	return args.String(0), args.Int(1), args.Error(2)
}

func (m *mockTokenService) ValidateToken(token string) (*service.Claims, error) {
	args := m.Called(token)
	claims, _ := args.Get(0).(*service.Claims)

	return claims, args.Error(1)
}
