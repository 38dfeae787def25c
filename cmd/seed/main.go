// Command seed drops, recreates, and seeds the development database with a
// few users, a food catalog, composed meals, likes, and scheduled meals.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"mealplanner/config"
	"mealplanner/internal/domain/entity"
	"mealplanner/internal/domain/repository"
	"mealplanner/internal/domain/service"
	"mealplanner/internal/infra/auth"
	logs "mealplanner/internal/infra/log"
	"mealplanner/internal/infra/persistence/model"
	"mealplanner/internal/infra/persistence/postgres"
	"mealplanner/internal/usecase"
	"mealplanner/internal/usecase/impl"

	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		slog.Error("Failed to build logger", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := gorm.Open(pgdriver.Open(cfg.Postgres.DSN()), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		logger.Error("Failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	if err := run(cfg, logger, db); err != nil {
		logger.Error("Seed failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Database rebuilt and seeded")
}

func run(cfg *config.Config, logger *slog.Logger, db *gorm.DB) error {
	ctx := context.Background()

	logger.Info("Dropping all tables")
	if err := db.Migrator().DropTable(
		&model.MealIngredientModel{},
		&model.UserMealModel{},
		&model.FoodUserLikeModel{},
		&model.MealModel{},
		&model.FoodModel{},
		&model.UserModel{},
	); err != nil {
		return err
	}

	logger.Info("Creating all tables")
	if err := postgres.Migrate(db); err != nil {
		return err
	}

	userRepo := postgres.NewUserRepository(db)
	foodRepo := postgres.NewFoodRepository(db)
	mealRepo := postgres.NewMealRepository(db)
	hasher := auth.NewBcryptHasher(cfg)

	mealPlan := impl.NewMealPlanService(impl.MealPlanServiceParams{
		TxManager: postgres.NewTransactionManager(db),
		UserRepo:  userRepo,
		FoodRepo:  foodRepo,
		MealRepo:  mealRepo,
		Logger:    logger,
	})

	users, err := seedUsers(ctx, userRepo, hasher)
	if err != nil {
		return err
	}
	logger.Info("Seeded users", slog.Int("count", len(users)))

	foods, err := seedFoods(ctx, foodRepo)
	if err != nil {
		return err
	}
	logger.Info("Seeded foods", slog.Int("count", len(foods)))

	meals, err := seedMeals(ctx, mealRepo, mealPlan, foods)
	if err != nil {
		return err
	}
	logger.Info("Seeded meals", slog.Int("count", len(meals)))

	if err := seedLikes(ctx, mealPlan, users, foods); err != nil {
		return err
	}
	logger.Info("Seeded likes")

	if err := seedSchedules(ctx, mealPlan, users, meals); err != nil {
		return err
	}
	logger.Info("Seeded scheduled meals")

	return nil
}

func seedUsers(ctx context.Context, userRepo repository.UserRepository, hasher service.PasswordHasher) (map[string]*entity.User, error) {
	seeds := []struct {
		user     entity.User
		password string
	}{
		{
			user: entity.User{
				Email:             "admin@mealplanner.com",
				Username:          "admin",
				FullName:          "Admin User",
				Sex:               entity.SexOther,
				PhoneNumber:       "555-0100",
				AddressLine1:      "123 Admin St",
				City:              "San Francisco",
				StateProvinceCode: "CA",
				CountryCode:       "US",
				PostalCode:        "94102",
			},
			password: "admin123",
		},
		{
			user: entity.User{
				Email:             "john.doe@example.com",
				Username:          "johndoe",
				FullName:          "John Doe",
				Sex:               entity.SexMale,
				PhoneNumber:       "555-0101",
				AddressLine1:      "456 Oak Ave",
				AddressLine2:      "Apt 2B",
				City:              "New York",
				StateProvinceCode: "NY",
				CountryCode:       "US",
				PostalCode:        "10001",
			},
			password: "password123",
		},
		{
			user: entity.User{
				Email:             "jane.smith@example.com",
				Username:          "janesmith",
				FullName:          "Jane Smith",
				Sex:               entity.SexFemale,
				PhoneNumber:       "555-0102",
				AddressLine1:      "789 Pine Rd",
				City:              "Austin",
				StateProvinceCode: "TX",
				CountryCode:       "US",
				PostalCode:        "78701",
			},
			password: "password123",
		},
	}

	users := make(map[string]*entity.User, len(seeds))
	for i := range seeds {
		hash, err := hasher.Hash(seeds[i].password)
		if err != nil {
			return nil, err
		}

		user := seeds[i].user
		user.PasswordHash = hash
		if err := userRepo.Create(ctx, &user); err != nil {
			return nil, err
		}
		users[user.Username] = &user
	}

	return users, nil
}

func seedFoods(ctx context.Context, foodRepo repository.FoodRepository) (map[string]*entity.Food, error) {
	seeds := []entity.Food{
		{Name: "Grilled Chicken Breast", Category: entity.CategoryMeat, Calories: 165, Protein: 31, Fat: 3.6, ServingSize: "100", Unit: "grams", NonInflammatory: true},
		{Name: "Lean Ground Beef", Category: entity.CategoryMeat, Calories: 250, Protein: 26, Fat: 17, ServingSize: "100", Unit: "grams"},
		{Name: "Salmon Fillet", Category: entity.CategoryFish, Calories: 208, Protein: 20, Fat: 13, ServingSize: "100", Unit: "grams", NonInflammatory: true},
		{Name: "Tuna Steak", Category: entity.CategoryFish, Calories: 132, Protein: 28, Fat: 1.3, ServingSize: "100", Unit: "grams", NonInflammatory: true},
		{Name: "Brown Rice", Category: entity.CategoryGrain, Calories: 112, Protein: 2.6, Carbs: 23.5, Fat: 0.9, Fiber: 1.8, ServingSize: "100", Unit: "grams", NonInflammatory: true},
		{Name: "Quinoa", Category: entity.CategoryGrain, Calories: 120, Protein: 4.1, Carbs: 21.3, Fat: 1.9, Fiber: 2.8, ServingSize: "100", Unit: "grams", NonInflammatory: true},
		{Name: "Broccoli", Category: entity.CategoryVegetable, Calories: 34, Protein: 2.8, Carbs: 7, Fat: 0.4, Fiber: 2.6, ServingSize: "100", Unit: "grams", NonInflammatory: true},
		{Name: "Spinach", Category: entity.CategoryVegetable, Calories: 23, Protein: 2.9, Carbs: 3.6, Fat: 0.4, Fiber: 2.2, ServingSize: "100", Unit: "grams", NonInflammatory: true},
		{Name: "Tomato", Category: entity.CategoryNightshades, Calories: 18, Protein: 0.9, Carbs: 3.9, Fat: 0.2, Fiber: 1.2, ServingSize: "100", Unit: "grams"},
		{Name: "Bell Pepper", Category: entity.CategoryNightshades, Calories: 31, Protein: 1, Carbs: 6, Fat: 0.3, Fiber: 2.1, ServingSize: "100", Unit: "grams"},
		{Name: "Apple", Category: entity.CategoryFruit, Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2, Fiber: 2.4, ServingSize: "1 medium", Unit: "piece", NonInflammatory: true},
		{Name: "Banana", Category: entity.CategoryFruit, Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3, Fiber: 2.6, ServingSize: "1 medium", Unit: "piece", NonInflammatory: true},
		{Name: "Greek Yogurt", Category: entity.CategoryDairy, Calories: 59, Protein: 10, Carbs: 3.6, Fat: 0.4, ServingSize: "100", Unit: "grams"},
		{Name: "Olive Oil", Category: entity.CategoryOil, Calories: 884, Fat: 100, ServingSize: "100", Unit: "ml", NonInflammatory: true},
		{Name: "Turmeric", Category: entity.CategorySpiceHerb, Calories: 312, Protein: 9.7, Carbs: 67.1, Fat: 3.3, Fiber: 22.7, ServingSize: "100", Unit: "grams", NonInflammatory: true},
		{Name: "Honey", Category: entity.CategorySweetener, Calories: 304, Protein: 0.3, Carbs: 82.4, Fiber: 0.2, ServingSize: "100", Unit: "grams", NonInflammatory: true},
	}

	foods := make(map[string]*entity.Food, len(seeds))
	for i := range seeds {
		food := seeds[i]
		if err := foodRepo.Create(ctx, &food); err != nil {
			return nil, err
		}
		foods[food.Name] = &food
	}

	return foods, nil
}

func seedMeals(ctx context.Context, mealRepo repository.MealRepository, mealPlan usecase.MealPlanUsecase, foods map[string]*entity.Food) (map[string]*entity.Meal, error) {
	seeds := []entity.Meal{
		{Name: "Healthy Chicken Bowl", Description: "Grilled chicken with brown rice and vegetables", PrepTime: 25},
		{Name: "Salmon Power Plate", Description: "Baked salmon with quinoa and spinach", PrepTime: 30},
		{Name: "Morning Energy Bowl", Description: "Greek yogurt with banana and honey", PrepTime: 5},
	}

	meals := make(map[string]*entity.Meal, len(seeds))
	for i := range seeds {
		meal := seeds[i]
		if err := mealRepo.Create(ctx, &meal); err != nil {
			return nil, err
		}
		meals[meal.Name] = &meal
	}

	// Quantities are servings of each food; AddIngredient keeps the meal's
	// macro totals in step.
	ingredients := []struct {
		meal     string
		food     string
		quantity float64
		unit     string
		notes    string
	}{
		{"Healthy Chicken Bowl", "Grilled Chicken Breast", 1.5, "servings", "Seasoned with herbs"},
		{"Healthy Chicken Bowl", "Brown Rice", 1, "servings", ""},
		{"Healthy Chicken Bowl", "Broccoli", 1, "servings", ""},
		{"Salmon Power Plate", "Salmon Fillet", 1.2, "servings", ""},
		{"Salmon Power Plate", "Quinoa", 1, "servings", ""},
		{"Salmon Power Plate", "Spinach", 1.5, "servings", ""},
		{"Morning Energy Bowl", "Greek Yogurt", 2, "servings", ""},
		{"Morning Energy Bowl", "Banana", 1, "servings", ""},
		{"Morning Energy Bowl", "Honey", 0.2, "servings", ""},
	}

	for _, ing := range ingredients {
		_, err := mealPlan.AddIngredient(ctx, usecase.AddIngredientInput{
			MealID:   meals[ing.meal].ID,
			FoodID:   foods[ing.food].ID,
			Quantity: ing.quantity,
			Unit:     ing.unit,
			Notes:    ing.notes,
		})
		if err != nil {
			return nil, err
		}
	}

	return meals, nil
}

func seedLikes(ctx context.Context, mealPlan usecase.MealPlanUsecase, users map[string]*entity.User, foods map[string]*entity.Food) error {
	likes := []struct {
		username string
		food     string
	}{
		{"admin", "Salmon Fillet"},
		{"admin", "Quinoa"},
		{"admin", "Broccoli"},
		{"johndoe", "Grilled Chicken Breast"},
		{"johndoe", "Brown Rice"},
		{"janesmith", "Greek Yogurt"},
		{"janesmith", "Banana"},
		{"janesmith", "Apple"},
	}

	for _, like := range likes {
		if err := mealPlan.LikeFood(ctx, users[like.username].ID, foods[like.food].ID); err != nil {
			return err
		}
	}

	return nil
}

func seedSchedules(ctx context.Context, mealPlan usecase.MealPlanUsecase, users map[string]*entity.User, meals map[string]*entity.Meal) error {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	tomorrow := today.AddDate(0, 0, 1)

	schedules := []struct {
		username string
		meal     string
		date     time.Time
		slot     int
	}{
		{"admin", "Healthy Chicken Bowl", today, entity.MealSlotLunch},
		{"admin", "Salmon Power Plate", today, entity.MealSlotDinner},
		{"admin", "Morning Energy Bowl", tomorrow, entity.MealSlotBreakfast},
		{"johndoe", "Healthy Chicken Bowl", today, entity.MealSlotLunch},
		{"johndoe", "Healthy Chicken Bowl", tomorrow, entity.MealSlotDinner},
		{"janesmith", "Morning Energy Bowl", today, entity.MealSlotBreakfast},
	}

	for _, sched := range schedules {
		_, err := mealPlan.ScheduleMeal(ctx, usecase.ScheduleMealInput{
			UserID:     users[sched.username].ID,
			MealID:     meals[sched.meal].ID,
			Date:       sched.date,
			MealNumber: sched.slot,
		})
		if err != nil {
			return err
		}
	}

	return nil
}
