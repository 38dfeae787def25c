package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "mealplanner/internal/delivery/context"
	"mealplanner/internal/domain/entity"
	domainerrors "mealplanner/internal/domain/errors"
	"mealplanner/internal/domain/repository"
	"mealplanner/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// mealPlanService implements the MealPlanUsecase interface.
type mealPlanService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	foodRepo  repository.FoodRepository
	mealRepo  repository.MealRepository
	logger    *slog.Logger
}

// MealPlanServiceParams holds dependencies for mealPlanService, injected by Fx.
type MealPlanServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	FoodRepo  repository.FoodRepository
	MealRepo  repository.MealRepository
	Logger    *slog.Logger
}

// NewMealPlanService is the constructor for mealPlanService.
func NewMealPlanService(params MealPlanServiceParams) usecase.MealPlanUsecase {
	return &mealPlanService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		foodRepo:  params.FoodRepo,
		mealRepo:  params.MealRepo,
		logger:    params.Logger,
	}
}

func (srv *mealPlanService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LikeFood records that a user likes a food. Liking the same food twice is
// rejected with ErrFoodAlreadyLiked.
func (srv *mealPlanService) LikeFood(ctx context.Context, userID, foodID uint) error {
	if _, err := srv.foodRepo.FindByID(ctx, foodID); err != nil {
		if errors.Is(err, repository.ErrFoodNotFound) {
			return domainerrors.ErrFoodNotFound
		}

		return errors.Wrap(err, "failed to load food for like")
	}

	if err := srv.foodRepo.Like(ctx, userID, foodID); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return domainerrors.ErrFoodAlreadyLiked
		}

		return errors.Wrap(err, "failed to like food")
	}

	srv.log(ctx).Debug("Food liked", slog.Any("userID", userID), slog.Any("foodID", foodID))

	return nil
}

// UnlikeFood removes a like. Unliking a food that was never liked is a no-op.
func (srv *mealPlanService) UnlikeFood(ctx context.Context, userID, foodID uint) error {
	if err := srv.foodRepo.Unlike(ctx, userID, foodID); err != nil {
		return errors.Wrap(err, "failed to unlike food")
	}

	return nil
}

// LikedFoods returns all foods the user likes.
func (srv *mealPlanService) LikedFoods(ctx context.Context, userID uint) ([]*entity.Food, error) {
	foods, err := srv.foodRepo.ListLiked(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list liked foods")
	}

	return foods, nil
}

// ScheduleMeal puts a meal on the user's plan for a date and slot. Duplicate
// entries are allowed: logging the same meal twice on a day is legitimate.
func (srv *mealPlanService) ScheduleMeal(ctx context.Context, input usecase.ScheduleMealInput) (*entity.ScheduledMeal, error) {
	if _, err := srv.mealRepo.FindByID(ctx, input.MealID); err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return nil, domainerrors.ErrMealNotFound
		}

		return nil, errors.Wrap(err, "failed to load meal for scheduling")
	}

	scheduled := &entity.ScheduledMeal{
		UserID:     input.UserID,
		MealID:     input.MealID,
		Date:       input.Date,
		MealNumber: input.MealNumber,
	}
	if scheduled.MealNumber < entity.MealSlotBreakfast {
		scheduled.MealNumber = entity.MealSlotBreakfast
	}

	if err := srv.mealRepo.Schedule(ctx, scheduled); err != nil {
		return nil, errors.Wrap(err, "failed to schedule meal")
	}

	srv.log(ctx).Debug("Meal scheduled",
		slog.Any("userID", input.UserID),
		slog.Any("mealID", input.MealID),
		slog.Int("mealNumber", scheduled.MealNumber),
	)

	return scheduled, nil
}

// MealsForDate returns the user's schedule for a calendar date.
func (srv *mealPlanService) MealsForDate(ctx context.Context, userID uint, date time.Time) ([]*entity.ScheduledMeal, error) {
	scheduled, err := srv.mealRepo.ScheduledForDate(ctx, userID, date)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list scheduled meals")
	}

	return scheduled, nil
}

// AddIngredient attaches a food to a meal and recomputes the meal's macro
// totals. The insert and the totals update run in one transaction.
func (srv *mealPlanService) AddIngredient(ctx context.Context, input usecase.AddIngredientInput) (*entity.Meal, error) {
	var updated *entity.Meal
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mealRepo := repoFactory.NewMealRepository()
		foodRepo := repoFactory.NewFoodRepository()

		if _, err := mealRepo.FindByID(ctx, input.MealID); err != nil {
			if errors.Is(err, repository.ErrMealNotFound) {
				return domainerrors.ErrMealNotFound
			}

			return errors.Wrap(err, "failed to load meal")
		}
		if _, err := foodRepo.FindByID(ctx, input.FoodID); err != nil {
			if errors.Is(err, repository.ErrFoodNotFound) {
				return domainerrors.ErrFoodNotFound
			}

			return errors.Wrap(err, "failed to load food")
		}

		quantity := input.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		ing := &entity.MealIngredient{
			MealID:   input.MealID,
			FoodID:   input.FoodID,
			Quantity: quantity,
			Unit:     input.Unit,
			Notes:    input.Notes,
		}
		if err := mealRepo.AddIngredient(ctx, ing); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return domainerrors.ErrIngredientExists
			}

			return errors.Wrap(err, "failed to add ingredient")
		}

		meal, err := srv.recomputeTotals(ctx, mealRepo, foodRepo, input.MealID)
		if err != nil {
			return err
		}
		updated = meal

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// RemoveIngredient detaches a food from a meal and recomputes the totals.
func (srv *mealPlanService) RemoveIngredient(ctx context.Context, mealID, foodID uint) (*entity.Meal, error) {
	var updated *entity.Meal
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		mealRepo := repoFactory.NewMealRepository()
		foodRepo := repoFactory.NewFoodRepository()

		if _, err := mealRepo.FindByID(ctx, mealID); err != nil {
			if errors.Is(err, repository.ErrMealNotFound) {
				return domainerrors.ErrMealNotFound
			}

			return errors.Wrap(err, "failed to load meal")
		}

		if err := mealRepo.RemoveIngredient(ctx, mealID, foodID); err != nil {
			return errors.Wrap(err, "failed to remove ingredient")
		}

		meal, err := srv.recomputeTotals(ctx, mealRepo, foodRepo, mealID)
		if err != nil {
			return err
		}
		updated = meal

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// recomputeTotals rebuilds a meal's denormalized macro totals from its
// current ingredient rows. Quantity scales each food's per-serving macros.
func (srv *mealPlanService) recomputeTotals(
	ctx context.Context,
	mealRepo repository.MealRepository,
	foodRepo repository.FoodRepository,
	mealID uint,
) (*entity.Meal, error) {
	meal, err := mealRepo.FindByID(ctx, mealID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload meal for totals")
	}

	var calories, protein, carbs, fat float64
	for _, ing := range meal.Ingredients {
		food, err := foodRepo.FindByID(ctx, ing.FoodID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load ingredient food")
		}

		calories += food.Calories * ing.Quantity
		protein += food.Protein * ing.Quantity
		carbs += food.Carbs * ing.Quantity
		fat += food.Fat * ing.Quantity
	}

	meal.TotalCalories = calories
	meal.TotalProtein = protein
	meal.TotalCarbs = carbs
	meal.TotalFat = fat

	if err := mealRepo.Update(ctx, meal); err != nil {
		return nil, errors.Wrap(err, "failed to persist meal totals")
	}

	return meal, nil
}
