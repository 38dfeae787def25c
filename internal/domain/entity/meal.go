package entity

import "time"

// Meal slot numbers for ScheduledMeal. The set is open-ended upward
// (5+ means additional snacks); 1 is the lowest valid slot.
const (
	MealSlotBreakfast = 1
	MealSlotLunch     = 2
	MealSlotDinner    = 3
	MealSlotSnack     = 4
)

// Meal is a named combination of foods with aggregated macro totals.
type Meal struct {
	ID          uint
	Name        string
	Description string

	TotalCalories float64
	TotalProtein  float64
	TotalCarbs    float64
	TotalFat      float64

	PrepTime int // minutes, 0 when unknown

	Ingredients []*MealIngredient

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScheduledMeal records that a user scheduled a meal on a date at a numbered
// slot. There is deliberately no uniqueness constraint: a user may log the
// same meal twice on the same day and slot.
type ScheduledMeal struct {
	ID         uint
	UserID     uint
	MealID     uint
	Date       time.Time // date component only
	MealNumber int       // 1=breakfast, 2=lunch, 3=dinner, 4=snack, ...
	CreatedAt  time.Time
}

// MealIngredient ties a food to a meal with a quantity. A food appears at
// most once per meal; the (MealID, FoodID) pair is unique at the store.
type MealIngredient struct {
	ID        uint
	MealID    uint
	FoodID    uint
	Quantity  float64
	Unit      string
	Notes     string
	CreatedAt time.Time
}
