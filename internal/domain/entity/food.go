package entity

import (
	"strings"
	"time"
)

// FoodCategory is the enumerated catalog of food groups.
type FoodCategory string

const (
	CategoryMeat             FoodCategory = "MEAT"
	CategoryFish             FoodCategory = "FISH"
	CategoryGrain            FoodCategory = "GRAIN"
	CategoryVegetable        FoodCategory = "VEGETABLE"
	CategoryFruit            FoodCategory = "FRUIT"
	CategoryDairy            FoodCategory = "DAIRY"
	CategoryDairyAlternative FoodCategory = "DAIRY_ALTERNATIVE"
	CategoryFat              FoodCategory = "FAT"
	CategoryNightshades      FoodCategory = "NIGHTSHADES"
	CategoryOil              FoodCategory = "OIL"
	CategorySpiceHerb        FoodCategory = "SPICE_HERB"
	CategorySweetener        FoodCategory = "SWEETENER"
	CategoryCondiment        FoodCategory = "CONDIMENT"
	CategorySnack            FoodCategory = "SNACK"
	CategoryBeverage         FoodCategory = "BEVERAGE"
	CategoryOther            FoodCategory = "OTHER"
)

var foodCategories = map[FoodCategory]struct{}{
	CategoryMeat: {}, CategoryFish: {}, CategoryGrain: {}, CategoryVegetable: {},
	CategoryFruit: {}, CategoryDairy: {}, CategoryDairyAlternative: {}, CategoryFat: {},
	CategoryNightshades: {}, CategoryOil: {}, CategorySpiceHerb: {}, CategorySweetener: {},
	CategoryCondiment: {}, CategorySnack: {}, CategoryBeverage: {}, CategoryOther: {},
}

// ParseFoodCategory converts a wire string into a FoodCategory value.
func ParseFoodCategory(s string) (FoodCategory, bool) {
	c := FoodCategory(strings.ToUpper(s))
	_, ok := foodCategories[c]
	if !ok {
		return "", false
	}

	return c, true
}

// String returns the textual wire representation.
func (c FoodCategory) String() string {
	return string(c)
}

// Food is a catalog entry with per-serving macros. Name is globally unique.
type Food struct {
	ID       uint
	Name     string
	Category FoodCategory

	// Per-serving macros, non-negative.
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64

	ServingSize     string
	Unit            string
	NonInflammatory bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FoodLike records that a user likes a food. The (UserID, FoodID) pair is
// unique; a second like for the same pair is rejected at the store.
type FoodLike struct {
	ID        uint
	UserID    uint
	FoodID    uint
	CreatedAt time.Time
}
