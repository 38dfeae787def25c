package model

import "time"

// MealModel mirrors the 'meals' table. Macro totals are denormalized sums
// over the meal's ingredient foods.
type MealModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"type:varchar(255);not null;index:ix_meals_name"`
	Description string `gorm:"type:text"`

	TotalCalories float64 `gorm:"not null;default:0"`
	TotalProtein  float64 `gorm:"not null;default:0"`
	TotalCarbs    float64 `gorm:"not null;default:0"`
	TotalFat      float64 `gorm:"not null;default:0"`

	PrepTime int `gorm:"not null;default:0"`

	Ingredients []MealIngredientModel `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MealModel) TableName() string {
	return "meals"
}

// UserMealModel mirrors the 'user_meals' association table. There is no
// uniqueness constraint: the same meal may be logged twice on a date+slot.
type UserMealModel struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;index:ix_user_meals_user_id"`
	MealID     uint      `gorm:"not null;index:ix_user_meals_meal_id"`
	Date       time.Time `gorm:"type:date;not null;index:ix_user_meals_date"`
	MealNumber int       `gorm:"not null;default:1"`

	User UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Meal MealModel `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserMealModel) TableName() string {
	return "user_meals"
}

// MealIngredientModel mirrors the 'meal_ingredients' association table.
// A food appears at most once per meal.
type MealIngredientModel struct {
	ID       uint    `gorm:"primaryKey"`
	MealID   uint    `gorm:"not null;uniqueIndex:uq_meal_food_ingredient;index:ix_meal_ingredients_meal_id"`
	FoodID   uint    `gorm:"not null;uniqueIndex:uq_meal_food_ingredient;index:ix_meal_ingredients_food_id"`
	Quantity float64 `gorm:"not null;default:1"`
	Unit     string  `gorm:"type:varchar(20)"`
	Notes    string  `gorm:"type:varchar(255)"`

	Meal *MealModel `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE"`
	Food *FoodModel `gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MealIngredientModel) TableName() string {
	return "meal_ingredients"
}
