package model

import "time"

// FoodModel mirrors the 'foods' table.
type FoodModel struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"type:varchar(255);not null;uniqueIndex:uq_foods_name"`
	Category string `gorm:"type:varchar(32);not null;index:ix_foods_category"`

	Calories float64 `gorm:"not null;default:0"`
	Protein  float64 `gorm:"not null;default:0"`
	Carbs    float64 `gorm:"not null;default:0"`
	Fat      float64 `gorm:"not null;default:0"`
	Fiber    float64 `gorm:"not null;default:0"`

	ServingSize     string `gorm:"type:varchar(50)"`
	Unit            string `gorm:"type:varchar(20)"`
	NonInflammatory bool   `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FoodModel) TableName() string {
	return "foods"
}

// FoodUserLikeModel mirrors the 'food_user_likes' association table.
// The (user_id, food_id) pair is unique; rows vanish with either parent.
type FoodUserLikeModel struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"not null;uniqueIndex:uq_user_food_like;index:ix_food_user_likes_user_id"`
	FoodID uint `gorm:"not null;uniqueIndex:uq_user_food_like;index:ix_food_user_likes_food_id"`

	User UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Food FoodModel `gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FoodUserLikeModel) TableName() string {
	return "food_user_likes"
}
