// Package model defines the GORM persistence models. They mirror the
// database tables and stay separate from the pure domain entities.
package model

import "time"

// UserModel mirrors the 'users' table. IDs are database-generated integers.
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email"`
	Username     string `gorm:"type:varchar(100);not null;uniqueIndex:uq_users_username"`
	PasswordHash string `gorm:"type:varchar(255);not null"`

	FullName    string `gorm:"type:varchar(255);not null"`
	Sex         string `gorm:"type:varchar(10);not null"`
	PhoneNumber string `gorm:"type:varchar(50)"`

	AddressLine1      string `gorm:"type:varchar(255)"`
	AddressLine2      string `gorm:"type:varchar(255)"`
	City              string `gorm:"type:varchar(100)"`
	StateProvinceCode string `gorm:"type:varchar(10)"`
	CountryCode       string `gorm:"type:varchar(2)"`
	PostalCode        string `gorm:"type:varchar(20)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
