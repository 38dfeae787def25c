// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// Sex is the closed set of values accepted for a user's sex.
// It is stored as text at the persistence edge; raw strings never
// cross into business logic without going through ParseSex.
type Sex string

const (
	SexMale   Sex = "MALE"
	SexFemale Sex = "FEMALE"
	SexOther  Sex = "OTHER"
)

// ParseSex converts a wire string into a Sex value.
// The second return value reports whether the input was a known value.
func ParseSex(s string) (Sex, bool) {
	switch Sex(strings.ToUpper(s)) {
	case SexMale:
		return SexMale, true
	case SexFemale:
		return SexFemale, true
	case SexOther:
		return SexOther, true
	default:
		return "", false
	}
}

// String returns the textual wire representation.
func (s Sex) String() string {
	return string(s)
}

// User is the core account entity. Email and username are globally unique
// and case-sensitive as stored. PasswordHash is never serialized outward;
// the delivery layer maps this entity to a response type that omits it.
type User struct {
	ID           uint
	Email        string
	Username     string
	PasswordHash string

	FullName    string
	Sex         Sex
	PhoneNumber string

	AddressLine1      string
	AddressLine2      string
	City              string
	StateProvinceCode string
	CountryCode       string // exactly 2 chars, stored uppercase
	PostalCode        string

	CreatedAt time.Time // immutable after creation
	UpdatedAt time.Time // refreshed on every mutation
}

// NormalizeCountryCode uppercases the country code in place. Validation
// guarantees the length; normalization happens once, before persistence.
func (u *User) NormalizeCountryCode() {
	u.CountryCode = strings.ToUpper(u.CountryCode)
}
