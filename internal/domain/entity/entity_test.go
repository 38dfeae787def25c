package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSex(t *testing.T) {
	tests := []struct {
		input  string
		want   Sex
		wantOK bool
	}{
		{input: "MALE", want: SexMale, wantOK: true},
		{input: "female", want: SexFemale, wantOK: true},
		{input: "Other", want: SexOther, wantOK: true},
		{input: "", wantOK: false},
		{input: "UNKNOWN", wantOK: false},
	}

	for _, tt := range tests {
		got, ok := ParseSex(tt.input)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestParseFoodCategory(t *testing.T) {
	tests := []struct {
		input  string
		want   FoodCategory
		wantOK bool
	}{
		{input: "MEAT", want: CategoryMeat, wantOK: true},
		{input: "dairy_alternative", want: CategoryDairyAlternative, wantOK: true},
		{input: "Spice_Herb", want: CategorySpiceHerb, wantOK: true},
		{input: "OTHER", want: CategoryOther, wantOK: true},
		{input: "CANDY", wantOK: false},
		{input: "", wantOK: false},
	}

	for _, tt := range tests {
		got, ok := ParseFoodCategory(tt.input)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestUser_NormalizeCountryCode(t *testing.T) {
	user := &User{CountryCode: "us"}
	user.NormalizeCountryCode()

	assert.Equal(t, "US", user.CountryCode)
}
