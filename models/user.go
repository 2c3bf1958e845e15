package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string  `gorm:"not null" json:"name"`
	Gmail    string  `gorm:"uniqueIndex;not null" json:"gmail"`
	Phone    string  `gorm:"uniqueIndex;not null" json:"phone"`
	Age      int     `json:"age"`
	Gender   string  `json:"gender"`
	Weight   float64 `json:"weight"` // kg
	Height   float64 `json:"height"` // cm
	Goal     string  `json:"goal"`   // "lose"|"gain"|"maintain"
	Password string  `gorm:"not null" json:"-"` // bcrypt hash, never serialized
}

// AgeGroup buckets users for the dashboard variants.
func (u *User) AgeGroup() string {
	switch {
	case u.Age < 18:
		return "teen"
	case u.Age < 60:
		return "adult"
	default:
		return "senior"
	}
}
