package models

import (
	"gorm.io/gorm"
)

type WeightEntry struct {
	gorm.Model
	UserID uint    `gorm:"index;not null" json:"user_id"`
	Weight float64 `gorm:"not null" json:"weight"` // kg
}
