package models

import (
	"gorm.io/gorm"
)

type Tip struct {
	gorm.Model
	Title    string `gorm:"not null" json:"title"`
	Content  string `gorm:"not null" json:"content"`
	Category string `gorm:"index" json:"category"` // matches user goals, or "general"
}

type SavedTip struct {
	gorm.Model
	UserID uint `gorm:"not null;uniqueIndex:idx_saved_tips_user_tip" json:"user_id"`
	TipID  uint `gorm:"not null;uniqueIndex:idx_saved_tips_user_tip" json:"tip_id"`
}
