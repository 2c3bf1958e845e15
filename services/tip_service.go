package services

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/models"
)

type TipService struct {
	db *gorm.DB
}

func NewTipService(db *gorm.DB) *TipService {
	return &TipService{db: db}
}

func (s *TipService) ListAll() ([]models.Tip, error) {
	var tips []models.Tip
	err := s.db.Order("created_at DESC").Find(&tips).Error
	return tips, err
}

func (s *TipService) ListByCategory(category string) ([]models.Tip, error) {
	var tips []models.Tip
	err := s.db.Where("category = ?", category).Order("created_at DESC").Find(&tips).Error
	return tips, err
}

// Personalized returns up to five tips matching the user's goal category,
// padded with general ones.
func (s *TipService) Personalized(userID uint) ([]models.Tip, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var tips []models.Tip
	err := s.db.
		Where("category = ? OR category = ?", user.Goal, "general").
		Order("created_at DESC").
		Limit(5).
		Find(&tips).Error
	return tips, err
}

// Save is idempotent: saving an already-saved tip is not an error.
func (s *TipService) Save(userID, tipID uint) (*models.SavedTip, error) {
	var tip models.Tip
	if err := s.db.First(&tip, tipID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	saved := models.SavedTip{UserID: userID, TipID: tipID}
	err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (s *TipService) ListSaved(userID uint) ([]models.Tip, error) {
	var tips []models.Tip
	err := s.db.Model(&models.Tip{}).
		Joins("JOIN saved_tips ON saved_tips.tip_id = tips.id").
		Where("saved_tips.user_id = ?", userID).
		Order("saved_tips.created_at DESC").
		Find(&tips).Error
	return tips, err
}

// Unsave removes the row outright. A soft delete would keep the tip visible
// through ListSaved's join and leave the unique index occupied, so a later
// Save of the same tip would be swallowed by the conflict clause.
func (s *TipService) Unsave(userID, tipID uint) error {
	return s.db.Unscoped().Where("user_id = ? AND tip_id = ?", userID, tipID).Delete(&models.SavedTip{}).Error
}
