package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/models"
	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/utils"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type ProfileUpdate struct {
	Name   string  `json:"name"`
	Age    int     `json:"age"`
	Gender string  `json:"gender"`
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
	Goal   string  `json:"goal"`
}

// Profile is the client-facing view of a user, hash excluded.
type Profile struct {
	ID     uint    `json:"id"`
	Name   string  `json:"name"`
	Gmail  string  `json:"gmail"`
	Phone  string  `json:"phone"`
	Age    int     `json:"age"`
	Gender string  `json:"gender"`
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
	Goal   string  `json:"goal"`
	BMI    float64 `json:"bmi"`
}

func profileOf(u *models.User) *Profile {
	return &Profile{
		ID:     u.ID,
		Name:   u.Name,
		Gmail:  u.Gmail,
		Phone:  u.Phone,
		Age:    u.Age,
		Gender: u.Gender,
		Weight: u.Weight,
		Height: u.Height,
		Goal:   u.Goal,
		BMI:    utils.CalculateBMI(u.Weight, u.Height),
	}
}

func (s *UserService) GetProfile(userID uint) (*Profile, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return profileOf(&user), nil
}

func (s *UserService) UpdateProfile(userID uint, in ProfileUpdate) (*Profile, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Age > 0 {
		user.Age = in.Age
	}
	if in.Gender != "" {
		user.Gender = in.Gender
	}
	if in.Weight > 0 {
		user.Weight = in.Weight
	}
	if in.Height > 0 {
		user.Height = in.Height
	}
	if in.Goal != "" {
		user.Goal = in.Goal
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return profileOf(&user), nil
}

// DeleteAccount removes the row outright. Keeping a soft-deleted row would
// hold the gmail/phone unique indexes forever and block re-registration of
// those identifiers.
func (s *UserService) DeleteAccount(userID uint) error {
	res := s.db.Unscoped().Delete(&models.User{}, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
