package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/models"
)

type DietService struct {
	db *gorm.DB
}

func NewDietService(db *gorm.DB) *DietService {
	return &DietService{db: db}
}

type NutritionGoalInput struct {
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fat       float64 `json:"fat"`
	WaterGoal float64 `json:"waterGoal"`
}

// SetGoals upserts the user's single nutrition-goal row.
func (s *DietService) SetGoals(userID uint, in NutritionGoalInput) (*models.NutritionGoal, error) {
	goal := models.NutritionGoal{
		UserID:        userID,
		DailyCalories: in.Calories,
		DailyProtein:  in.Protein,
		DailyCarbs:    in.Carbs,
		DailyFat:      in.Fat,
		DailyWater:    in.WaterGoal,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"daily_calories", "daily_protein", "daily_carbs", "daily_fat", "daily_water", "updated_at",
		}),
	}).Create(&goal).Error
	if err != nil {
		return nil, err
	}
	// Re-read so the conflict path returns the row that actually exists.
	var out models.NutritionGoal
	if err := s.db.Where("user_id = ?", userID).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// GetGoals returns nil when the user has not set goals yet.
func (s *DietService) GetGoals(userID uint) (*models.NutritionGoal, error) {
	var goal models.NutritionGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

type MealInput struct {
	Name        string  `json:"name" binding:"required"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	ServingSize float64 `json:"servingSize"`
	ServingUnit string  `json:"servingUnit"`
	Type        string  `json:"type"`
}

func (s *DietService) AddMeal(userID uint, in MealInput) (*models.Meal, error) {
	meal := models.Meal{
		UserID:      userID,
		FoodName:    in.Name,
		Calories:    in.Calories,
		Protein:     in.Protein,
		Carbs:       in.Carbs,
		Fat:         in.Fat,
		ServingSize: in.ServingSize,
		ServingUnit: in.ServingUnit,
		MealType:    in.Type,
	}
	if err := s.db.Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

// startOfDay is computed in Go rather than with SQL DATE() so the same query
// runs on postgres and sqlite.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (s *DietService) MealsToday(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Where("user_id = ? AND created_at >= ?", userID, startOfDay(time.Now())).
		Order("created_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *DietService) LogWater(userID uint, amount float64) (*models.WaterIntake, error) {
	entry := models.WaterIntake{UserID: userID, Amount: amount}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *DietService) WaterToday(userID uint) (float64, error) {
	var total float64
	err := s.db.Model(&models.WaterIntake{}).
		Where("user_id = ? AND created_at >= ?", userID, startOfDay(time.Now())).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

type MacroTotals struct {
	TotalCalories float64 `json:"total_calories"`
	TotalProtein  float64 `json:"total_protein"`
	TotalCarbs    float64 `json:"total_carbs"`
	TotalFat      float64 `json:"total_fat"`
}

type DailySummary struct {
	Meals MacroTotals           `json:"meals"`
	Water float64               `json:"water"`
	Goals *models.NutritionGoal `json:"goals"`
}

func (s *DietService) DailySummary(userID uint) (*DailySummary, error) {
	var totals MacroTotals
	err := s.db.Model(&models.Meal{}).
		Where("user_id = ? AND created_at >= ?", userID, startOfDay(time.Now())).
		Select("COALESCE(SUM(calories),0) AS total_calories, COALESCE(SUM(protein),0) AS total_protein, COALESCE(SUM(carbs),0) AS total_carbs, COALESCE(SUM(fat),0) AS total_fat").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	water, err := s.WaterToday(userID)
	if err != nil {
		return nil, err
	}

	goals, err := s.GetGoals(userID)
	if err != nil {
		return nil, err
	}

	return &DailySummary{Meals: totals, Water: water, Goals: goals}, nil
}
