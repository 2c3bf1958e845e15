package models

import (
	"gorm.io/gorm"
)

// NutritionGoal is the single per-user set of daily targets.
type NutritionGoal struct {
	gorm.Model
	UserID        uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	DailyCalories float64 `json:"daily_calories"`
	DailyProtein  float64 `json:"daily_protein"`
	DailyCarbs    float64 `json:"daily_carbs"`
	DailyFat      float64 `json:"daily_fat"`
	DailyWater    float64 `json:"daily_water"` // ml
}

// Meal is one logged food entry with its nutrition snapshot.
type Meal struct {
	gorm.Model
	UserID      uint    `gorm:"index;not null" json:"user_id"`
	FoodName    string  `gorm:"not null" json:"food_name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	ServingSize float64 `json:"serving_size"`
	ServingUnit string  `json:"serving_unit"`
	MealType    string  `json:"meal_type"` // breakfast|lunch|dinner|snack
}

type WaterIntake struct {
	gorm.Model
	UserID uint    `gorm:"index;not null" json:"user_id"`
	Amount float64 `json:"amount"` // ml
}
