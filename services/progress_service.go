package services

import (
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/models"
)

type ProgressService struct {
	db *gorm.DB
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

func (s *ProgressService) RecordWeight(userID uint, weight float64) (*models.WeightEntry, error) {
	entry := models.WeightEntry{UserID: userID, Weight: weight}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *ProgressService) WeightHistory(userID uint) ([]models.WeightEntry, error) {
	var entries []models.WeightEntry
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&entries).Error
	return entries, err
}

type WeightSummary struct {
	StartingWeight float64    `json:"starting_weight"`
	CurrentWeight  float64    `json:"current_weight"`
	StartDate      *time.Time `json:"start_date"`
	LastRecorded   *time.Time `json:"last_recorded"`
}

type WorkoutSummary struct {
	TotalWorkouts       int64   `json:"total_workouts"`
	TotalDuration       int     `json:"total_duration"`
	TotalCaloriesBurned float64 `json:"total_calories_burned"`
}

type NutritionAverages struct {
	AvgDailyCalories float64 `json:"avg_daily_calories"`
	AvgDailyProtein  float64 `json:"avg_daily_protein"`
	AvgDailyCarbs    float64 `json:"avg_daily_carbs"`
	AvgDailyFat      float64 `json:"avg_daily_fat"`
}

type Summary struct {
	Weight    WeightSummary     `json:"weight"`
	Workouts  WorkoutSummary    `json:"workouts"`
	Nutrition NutritionAverages `json:"nutrition"`
}

// GetSummary aggregates weight trajectory, lifetime workout totals, and mean
// meal macros over the trailing 30 days.
func (s *ProgressService) GetSummary(userID uint) (*Summary, error) {
	var out Summary

	var entries []models.WeightEntry
	err := s.db.Where("user_id = ?", userID).Order("created_at").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	if len(entries) > 0 {
		first, last := entries[0], entries[len(entries)-1]
		out.Weight = WeightSummary{
			StartingWeight: first.Weight,
			CurrentWeight:  last.Weight,
			StartDate:      &first.CreatedAt,
			LastRecorded:   &last.CreatedAt,
		}
	}

	// One SELECT for count and sums: scanning into the struct twice would
	// reset the fields the first query filled.
	err = s.db.Model(&models.Workout{}).
		Where("user_id = ?", userID).
		Select("COUNT(*) AS total_workouts, COALESCE(SUM(duration),0) AS total_duration, COALESCE(SUM(calories_burned),0) AS total_calories_burned").
		Scan(&out.Workouts).Error
	if err != nil {
		return nil, err
	}

	since := time.Now().AddDate(0, 0, -30)
	err = s.db.Model(&models.Meal{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Select("COALESCE(AVG(calories),0) AS avg_daily_calories, COALESCE(AVG(protein),0) AS avg_daily_protein, COALESCE(AVG(carbs),0) AS avg_daily_carbs, COALESCE(AVG(fat),0) AS avg_daily_fat").
		Scan(&out.Nutrition).Error
	if err != nil {
		return nil, err
	}

	return &out, nil
}

type MonthlyProgress struct {
	Month               string  `json:"month"` // YYYY-MM
	AvgWeight           float64 `json:"avg_weight"`
	WorkoutCount        int     `json:"workout_count"`
	TotalDuration       int     `json:"total_duration"`
	TotalCaloriesBurned float64 `json:"total_calories_burned"`
}

// GetMonthly buckets weight entries and workouts by calendar month, newest
// first. Bucketing happens in Go so the same queries run on any store.
func (s *ProgressService) GetMonthly(userID uint) ([]MonthlyProgress, error) {
	var entries []models.WeightEntry
	if err := s.db.Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		return nil, err
	}
	var workouts []models.Workout
	if err := s.db.Where("user_id = ?", userID).Find(&workouts).Error; err != nil {
		return nil, err
	}

	type bucket struct {
		weightSum   float64
		weightCount int
		workouts    int
		duration    int
		calories    float64
	}
	buckets := make(map[string]*bucket)
	get := func(t time.Time) *bucket {
		key := t.Format("2006-01")
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		return b
	}

	for _, e := range entries {
		b := get(e.CreatedAt)
		b.weightSum += e.Weight
		b.weightCount++
	}
	for _, w := range workouts {
		b := get(w.CreatedAt)
		b.workouts++
		b.duration += w.Duration
		b.calories += w.CaloriesBurned
	}

	months := make([]string, 0, len(buckets))
	for m := range buckets {
		months = append(months, m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	out := make([]MonthlyProgress, 0, len(months))
	for _, m := range months {
		b := buckets[m]
		mp := MonthlyProgress{
			Month:               m,
			WorkoutCount:        b.workouts,
			TotalDuration:       b.duration,
			TotalCaloriesBurned: b.calories,
		}
		if b.weightCount > 0 {
			mp.AvgWeight = b.weightSum / float64(b.weightCount)
		}
		out = append(out, mp)
	}
	return out, nil
}
