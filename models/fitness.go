package models

import (
	"time"

	"gorm.io/gorm"
)

type Workout struct {
	gorm.Model
	UserID         uint    `gorm:"index;not null" json:"user_id"`
	Type           string  `gorm:"not null" json:"type"` // "running"|"cycling"|…
	Duration       int     `json:"duration"`             // minutes
	CaloriesBurned float64 `json:"calories_burned"`
	Notes          string  `json:"notes"`
}

// Exercise is a library entry, shared across users.
type Exercise struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
}

// WorkoutExercise records one exercise performed within a workout.
type WorkoutExercise struct {
	gorm.Model
	WorkoutID  uint    `gorm:"index;not null" json:"workout_id"`
	ExerciseID uint    `gorm:"not null" json:"exercise_id"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight"`   // kg
	Duration   int     `json:"duration"` // minutes, for timed exercises
}

// FitnessGoal is the single per-user training target.
type FitnessGoal struct {
	gorm.Model
	UserID         uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	WeeklyWorkouts int        `json:"weekly_workouts"`
	TargetWeight   float64    `json:"target_weight"`
	TargetDate     *time.Time `json:"target_date"`
}
