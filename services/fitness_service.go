package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/models"
)

type FitnessService struct {
	db *gorm.DB
}

func NewFitnessService(db *gorm.DB) *FitnessService {
	return &FitnessService{db: db}
}

type WorkoutInput struct {
	Type           string  `json:"type" binding:"required"`
	Duration       int     `json:"duration"`
	CaloriesBurned float64 `json:"calories_burned"`
	Notes          string  `json:"notes"`
}

func (s *FitnessService) AddWorkout(userID uint, in WorkoutInput) (*models.Workout, error) {
	w := models.Workout{
		UserID:         userID,
		Type:           in.Type,
		Duration:       in.Duration,
		CaloriesBurned: in.CaloriesBurned,
		Notes:          in.Notes,
	}
	if err := s.db.Create(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *FitnessService) ListWorkouts(userID uint) ([]models.Workout, error) {
	var workouts []models.Workout
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&workouts).Error
	return workouts, err
}

// WorkoutExerciseDetail joins a performed exercise with its library entry.
type WorkoutExerciseDetail struct {
	models.WorkoutExercise
	ExerciseName string `json:"exercise_name"`
	Description  string `json:"description"`
}

type WorkoutDetail struct {
	models.Workout
	Exercises []WorkoutExerciseDetail `json:"exercises"`
}

// GetWorkout scopes the lookup to the owner; another user's workout id reads
// as not found.
func (s *FitnessService) GetWorkout(userID, workoutID uint) (*WorkoutDetail, error) {
	var w models.Workout
	err := s.db.Where("id = ? AND user_id = ?", workoutID, userID).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var exercises []WorkoutExerciseDetail
	err = s.db.Model(&models.WorkoutExercise{}).
		Select("workout_exercises.*, exercises.name AS exercise_name, exercises.description").
		Joins("JOIN exercises ON exercises.id = workout_exercises.exercise_id").
		Where("workout_exercises.workout_id = ?", workoutID).
		Scan(&exercises).Error
	if err != nil {
		return nil, err
	}

	return &WorkoutDetail{Workout: w, Exercises: exercises}, nil
}

type WorkoutExerciseInput struct {
	ExerciseID uint    `json:"exercise_id" binding:"required"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight"`
	Duration   int     `json:"duration"`
}

func (s *FitnessService) AddWorkoutExercise(userID, workoutID uint, in WorkoutExerciseInput) (*models.WorkoutExercise, error) {
	// The workout must belong to the caller before anything is attached to it.
	var w models.Workout
	err := s.db.Where("id = ? AND user_id = ?", workoutID, userID).First(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	we := models.WorkoutExercise{
		WorkoutID:  workoutID,
		ExerciseID: in.ExerciseID,
		Sets:       in.Sets,
		Reps:       in.Reps,
		Weight:     in.Weight,
		Duration:   in.Duration,
	}
	if err := s.db.Create(&we).Error; err != nil {
		return nil, err
	}
	return &we, nil
}

func (s *FitnessService) ListExercises() ([]models.Exercise, error) {
	var exercises []models.Exercise
	err := s.db.Order("name").Find(&exercises).Error
	return exercises, err
}

type FitnessGoalInput struct {
	WeeklyWorkouts int        `json:"weekly_workouts"`
	TargetWeight   float64    `json:"target_weight"`
	TargetDate     *time.Time `json:"target_date"`
}

func (s *FitnessService) SetGoals(userID uint, in FitnessGoalInput) (*models.FitnessGoal, error) {
	goal := models.FitnessGoal{
		UserID:         userID,
		WeeklyWorkouts: in.WeeklyWorkouts,
		TargetWeight:   in.TargetWeight,
		TargetDate:     in.TargetDate,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"weekly_workouts", "target_weight", "target_date", "updated_at",
		}),
	}).Create(&goal).Error
	if err != nil {
		return nil, err
	}
	var out models.FitnessGoal
	if err := s.db.Where("user_id = ?", userID).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FitnessService) GetGoals(userID uint) (*models.FitnessGoal, error) {
	var goal models.FitnessGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}
