package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/middlewares"
	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/services"
)

type FitnessController struct {
	fitness *services.FitnessService
}

func NewFitnessController(fitness *services.FitnessService) *FitnessController {
	return &FitnessController{fitness: fitness}
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

func (ctl *FitnessController) ListWorkouts(c *gin.Context) {
	workouts, err := ctl.fitness.ListWorkouts(middlewares.UserID(c))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

func (ctl *FitnessController) AddWorkout(c *gin.Context) {
	var input services.WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	workout, err := ctl.fitness.AddWorkout(middlewares.UserID(c), input)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, workout)
}

func (ctl *FitnessController) GetWorkout(c *gin.Context) {
	workoutID, ok := pathID(c, "workoutId")
	if !ok {
		return
	}

	detail, err := ctl.fitness.GetWorkout(middlewares.UserID(c), workoutID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (ctl *FitnessController) AddWorkoutExercise(c *gin.Context) {
	workoutID, ok := pathID(c, "workoutId")
	if !ok {
		return
	}

	var input services.WorkoutExerciseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	we, err := ctl.fitness.AddWorkoutExercise(middlewares.UserID(c), workoutID, input)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, we)
}

func (ctl *FitnessController) ListExercises(c *gin.Context) {
	exercises, err := ctl.fitness.ListExercises()
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercises)
}

func (ctl *FitnessController) GetGoals(c *gin.Context) {
	goals, err := ctl.fitness.GetGoals(middlewares.UserID(c))
	if err != nil {
		internalError(c, err)
		return
	}
	if goals == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, goals)
}

func (ctl *FitnessController) SetGoals(c *gin.Context) {
	var input services.FitnessGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goals, err := ctl.fitness.SetGoals(middlewares.UserID(c), input)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}
