package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/middlewares"
	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/services"
)

type DietController struct {
	diet *services.DietService
}

func NewDietController(diet *services.DietService) *DietController {
	return &DietController{diet: diet}
}

func (ctl *DietController) GetGoals(c *gin.Context) {
	goals, err := ctl.diet.GetGoals(middlewares.UserID(c))
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

func (ctl *DietController) SetGoals(c *gin.Context) {
	var input services.NutritionGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goals, err := ctl.diet.SetGoals(middlewares.UserID(c), input)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}

func (ctl *DietController) AddMeal(c *gin.Context) {
	var input services.MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := ctl.diet.AddMeal(middlewares.UserID(c), input)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (ctl *DietController) MealsToday(c *gin.Context) {
	meals, err := ctl.diet.MealsToday(middlewares.UserID(c))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (ctl *DietController) LogWater(c *gin.Context) {
	var input struct {
		Amount float64 `json:"amount" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := ctl.diet.LogWater(middlewares.UserID(c), input.Amount)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (ctl *DietController) WaterToday(c *gin.Context) {
	total, err := ctl.diet.WaterToday(middlewares.UserID(c))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_water": total})
}

func (ctl *DietController) DailySummary(c *gin.Context) {
	summary, err := ctl.diet.DailySummary(middlewares.UserID(c))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
