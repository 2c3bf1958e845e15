package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/middlewares"
	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/services"
)

type ProgressController struct {
	progress *services.ProgressService
}

func NewProgressController(progress *services.ProgressService) *ProgressController {
	return &ProgressController{progress: progress}
}

func (ctl *ProgressController) WeightHistory(c *gin.Context) {
	entries, err := ctl.progress.WeightHistory(middlewares.UserID(c))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (ctl *ProgressController) RecordWeight(c *gin.Context) {
	var input struct {
		Weight float64 `json:"weight" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := ctl.progress.RecordWeight(middlewares.UserID(c), input.Weight)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (ctl *ProgressController) Summary(c *gin.Context) {
	summary, err := ctl.progress.GetSummary(middlewares.UserID(c))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (ctl *ProgressController) Monthly(c *gin.Context) {
	monthly, err := ctl.progress.GetMonthly(middlewares.UserID(c))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, monthly)
}
