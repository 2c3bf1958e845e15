package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/middlewares"
	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/services"
)

type TipController struct {
	tips *services.TipService
}

func NewTipController(tips *services.TipService) *TipController {
	return &TipController{tips: tips}
}

func (ctl *TipController) ListAll(c *gin.Context) {
	tips, err := ctl.tips.ListAll()
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, tips)
}

func (ctl *TipController) ListByCategory(c *gin.Context) {
	tips, err := ctl.tips.ListByCategory(c.Param("category"))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, tips)
}

func (ctl *TipController) Personalized(c *gin.Context) {
	tips, err := ctl.tips.Personalized(middlewares.UserID(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please authenticate"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, tips)
}

func (ctl *TipController) Save(c *gin.Context) {
	tipID, ok := pathID(c, "tipId")
	if !ok {
		return
	}

	saved, err := ctl.tips.Save(middlewares.UserID(c), tipID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tip not found"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (ctl *TipController) ListSaved(c *gin.Context) {
	tips, err := ctl.tips.ListSaved(middlewares.UserID(c))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, tips)
}

func (ctl *TipController) Unsave(c *gin.Context) {
	tipID, ok := pathID(c, "tipId")
	if !ok {
		return
	}

	if err := ctl.tips.Unsave(middlewares.UserID(c), tipID); err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tip removed from saved items"})
}
