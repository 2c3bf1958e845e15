package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/middlewares"
	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/services"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// A valid token whose subject row is gone gets the generic 401, not a 404:
// a dangling token must not reveal whether an account was deleted.
func (ctl *UserController) GetProfile(c *gin.Context) {
	profile, err := ctl.users.GetProfile(middlewares.UserID(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please authenticate"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (ctl *UserController) UpdateProfile(c *gin.Context) {
	var input services.ProfileUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := ctl.users.UpdateProfile(middlewares.UserID(c), input)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please authenticate"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (ctl *UserController) DeleteAccount(c *gin.Context) {
	if err := ctl.users.DeleteAccount(middlewares.UserID(c)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please authenticate"})
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}
