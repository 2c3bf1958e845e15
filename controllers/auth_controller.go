package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/middlewares"
	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/models"
	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/services"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type RegisterRequest struct {
	Name     string  `json:"name" binding:"required"`
	Phone    string  `json:"phone" binding:"required,len=10,numeric"`
	Gmail    string  `json:"gmail" binding:"required,email"`
	Age      int     `json:"age" binding:"required,min=13,max=120"`
	Gender   string  `json:"gender" binding:"required"`
	Weight   float64 `json:"weight" binding:"required,gt=0"`
	Height   float64 `json:"height" binding:"required,gt=0"`
	Goal     string  `json:"goal" binding:"required"`
	Password string  `json:"password" binding:"required,min=6"`
}

func userBody(u *models.User) gin.H {
	return gin.H{
		"id":     u.ID,
		"name":   u.Name,
		"gmail":  u.Gmail,
		"age":    u.Age,
		"weight": u.Weight,
		"height": u.Height,
	}
}

func (ctl *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	user, token, err := ctl.auth.Register(services.RegisterInput{
		Name:     req.Name,
		Gmail:    req.Gmail,
		Phone:    req.Phone,
		Age:      req.Age,
		Gender:   req.Gender,
		Weight:   req.Weight,
		Height:   req.Height,
		Goal:     req.Goal,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error":   "User with this email or phone number already exists",
			})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"ageGroup": user.AgeGroup(),
		"token":    token,
		"user":     userBody(user),
	})
}

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Gmail      string `json:"gmail"`
	Password   string `json:"password"`
}

func (ctl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	identifier := req.Identifier
	if identifier == "" {
		identifier = req.Gmail
	}
	if identifier == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email and password are required"})
		return
	}

	user, token, err := ctl.auth.Login(identifier, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid email or password"})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"ageGroup": user.AgeGroup(),
		"token":    token,
		"user":     userBody(user),
	})
}

// Check lets a client confirm its token is still accepted.
func (ctl *AuthController) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user": gin.H{
			"id":    middlewares.UserID(c),
			"gmail": c.GetString(middlewares.CtxEmail),
		},
	})
}
