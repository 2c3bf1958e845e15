package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/controllers"
	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/middlewares"
	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/services"
	"github.com/malleshyadav124/fFtnessAdvisorApp-first-project/utils"
)

// SetupRouter wires every endpoint. All protected groups share the one guard
// built from the one token issuer; no route carries its own ad hoc check.
func SetupRouter(db *gorm.DB, issuer *utils.TokenIssuer) *gin.Engine {
	authSvc := services.NewAuthService(db, issuer)
	userSvc := services.NewUserService(db)
	dietSvc := services.NewDietService(db)
	fitnessSvc := services.NewFitnessService(db)
	progressSvc := services.NewProgressService(db)
	tipSvc := services.NewTipService(db)

	authCtl := controllers.NewAuthController(authSvc)
	userCtl := controllers.NewUserController(userSvc)
	dietCtl := controllers.NewDietController(dietSvc)
	fitnessCtl := controllers.NewFitnessController(fitnessSvc)
	progressCtl := controllers.NewProgressController(progressSvc)
	tipCtl := controllers.NewTipController(tipSvc)

	guard := middlewares.AuthMiddleware(issuer)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.GET("/check", guard, authCtl.Check)
	}

	users := r.Group("/api/users", guard)
	{
		users.GET("/profile", userCtl.GetProfile)
		users.PUT("/profile", userCtl.UpdateProfile)
		users.DELETE("/profile", userCtl.DeleteAccount)
	}

	diet := r.Group("/api/diet", guard)
	{
		diet.GET("/goals", dietCtl.GetGoals)
		diet.POST("/goals", dietCtl.SetGoals)
		diet.POST("/meals", dietCtl.AddMeal)
		diet.GET("/meals/today", dietCtl.MealsToday)
		diet.POST("/water", dietCtl.LogWater)
		diet.GET("/water/today", dietCtl.WaterToday)
		diet.GET("/summary/daily", dietCtl.DailySummary)
	}

	fitness := r.Group("/api/fitness", guard)
	{
		fitness.GET("/workouts", fitnessCtl.ListWorkouts)
		fitness.POST("/workouts", fitnessCtl.AddWorkout)
		fitness.GET("/workouts/:workoutId", fitnessCtl.GetWorkout)
		fitness.POST("/workouts/:workoutId/exercises", fitnessCtl.AddWorkoutExercise)
		fitness.GET("/exercises", fitnessCtl.ListExercises)
		fitness.GET("/goals", fitnessCtl.GetGoals)
		fitness.POST("/goals", fitnessCtl.SetGoals)
	}

	progress := r.Group("/api/progress", guard)
	{
		progress.GET("/weight", progressCtl.WeightHistory)
		progress.POST("/weight", progressCtl.RecordWeight)
		progress.GET("/summary", progressCtl.Summary)
		progress.GET("/monthly", progressCtl.Monthly)
	}

	tips := r.Group("/api/tips", guard)
	{
		tips.GET("", tipCtl.ListAll)
		tips.GET("/category/:category", tipCtl.ListByCategory)
		tips.GET("/personalized", tipCtl.Personalized)
		tips.POST("/save/:tipId", tipCtl.Save)
		tips.GET("/saved", tipCtl.ListSaved)
		tips.DELETE("/saved/:tipId", tipCtl.Unsave)
	}

	return r
}
