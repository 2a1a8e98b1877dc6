package api

import (
	"net/http"

	"alcyxob/workout-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes mounts the REST surface on the router. The storage backend is
// injected through the service, never reached for as a global.
func SetupRoutes(router *gin.Engine, workoutService service.WorkoutService) {
	dayHandler := NewWorkoutDayHandler(workoutService)
	exerciseHandler := NewExerciseHandler(workoutService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiGroup := router.Group("/api")
	{
		dayGroup := apiGroup.Group("/workout-days")
		{
			dayGroup.GET("", dayHandler.ListWorkoutDays)
			dayGroup.GET("/:id", dayHandler.GetWorkoutDay)
			dayGroup.GET("/:id/summary", dayHandler.GetWorkoutDaySummary)
			dayGroup.POST("", dayHandler.CreateWorkoutDay)
			dayGroup.PATCH("/:id", dayHandler.UpdateWorkoutDay)
		}

		exerciseGroup := apiGroup.Group("/exercises")
		{
			// The collection GET is keyed by day, mirroring the client's
			// per-day fetch. Gin requires one param name per segment, so
			// the day id travels as :id here.
			exerciseGroup.GET("/:id", exerciseHandler.ListExercisesByDay)
			exerciseGroup.POST("", exerciseHandler.CreateExercise)
			exerciseGroup.PATCH("/:id", exerciseHandler.UpdateExercise)
			exerciseGroup.DELETE("/:id", exerciseHandler.DeleteExercise)
		}
	}
}
