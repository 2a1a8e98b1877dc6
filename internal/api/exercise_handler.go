package api

import (
	"errors"
	"net/http"

	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the workout service dependency for exercise routes.
type ExerciseHandler struct {
	workoutService service.WorkoutService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(workoutService service.WorkoutService) *ExerciseHandler {
	return &ExerciseHandler{workoutService: workoutService}
}

// ListExercisesByDay handles GET /api/exercises/:workoutDayId. The path
// parameter is the day id, not an exercise id. An unknown day yields an
// empty list, matching the list contract.
func (h *ExerciseHandler) ListExercisesByDay(c *gin.Context) {
	exercises, err := h.workoutService.ListExercisesByDay(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch exercises")
		return
	}
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	c.JSON(http.StatusOK, exercises)
}

// CreateExercise handles POST /api/exercises. The referenced workout day
// must exist.
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var insert domain.InsertExercise
	if err := c.ShouldBindJSON(&insert); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise data: "+err.Error())
		return
	}

	exercise, err := h.workoutService.CreateExercise(c.Request.Context(), insert)
	if err != nil {
		if valErr, ok := asValidationError(err); ok {
			abortWithValidation(c, "Invalid exercise data", valErr)
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create exercise")
		}
		return
	}
	c.JSON(http.StatusCreated, exercise)
}

// UpdateExercise handles PATCH /api/exercises/:id.
// Only the provided fields are merged; the payload is applied entirely or
// rejected entirely.
func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	var patch domain.ExercisePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid exercise data: "+err.Error())
		return
	}

	exercise, err := h.workoutService.UpdateExercise(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExerciseNotFound):
			abortWithError(c, http.StatusNotFound, "Exercise not found")
		default:
			if valErr, ok := asValidationError(err); ok {
				abortWithValidation(c, "Invalid exercise data", valErr)
			} else {
				abortWithError(c, http.StatusInternalServerError, "Failed to update exercise")
			}
		}
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// DeleteExercise handles DELETE /api/exercises/:id.
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	err := h.workoutService.DeleteExercise(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrExerciseNotFound) {
			abortWithError(c, http.StatusNotFound, "Exercise not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete exercise")
		}
		return
	}
	c.Status(http.StatusNoContent)
}
