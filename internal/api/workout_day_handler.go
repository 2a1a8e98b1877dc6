package api

import (
	"errors"
	"net/http"

	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutDayHandler holds the workout service dependency for day routes.
type WorkoutDayHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutDayHandler creates a new WorkoutDayHandler.
func NewWorkoutDayHandler(workoutService service.WorkoutService) *WorkoutDayHandler {
	return &WorkoutDayHandler{workoutService: workoutService}
}

// ListWorkoutDays handles GET /api/workout-days.
// Responds with all days sorted by dayNumber ascending.
func (h *WorkoutDayHandler) ListWorkoutDays(c *gin.Context) {
	days, err := h.workoutService.ListDays(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch workout days")
		return
	}
	if days == nil {
		days = []domain.WorkoutDay{}
	}
	c.JSON(http.StatusOK, days)
}

// GetWorkoutDay handles GET /api/workout-days/:id.
// Responds with the day plus its exercises sorted by order.
func (h *WorkoutDayHandler) GetWorkoutDay(c *gin.Context) {
	day, err := h.workoutService.GetDayWithExercises(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrDayNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout day not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch workout day")
		}
		return
	}
	c.JSON(http.StatusOK, day)
}

// CreateWorkoutDay handles POST /api/workout-days.
func (h *WorkoutDayHandler) CreateWorkoutDay(c *gin.Context) {
	var insert domain.InsertWorkoutDay
	if err := c.ShouldBindJSON(&insert); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout day data: "+err.Error())
		return
	}

	day, err := h.workoutService.CreateDay(c.Request.Context(), insert)
	if err != nil {
		if valErr, ok := asValidationError(err); ok {
			abortWithValidation(c, "Invalid workout day data", valErr)
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create workout day")
		}
		return
	}
	c.JSON(http.StatusCreated, day)
}

// UpdateWorkoutDay handles PATCH /api/workout-days/:id.
// Only the provided fields are merged; the payload is applied entirely or
// rejected entirely.
func (h *WorkoutDayHandler) UpdateWorkoutDay(c *gin.Context) {
	var patch domain.WorkoutDayPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout day data: "+err.Error())
		return
	}

	day, err := h.workoutService.UpdateDay(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDayNotFound):
			abortWithError(c, http.StatusNotFound, "Workout day not found")
		default:
			if valErr, ok := asValidationError(err); ok {
				abortWithValidation(c, "Invalid workout day data", valErr)
			} else {
				abortWithError(c, http.StatusInternalServerError, "Failed to update workout day")
			}
		}
		return
	}
	c.JSON(http.StatusOK, day)
}

// GetWorkoutDaySummary handles GET /api/workout-days/:id/summary.
func (h *WorkoutDayHandler) GetWorkoutDaySummary(c *gin.Context) {
	summary, err := h.workoutService.DaySummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrDayNotFound) {
			abortWithError(c, http.StatusNotFound, "Workout day not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch workout day summary")
		}
		return
	}
	c.JSON(http.StatusOK, summary)
}
