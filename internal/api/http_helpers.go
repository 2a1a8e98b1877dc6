package api

import (
	"errors"
	"net/http"

	"alcyxob/workout-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// abortWithError sends a standardized JSON error response and aborts the
// request chain.
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"message": message})
}

// abortWithValidation reports a rejected write payload: the whole payload is
// refused and every violated field is listed.
func abortWithValidation(c *gin.Context, message string, valErr *service.ValidationError) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"message": message,
		"errors":  valErr.Violations,
	})
}

// asValidationError extracts a service.ValidationError if err wraps one.
func asValidationError(err error) (*service.ValidationError, bool) {
	var valErr *service.ValidationError
	if errors.As(err, &valErr) {
		return valErr, true
	}
	return nil, false
}
