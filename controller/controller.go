package controller

import (
	"errors"
	"net/http"

	"tasktracker/services"

	"github.com/gin-gonic/gin"
)

// WriteServiceError maps data-access failures onto HTTP statuses. A missing
// schema gets a setup hint so the client can point the user at /setup.
func WriteServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidArgs):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	case errors.Is(err, services.ErrObjectiveNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Objective not found"})
	case errors.Is(err, services.ErrSchemaMissing):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":         "Database tables not found. Please run setup.",
			"setupRequired": true,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
