package task

import (
	"net/http"
	"strconv"
	"time"

	"tasktracker/controller"
	"tasktracker/dto"
	"tasktracker/middleware"
	"tasktracker/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AddLogController(router *gin.Engine, db *gorm.DB) {
	router.POST("/tasks/:taskid", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		AddLog(c, db)
	})
}

func AddLog(c *gin.Context, db *gorm.DB) {
	taskID, err := strconv.Atoi(c.Param("taskid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	var req dto.AddLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	// The log date is server-assigned; a client-supplied timestamp is
	// honored for compatibility with older clients.
	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			parsed, err = time.Parse(dateLayout, req.Date)
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
			return
		}
		date = parsed
	}

	entry, err := services.AddTaskLog(db, taskID, req.Message, date)
	if err != nil {
		controller.WriteServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": entry.LogID})
}
