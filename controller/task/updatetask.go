package task

import (
	"net/http"
	"strconv"

	"tasktracker/controller"
	"tasktracker/dto"
	"tasktracker/middleware"
	"tasktracker/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func UpdateTaskStatusController(router *gin.Engine, db *gorm.DB) {
	router.PUT("/tasks/:taskid/status", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		UpdateTaskStatus(c, db)
	})
}

// UpdateTaskStatus is the only mutation a task row supports after creation;
// there is no general update.
func UpdateTaskStatus(c *gin.Context, db *gorm.DB) {
	taskID, err := strconv.Atoi(c.Param("taskid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	updated, err := services.UpdateTaskStatus(db, taskID, req.Status)
	if err != nil {
		controller.WriteServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
