package task

import (
	"net/http"
	"strconv"

	"tasktracker/controller"
	"tasktracker/middleware"
	"tasktracker/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func DeleteTaskController(router *gin.Engine, db *gorm.DB) {
	router.DELETE("/tasks/:taskid", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		DeleteTask(c, db)
	})
}

func DeleteTask(c *gin.Context, db *gorm.DB) {
	taskID, err := strconv.Atoi(c.Param("taskid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	if err := services.DeleteTask(db, taskID); err != nil {
		controller.WriteServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
