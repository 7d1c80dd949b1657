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

func TaskController(router *gin.Engine, db *gorm.DB) {
	routes := router.Group("/tasks", middleware.AccessTokenMiddleware())
	{
		routes.GET("", func(c *gin.Context) {
			ListTasks(c, db)
		})
		routes.GET("/:taskid", func(c *gin.Context) {
			GetTask(c, db)
		})
	}
}

// ListTasks returns bare task rows; objectives and logs are only embedded in
// the detail view.
func ListTasks(c *gin.Context, db *gorm.DB) {
	tasks, err := services.ListTasks(db)
	if err != nil {
		controller.WriteServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func GetTask(c *gin.Context, db *gorm.DB) {
	taskID, err := strconv.Atoi(c.Param("taskid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	detail, err := services.GetTaskDetail(db, taskID)
	if err != nil {
		controller.WriteServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}
