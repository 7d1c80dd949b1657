package objective

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

func CreateObjectiveController(router *gin.Engine, db *gorm.DB) {
	router.POST("/tasks/:taskid/objectives", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		CreateObjective(c, db)
	})
}

func CreateObjective(c *gin.Context, db *gorm.DB) {
	taskID, err := strconv.Atoi(c.Param("taskid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	var req dto.AddObjectiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	created, err := services.AddObjective(db, taskID, req.Description, req.Status)
	if err != nil {
		controller.WriteServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": created.ObjectiveID})
}
