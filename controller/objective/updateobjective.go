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

func UpdateObjectiveController(router *gin.Engine, db *gorm.DB) {
	router.PUT("/objectives/:objectiveid/status", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		UpdateObjectiveStatus(c, db)
	})
}

func UpdateObjectiveStatus(c *gin.Context, db *gorm.DB) {
	objectiveID, err := strconv.Atoi(c.Param("objectiveid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid objective ID"})
		return
	}

	var req dto.UpdateObjectiveStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	updated, err := services.UpdateObjectiveStatus(db, objectiveID, req.Status)
	if err != nil {
		controller.WriteServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
