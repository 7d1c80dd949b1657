package objective

import (
	"net/http"
	"strconv"

	"tasktracker/controller"
	"tasktracker/middleware"
	"tasktracker/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func DeleteObjectiveController(router *gin.Engine, db *gorm.DB) {
	router.DELETE("/objectives/:objectiveid", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		DeleteObjective(c, db)
	})
}

func DeleteObjective(c *gin.Context, db *gorm.DB) {
	objectiveID, err := strconv.Atoi(c.Param("objectiveid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid objective ID"})
		return
	}

	if err := services.DeleteObjective(db, objectiveID); err != nil {
		controller.WriteServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
