package setup

import (
	"net/http"

	"tasktracker/middleware"
	"tasktracker/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupController(router *gin.Engine, db *gorm.DB) {
	router.GET("/health", func(c *gin.Context) {
		Health(c, db)
	})
	router.POST("/setup", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		Setup(c, db)
	})
}

func Health(c *gin.Context, db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database handle unavailable"})
		return
	}
	if err := sqlDB.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Api is running!"})
}

// Setup re-runs the schema migration on demand. The same migration runs once
// at startup, so this only matters after a 503 with the setupRequired flag.
func Setup(c *gin.Context, db *gorm.DB) {
	if err := services.Migrate(db); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database setup failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Database initialized successfully"})
}
