package connection

import (
	"log"
	"os"

	"tasktracker/config"
	"tasktracker/controller/auth"
	"tasktracker/controller/dashboard"
	"tasktracker/controller/objective"
	"tasktracker/controller/setup"
	"tasktracker/controller/task"
	"tasktracker/middleware"
	"tasktracker/scheduler"
	"tasktracker/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func StartServer() {
	cfg := config.Load()

	// Refuse to sign or verify tokens with an empty key.
	if os.Getenv("JWT_SECRET_KEY") == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	DB, err := DBConnection(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Schema is provisioned up front; handlers assume it exists and fail
	// fast with a setup hint if it does not.
	if err := services.Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	router := NewRouter(DB, cfg)

	scheduler.StartScheduler(DB)

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func NewRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.Default()

	router.Use(cors.Default())
	router.Use(middleware.RequestIDMiddleware())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	auth.AuthController(router, cfg)
	setup.SetupController(router, db)

	task.TaskController(router, db)
	task.CreateTaskController(router, db)
	task.UpdateTaskStatusController(router, db)
	task.DeleteTaskController(router, db)
	task.AddLogController(router, db)

	objective.CreateObjectiveController(router, db)
	objective.UpdateObjectiveController(router, db)
	objective.DeleteObjectiveController(router, db)

	dashboard.DashboardController(router, db)

	return router
}
