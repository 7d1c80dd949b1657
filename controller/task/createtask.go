package task

import (
	"net/http"
	"time"

	"tasktracker/controller"
	"tasktracker/dto"
	"tasktracker/middleware"
	"tasktracker/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

func CreateTaskController(router *gin.Engine, db *gorm.DB) {
	router.POST("/tasks", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		CreateTask(c, db)
	})
}

func CreateTask(c *gin.Context, db *gorm.DB) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	input := services.CreateTaskInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	}

	if req.InputDate != "" {
		inputDate, err := time.Parse(dateLayout, req.InputDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid inputDate, expected YYYY-MM-DD"})
			return
		}
		input.InputDate = inputDate
	}

	if req.Deadline != "" {
		deadline, err := time.Parse(dateLayout, req.Deadline)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid deadline, expected YYYY-MM-DD"})
			return
		}
		input.Deadline = &deadline
	}

	for _, draft := range req.Objectives {
		input.Objectives = append(input.Objectives, services.ObjectiveInput{
			Description: draft.Description,
			Status:      draft.Status,
		})
	}

	created, err := services.CreateTask(db, input)
	if err != nil {
		controller.WriteServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": created.TaskID})
}
