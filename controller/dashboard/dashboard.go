package dashboard

import (
	"net/http"
	"strconv"
	"time"

	"tasktracker/controller"
	"tasktracker/middleware"
	"tasktracker/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

func DashboardController(router *gin.Engine, db *gorm.DB) {
	router.GET("/dashboard/summary", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		Summary(c, db)
	})
}

// Summary serves the dashboard in one round trip: status counts over an
// inclusive inputDate range plus one fixed-size page of the filtered list.
func Summary(c *gin.Context, db *gorm.DB) {
	startStr := c.Query("startDate")
	endStr := c.Query("endDate")
	if (startStr == "") != (endStr == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate and endDate must be supplied together"})
		return
	}

	page := 1
	if pageStr := c.Query("page"); pageStr != "" {
		parsed, err := strconv.Atoi(pageStr)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
			return
		}
		page = parsed
	}

	tasks, err := services.ListTasks(db)
	if err != nil {
		controller.WriteServiceError(c, err)
		return
	}

	if startStr != "" {
		start, err := time.Parse(dateLayout, startStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startDate, expected YYYY-MM-DD"})
			return
		}
		end, err := time.Parse(dateLayout, endStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endDate, expected YYYY-MM-DD"})
			return
		}
		tasks = services.FilterTasksByInputDate(tasks, start, end)
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":      services.SummarizeTasks(tasks),
		"tasks":      services.PaginateTasks(tasks, page, services.DefaultPageSize),
		"page":       page,
		"totalPages": services.TotalPages(len(tasks), services.DefaultPageSize),
		"total":      len(tasks),
	})
}
