package scheduler

import (
	"log"
	"time"

	"tasktracker/services"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartScheduler runs the hourly overdue-task report. The job only observes:
// it counts tasks past their deadline that are not DONE and logs the result.
func StartScheduler(db *gorm.DB) {
	c := cron.New()

	_, err := c.AddFunc("@hourly", func() {
		count, err := services.CountOverdueTasks(db, time.Now())
		if err != nil {
			log.Printf("Overdue task check failed: %v", err)
			return
		}
		if count > 0 {
			log.Printf("%d tasks are past their deadline", count)
		}
	})
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}

	c.Start()
	log.Println("Scheduler started")
}
