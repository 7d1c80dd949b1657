package services

import (
	"time"

	"tasktracker/model"

	"gorm.io/gorm"
)

// DefaultPageSize matches the dashboard's fixed page size.
const DefaultPageSize = 5

type TaskSummary struct {
	Done     int `json:"done"`
	Progress int `json:"progress"`
	Critical int `json:"critical"`
}

// FilterTasksByInputDate keeps tasks whose input date falls inside the
// inclusive calendar-day range [start, end].
func FilterTasksByInputDate(tasks []model.Tasks, start, end time.Time) []model.Tasks {
	startDay := truncateToDay(start)
	endDay := truncateToDay(end)

	filtered := make([]model.Tasks, 0, len(tasks))
	for _, task := range tasks {
		day := truncateToDay(task.InputDate)
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		filtered = append(filtered, task)
	}
	return filtered
}

func SummarizeTasks(tasks []model.Tasks) TaskSummary {
	var summary TaskSummary
	for _, task := range tasks {
		switch task.Status {
		case model.TaskStatusDone:
			summary.Done++
		case model.TaskStatusInProgress:
			summary.Progress++
		case model.TaskStatusCritical:
			summary.Critical++
		}
	}
	return summary
}

// PaginateTasks slices one page out of the list. A page past the end yields
// an empty page, not an error.
func PaginateTasks(tasks []model.Tasks, page, pageSize int) []model.Tasks {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start >= len(tasks) {
		return []model.Tasks{}
	}
	end := start + pageSize
	if end > len(tasks) {
		end = len(tasks)
	}
	return tasks[start:end]
}

func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if total == 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

func CountOverdueTasks(db *gorm.DB, now time.Time) (int64, error) {
	var count int64
	err := db.Model(&model.Tasks{}).
		Where("deadline IS NOT NULL AND deadline < ? AND status <> ?", truncateToDay(now), model.TaskStatusDone).
		Count(&count).Error
	if err != nil {
		return 0, storageErr("count overdue tasks", err)
	}
	return count, nil
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
