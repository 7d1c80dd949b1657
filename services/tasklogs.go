package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tasktracker/model"

	"gorm.io/gorm"
)

func AddTaskLog(db *gorm.DB, taskID int, message string, date time.Time) (*model.TaskLog, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("%w: log message is required", ErrInvalidArgs)
	}

	var task model.Tasks
	if err := db.Where("task_id = ?", taskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, storageErr("get task", err)
	}

	entry := model.TaskLog{
		TaskID:  taskID,
		Message: message,
	}
	if !date.IsZero() {
		entry.Date = date
	}

	if err := db.Create(&entry).Error; err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrTaskNotFound
		}
		return nil, storageErr("create log", err)
	}
	return &entry, nil
}
