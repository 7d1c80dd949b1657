package model

import (
	"time"
)

// TaskLog rows are append-only: created once, never updated, removed only
// through the parent task cascade.
type TaskLog struct {
	LogID   int       `gorm:"column:log_id;primaryKey;autoIncrement" json:"id"`
	TaskID  int       `gorm:"column:task_id;not null" json:"taskId"`
	Message string    `gorm:"column:message;type:text;not null" json:"message"`
	Date    time.Time `gorm:"column:date;autoCreateTime" json:"date"`
}

func (TaskLog) TableName() string {
	return "task_logs"
}
