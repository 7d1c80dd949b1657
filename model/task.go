package model

import (
	"time"
)

// Task status values
const (
	TaskStatusNew        = "NEW"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusCritical   = "CRITICAL"
	TaskStatusDone       = "DONE"
)

type Tasks struct {
	TaskID      int        `gorm:"column:task_id;primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description string     `gorm:"column:description;type:text" json:"description,omitempty"`
	InputDate   time.Time  `gorm:"column:input_date;type:date;not null" json:"inputDate"`
	Deadline    *time.Time `gorm:"column:deadline;type:date" json:"deadline,omitempty"`
	Status      string     `gorm:"column:status;type:varchar(32);default:'NEW';not null" json:"status"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`

	// Relations. Declared on the parent so the migrated foreign keys land on
	// the child tables with the cascade behavior.
	Objectives []Objective `gorm:"foreignKey:TaskID;references:TaskID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE" json:"-"`
	Logs       []TaskLog   `gorm:"foreignKey:TaskID;references:TaskID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE" json:"-"`
}

func (Tasks) TableName() string {
	return "tasks"
}

func IsValidTaskStatus(status string) bool {
	switch status {
	case TaskStatusNew, TaskStatusInProgress, TaskStatusCritical, TaskStatusDone:
		return true
	}
	return false
}
