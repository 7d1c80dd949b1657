package model

import (
	"time"
)

// Objective status values
const (
	ObjectiveStatusOngoing   = "ONGOING"
	ObjectiveStatusCompleted = "COMPLETED"
	ObjectiveStatusCancelled = "CANCELLED"
)

type Objective struct {
	ObjectiveID int       `gorm:"column:objective_id;primaryKey;autoIncrement" json:"id"`
	TaskID      int       `gorm:"column:task_id;not null" json:"taskId"`
	Description string    `gorm:"column:description;type:varchar(255);not null" json:"description"`
	Status      string    `gorm:"column:status;type:varchar(32);default:'ONGOING';not null" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdDate"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedDate"`
}

func (Objective) TableName() string {
	return "objectives"
}

func IsValidObjectiveStatus(status string) bool {
	switch status {
	case ObjectiveStatusOngoing, ObjectiveStatusCompleted, ObjectiveStatusCancelled:
		return true
	}
	return false
}
