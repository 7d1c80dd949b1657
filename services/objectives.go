package services

import (
	"errors"
	"fmt"
	"strings"

	"tasktracker/model"

	"gorm.io/gorm"
)

func AddObjective(db *gorm.DB, taskID int, description, status string) (*model.Objective, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("%w: objective description is required", ErrInvalidArgs)
	}
	if status == "" {
		status = model.ObjectiveStatusOngoing
	}
	if !model.IsValidObjectiveStatus(status) {
		return nil, fmt.Errorf("%w: invalid objective status %q", ErrInvalidArgs, status)
	}

	var task model.Tasks
	if err := db.Where("task_id = ?", taskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, storageErr("get task", err)
	}

	objective := model.Objective{
		TaskID:      taskID,
		Description: description,
		Status:      status,
	}
	if err := db.Create(&objective).Error; err != nil {
		// The parent can disappear between the existence check and the insert.
		if isForeignKeyViolation(err) {
			return nil, ErrTaskNotFound
		}
		return nil, storageErr("create objective", err)
	}
	return &objective, nil
}

// UpdateObjectiveStatus refreshes the objective's updated date; the parent
// task's updated_at is deliberately left alone.
func UpdateObjectiveStatus(db *gorm.DB, objectiveID int, status string) (*model.Objective, error) {
	if !model.IsValidObjectiveStatus(status) {
		return nil, fmt.Errorf("%w: invalid objective status %q", ErrInvalidArgs, status)
	}

	var objective model.Objective
	if err := db.Where("objective_id = ?", objectiveID).First(&objective).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrObjectiveNotFound
		}
		return nil, storageErr("get objective", err)
	}

	if err := db.Model(&objective).Update("status", status).Error; err != nil {
		return nil, storageErr("update objective status", err)
	}
	return &objective, nil
}

func DeleteObjective(db *gorm.DB, objectiveID int) error {
	result := db.Where("objective_id = ?", objectiveID).Delete(&model.Objective{})
	if result.Error != nil {
		return storageErr("delete objective", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrObjectiveNotFound
	}
	return nil
}
