package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tasktracker/model"

	"gorm.io/gorm"
)

type ObjectiveInput struct {
	Description string
	Status      string
}

type CreateTaskInput struct {
	Name        string
	Description string
	InputDate   time.Time
	Deadline    *time.Time
	Status      string
	Objectives  []ObjectiveInput
}

// TaskDetail is a task row with its objectives and activity log embedded,
// the shape the detail view consumes.
type TaskDetail struct {
	model.Tasks
	Objectives []model.Objective `json:"objectives"`
	Logs       []model.TaskLog   `json:"logs"`
}

func ListTasks(db *gorm.DB) ([]model.Tasks, error) {
	var tasks []model.Tasks
	if err := db.Find(&tasks).Error; err != nil {
		return nil, storageErr("list tasks", err)
	}
	return tasks, nil
}

func GetTaskDetail(db *gorm.DB, taskID int) (*TaskDetail, error) {
	var task model.Tasks
	if err := db.Where("task_id = ?", taskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, storageErr("get task", err)
	}

	detail := &TaskDetail{
		Tasks:      task,
		Objectives: []model.Objective{},
		Logs:       []model.TaskLog{},
	}
	if err := db.Where("task_id = ?", taskID).Order("objective_id").Find(&detail.Objectives).Error; err != nil {
		return nil, storageErr("get task objectives", err)
	}
	if err := db.Where("task_id = ?", taskID).Order("date").Find(&detail.Logs).Error; err != nil {
		return nil, storageErr("get task logs", err)
	}
	return detail, nil
}

// CreateTask validates the whole input before touching storage, then inserts
// the task and its objective drafts in a single transaction so a partial
// failure leaves no rows behind.
func CreateTask(db *gorm.DB, input CreateTaskInput) (*model.Tasks, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidArgs)
	}

	status := input.Status
	if status == "" {
		status = model.TaskStatusNew
	}
	if !model.IsValidTaskStatus(status) {
		return nil, fmt.Errorf("%w: invalid task status %q", ErrInvalidArgs, status)
	}

	objectives := make([]model.Objective, 0, len(input.Objectives))
	for _, draft := range input.Objectives {
		description := strings.TrimSpace(draft.Description)
		if description == "" {
			return nil, fmt.Errorf("%w: objective description is required", ErrInvalidArgs)
		}
		objectiveStatus := draft.Status
		if objectiveStatus == "" {
			objectiveStatus = model.ObjectiveStatusOngoing
		}
		if !model.IsValidObjectiveStatus(objectiveStatus) {
			return nil, fmt.Errorf("%w: invalid objective status %q", ErrInvalidArgs, objectiveStatus)
		}
		objectives = append(objectives, model.Objective{
			Description: description,
			Status:      objectiveStatus,
		})
	}

	inputDate := input.InputDate
	if inputDate.IsZero() {
		inputDate = time.Now()
	}

	task := model.Tasks{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		InputDate:   inputDate,
		Deadline:    input.Deadline,
		Status:      status,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&task).Error; err != nil {
			return err
		}
		if len(objectives) == 0 {
			return nil
		}
		for i := range objectives {
			objectives[i].TaskID = task.TaskID
		}
		return tx.Create(&objectives).Error
	})
	if err != nil {
		return nil, storageErr("create task", err)
	}

	return &task, nil
}

func UpdateTaskStatus(db *gorm.DB, taskID int, status string) (*model.Tasks, error) {
	if !model.IsValidTaskStatus(status) {
		return nil, fmt.Errorf("%w: invalid task status %q", ErrInvalidArgs, status)
	}

	var task model.Tasks
	if err := db.Where("task_id = ?", taskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, storageErr("get task", err)
	}

	if err := db.Model(&task).Update("status", status).Error; err != nil {
		return nil, storageErr("update task status", err)
	}
	return &task, nil
}

// DeleteTask removes the task; dependent objectives and logs go with it
// through the ON DELETE CASCADE foreign keys.
func DeleteTask(db *gorm.DB, taskID int) error {
	result := db.Where("task_id = ?", taskID).Delete(&model.Tasks{})
	if result.Error != nil {
		return storageErr("delete task", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
