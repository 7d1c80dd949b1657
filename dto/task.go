package dto

type ObjectiveDraft struct {
	Description string `json:"description" binding:"required"`
	Status      string `json:"status"`
}

type CreateTaskRequest struct {
	Name        string           `json:"name" binding:"required"`
	InputDate   string           `json:"inputDate"`
	Deadline    string           `json:"deadline"`
	Status      string           `json:"status"`
	Description string           `json:"description"`
	Objectives  []ObjectiveDraft `json:"objectives"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
