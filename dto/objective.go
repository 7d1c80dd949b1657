package dto

type AddObjectiveRequest struct {
	Description string `json:"description" binding:"required"`
	Status      string `json:"status"`
}

type UpdateObjectiveStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
