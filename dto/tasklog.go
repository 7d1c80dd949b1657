package dto

type AddLogRequest struct {
	Message string `json:"message" binding:"required"`
	Date    string `json:"date"`
}
