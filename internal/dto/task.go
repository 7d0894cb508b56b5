package dto

import "time"

// CreateTaskRequest schedules a management task.
type CreateTaskRequest struct {
	Title     string    `json:"title" binding:"required,max=200"`
	DueDate   time.Time `json:"dueDate" binding:"required"`
	Kind      string    `json:"kind" binding:"required,oneof=VACCINATION ROTATION GENERAL"`
	AnimalID  *string   `json:"animalID"`
	PastureID *string   `json:"pastureID"`
	Notes     string    `json:"notes"`
}
