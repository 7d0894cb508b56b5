package domain

import "time"

// TaskKind categorizes a management task.
type TaskKind string

const (
	TaskVaccination TaskKind = "VACCINATION"
	TaskRotation    TaskKind = "ROTATION" // suggested pasture rotation
	TaskGeneral     TaskKind = "GENERAL"
)

// Task is a scheduled management chore, optionally tied to an animal or a
// pasture. The scheduler sweeps for due tasks once a day.
type Task struct {
	TaskID    string    `json:"taskID"`
	Title     string    `json:"title"`
	DueDate   time.Time `json:"dueDate"`
	Kind      TaskKind  `json:"kind"`
	AnimalID  *string   `json:"animalID"`
	PastureID *string   `json:"pastureID"`
	Notes     string    `json:"notes"`
	Done      bool      `json:"done"`
	AuditFields
}
