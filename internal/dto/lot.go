package dto

import "time"

// CreateLotRequest registers a new management lot.
type CreateLotRequest struct {
	Name             string  `json:"name" binding:"required,max=100"`
	Purpose          string  `json:"purpose" binding:"required,oneof=BREEDING WEANING REARING BULLS OTHER"`
	CurrentPastureID *string `json:"currentPastureID"`
}

// ReassignLotPastureRequest moves a whole lot to a new pasture. The operation
// is abort-all: either every member animal moves, or nothing is persisted.
type ReassignLotPastureRequest struct {
	PastureID string    `json:"pastureID" binding:"required"`
	EntryDate time.Time `json:"entryDate" binding:"required"`
	Reason    string    `json:"reason" binding:"max=255"`
}

// AssignAnimalsRequest places animals into a lot, moving them to the lot's
// pasture when it has one.
type AssignAnimalsRequest struct {
	AnimalIDs []string  `json:"animalIDs" binding:"required,min=1"`
	EntryDate time.Time `json:"entryDate" binding:"required"`
	Reason    string    `json:"reason" binding:"max=255"`
}

// BulkMoveResponse reports the outcome of a bulk movement operation.
type BulkMoveResponse struct {
	MovedCount int    `json:"movedCount"`
	Message    string `json:"message"`
}
