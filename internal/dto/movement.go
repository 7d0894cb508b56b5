package dto

import "time"

// CreateMovementRequest moves one animal to a destination pasture, opening a
// new residency interval in the ledger.
type CreateMovementRequest struct {
	AnimalID             string    `json:"animalID" binding:"required"`
	DestinationPastureID string    `json:"destinationPastureID" binding:"required"`
	EntryDate            time.Time `json:"entryDate" binding:"required"`
	// OriginPastureID overrides the origin; when absent the animal's current
	// materialized pasture is used.
	OriginPastureID *string `json:"originPastureID"`
	Reason          string  `json:"reason" binding:"max=255"`
}

// UpdateMovementRequest applies an administrative correction to a ledger row.
type UpdateMovementRequest struct {
	EntryDate *time.Time `json:"entryDate"`
	ExitDate  *time.Time `json:"exitDate"`
	Reason    *string    `json:"reason" binding:"omitempty,max=255"`
}
