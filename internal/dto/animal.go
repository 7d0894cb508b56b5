package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAnimalRequest registers a new animal in the herd.
type CreateAnimalRequest struct {
	Tag       string    `json:"tag" binding:"required,max=50"`
	Name      string    `json:"name" binding:"max=100"`
	BirthDate time.Time `json:"birthDate" binding:"required"`
	Sex       string    `json:"sex" binding:"required,oneof=M F"`
	MotherID  *string   `json:"motherID"`
	FatherID  *string   `json:"fatherID"`
	Notes     string    `json:"notes"`
}

// UpdateAnimalRequest updates mutable animal attributes. Life status is not
// here on purpose: terminal transitions only happen through dispositions.
type UpdateAnimalRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	MotherID *string `json:"motherID"`
	FatherID *string `json:"fatherID"`
	Notes    *string `json:"notes"`
}

// CreateDispositionRequest records an animal's exit from the herd.
type CreateDispositionRequest struct {
	Kind            string           `json:"kind" binding:"required,oneof=SALE SLAUGHTER DEATH"`
	DispositionDate time.Time        `json:"dispositionDate" binding:"required"`
	WeightKg        *decimal.Decimal `json:"weightKg"`
	Amount          *decimal.Decimal `json:"amount" binding:"omitempty,gte=0"`
	Counterparty    string           `json:"counterparty"`
	Cause           string           `json:"cause"`
	Notes           string           `json:"notes"`
}

// CreateWeighingRequest records a weight measurement.
type CreateWeighingRequest struct {
	WeighDate time.Time       `json:"weighDate" binding:"required"`
	WeightKg  decimal.Decimal `json:"weightKg" binding:"required,gt=0"`
	Event     string          `json:"event" binding:"max=50"`
}

// CreateTreatmentRequest records a health intervention.
type CreateTreatmentRequest struct {
	TreatDate   time.Time  `json:"treatDate" binding:"required"`
	Kind        string     `json:"kind" binding:"required,oneof=VACCINE DEWORMING TREATMENT"`
	Product     string     `json:"product" binding:"required,max=100"`
	Dose        string     `json:"dose" binding:"max=50"`
	Notes       string     `json:"notes"`
	NextDueDate *time.Time `json:"nextDueDate"`
}
