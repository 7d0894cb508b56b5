package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePastureRequest registers a new pasture.
type CreatePastureRequest struct {
	Name                string          `json:"name" binding:"required,max=100"`
	AreaHectares        decimal.Decimal `json:"areaHectares" binding:"required,gt=0"`
	ForageType          string          `json:"forageType" binding:"max=100"`
	MaxCapacityUnits    *int            `json:"maxCapacityUnits" binding:"omitempty,gt=0"`
	LastMaintenanceDate *time.Time      `json:"lastMaintenanceDate"`
	Notes               string          `json:"notes"`
}

// UpdatePastureRequest updates pasture attributes.
type UpdatePastureRequest struct {
	Name                *string          `json:"name" binding:"omitempty,max=100"`
	AreaHectares        *decimal.Decimal `json:"areaHectares" binding:"omitempty,gt=0"`
	ForageType          *string          `json:"forageType" binding:"omitempty,max=100"`
	MaxCapacityUnits    *int             `json:"maxCapacityUnits" binding:"omitempty,gt=0"`
	LastMaintenanceDate *time.Time       `json:"lastMaintenanceDate"`
	Notes               *string          `json:"notes"`
}
