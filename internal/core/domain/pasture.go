package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pasture is a named grazing location. Pure reference data: animals and lots
// point at it, it carries no behaviour of its own.
type Pasture struct {
	PastureID           string          `json:"pastureID"`
	Name                string          `json:"name"`
	AreaHectares        decimal.Decimal `json:"areaHectares"`
	ForageType          string          `json:"forageType"`
	MaxCapacityUnits    *int            `json:"maxCapacityUnits"`    // animal units the pasture supports, if known
	LastMaintenanceDate *time.Time      `json:"lastMaintenanceDate"` // last mowing/fertilizing pass
	Notes               string          `json:"notes"`
	AuditFields
}
