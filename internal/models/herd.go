package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LifeStatus mirrors domain.LifeStatus at the persistence layer.
type LifeStatus string

const (
	Alive       LifeStatus = "ALIVE"
	Sold        LifeStatus = "SOLD"
	Slaughtered LifeStatus = "SLAUGHTERED"
	Dead        LifeStatus = "DEAD"
	Semen       LifeStatus = "SEMEN"
)

// Pasture maps to the pastures table.
type Pasture struct {
	PastureID           string          `json:"pastureID"`
	Name                string          `json:"name"`
	AreaHectares        decimal.Decimal `json:"areaHectares"`
	ForageType          string          `json:"forageType"`
	MaxCapacityUnits    *int            `json:"maxCapacityUnits"`
	LastMaintenanceDate *time.Time      `json:"lastMaintenanceDate"`
	Notes               string          `json:"notes"`
	AuditFields
}

// Animal maps to the animals table.
type Animal struct {
	AnimalID         string     `json:"animalID"`
	Tag              string     `json:"tag"`
	Name             string     `json:"name"`
	BirthDate        time.Time  `json:"birthDate"`
	Sex              string     `json:"sex"`
	LifeStatus       LifeStatus `json:"lifeStatus"`
	MotherID         *string    `json:"motherID"`
	FatherID         *string    `json:"fatherID"`
	Notes            string     `json:"notes"`
	CurrentPastureID *string    `json:"currentPastureID"`
	CurrentLotID     *string    `json:"currentLotID"`
	AuditFields
}

// Movement maps to the movements table. A NULL exit_date marks the animal's
// current residency; a partial unique index keeps at most one per animal.
type Movement struct {
	MovementID           string     `json:"movementID"`
	AnimalID             string     `json:"animalID"`
	OriginPastureID      *string    `json:"originPastureID"`
	DestinationPastureID string     `json:"destinationPastureID"`
	EntryDate            time.Time  `json:"entryDate"`
	ExitDate             *time.Time `json:"exitDate"`
	Reason               string     `json:"reason"`
	AuditFields
}

// Lot maps to the lots table.
type Lot struct {
	LotID            string  `json:"lotID"`
	Name             string  `json:"name"`
	Purpose          string  `json:"purpose"`
	CurrentPastureID *string `json:"currentPastureID"`
	AuditFields
}

// Disposition maps to the dispositions table.
type Disposition struct {
	DispositionID   string           `json:"dispositionID"`
	AnimalID        string           `json:"animalID"`
	Kind            string           `json:"kind"`
	DispositionDate time.Time        `json:"dispositionDate"`
	WeightKg        *decimal.Decimal `json:"weightKg"`
	Amount          *decimal.Decimal `json:"amount"`
	Counterparty    string           `json:"counterparty"`
	Cause           string           `json:"cause"`
	Notes           string           `json:"notes"`
	AuditFields
}

// Weighing maps to the weighings table.
type Weighing struct {
	WeighingID string          `json:"weighingID"`
	AnimalID   string          `json:"animalID"`
	WeighDate  time.Time       `json:"weighDate"`
	WeightKg   decimal.Decimal `json:"weightKg"`
	Event      string          `json:"event"`
	AuditFields
}

// Treatment maps to the treatments table.
type Treatment struct {
	TreatmentID string     `json:"treatmentID"`
	AnimalID    string     `json:"animalID"`
	TreatDate   time.Time  `json:"treatDate"`
	Kind        string     `json:"kind"`
	Product     string     `json:"product"`
	Dose        string     `json:"dose"`
	Notes       string     `json:"notes"`
	NextDueDate *time.Time `json:"nextDueDate"`
	AuditFields
}

// Task maps to the tasks table.
type Task struct {
	TaskID    string    `json:"taskID"`
	Title     string    `json:"title"`
	DueDate   time.Time `json:"dueDate"`
	Kind      string    `json:"kind"`
	AnimalID  *string   `json:"animalID"`
	PastureID *string   `json:"pastureID"`
	Notes     string    `json:"notes"`
	Done      bool      `json:"done"`
	AuditFields
}
