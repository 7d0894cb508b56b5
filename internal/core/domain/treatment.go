package domain

import "time"

// TreatmentKind classifies a health intervention.
type TreatmentKind string

const (
	TreatmentVaccine   TreatmentKind = "VACCINE"
	TreatmentDeworming TreatmentKind = "DEWORMING"
	TreatmentSpecific  TreatmentKind = "TREATMENT"
)

// Treatment is one health intervention applied to an animal. NextDueDate
// carries the planned follow-up, e.g. a booster shot.
type Treatment struct {
	TreatmentID string        `json:"treatmentID"`
	AnimalID    string        `json:"animalID"`
	TreatDate   time.Time     `json:"treatDate"`
	Kind        TreatmentKind `json:"kind"`
	Product     string        `json:"product"`
	Dose        string        `json:"dose"`
	Notes       string        `json:"notes"`
	NextDueDate *time.Time    `json:"nextDueDate"`
	AuditFields
}
