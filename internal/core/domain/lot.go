package domain

// LotPurpose categorizes what a management lot is for.
type LotPurpose string

const (
	LotBreeding LotPurpose = "BREEDING" // breeding dams
	LotWeaning  LotPurpose = "WEANING"  // calves at weaning
	LotRearing  LotPurpose = "REARING"  // growing steers/heifers
	LotBulls    LotPurpose = "BULLS"
	LotOther    LotPurpose = "OTHER"
)

// Lot is a management grouping of animals that share a pasture and a purpose.
// CurrentPastureID is where the lot as a whole is kept; reassigning it moves
// every member animal through the movement ledger.
type Lot struct {
	LotID            string     `json:"lotID"`
	Name             string     `json:"name"`
	Purpose          LotPurpose `json:"purpose"`
	CurrentPastureID *string    `json:"currentPastureID"`
	AuditFields
}
