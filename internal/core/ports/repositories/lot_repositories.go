package repositories

import (
	"context"
	"time"

	"github.com/herdstack/herd_management_app/internal/core/domain"
)

// LotReader defines read operations for lot data.
type LotReader interface {
	FindLotByID(ctx context.Context, lotID string) (*domain.Lot, error)
	FindLotByName(ctx context.Context, name string) (*domain.Lot, error)
	ListLots(ctx context.Context) ([]domain.Lot, error)

	// ListAnimalsInLot retrieves the lot's current members ordered by tag.
	ListAnimalsInLot(ctx context.Context, lotID string) ([]domain.Animal, error)
}

// LotWriter defines write operations for lot data. The bulk methods are
// abort-all: one member failing validation rolls back every member's change.
type LotWriter interface {
	SaveLot(ctx context.Context, lot domain.Lot) error
	UpdateLot(ctx context.Context, lot domain.Lot) error

	// ReassignPasture moves the whole lot to a new pasture in one
	// transaction: every member whose current pasture differs gets a ledger
	// movement (prior interval closed, materialized pasture updated), and the
	// lot's own pasture pointer is updated regardless. Any non-ALIVE member
	// fails the operation with ErrValidation. Returns the number of animals
	// that were actually moved.
	ReassignPasture(ctx context.Context, lotID, pastureID string, entryDate time.Time, reason, actorID string, now time.Time) (int, error)

	// AssignAnimals places the given animals into the lot in one
	// transaction. When the lot has a pasture differing from a member's
	// current one, the member also gets a ledger movement. Returns the number
	// of animals assigned.
	AssignAnimals(ctx context.Context, lotID string, animalIDs []string, entryDate time.Time, reason, actorID string, now time.Time) (int, error)
}

// LotRepositoryFacade combines lot repository interfaces.
type LotRepositoryFacade interface {
	LotReader
	LotWriter
}
