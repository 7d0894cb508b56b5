package repositories

import (
	"context"
	"time"

	"github.com/herdstack/herd_management_app/internal/core/domain"
)

// MovementReader defines read operations over the movement ledger.
type MovementReader interface {
	// FindMovementByID retrieves a single movement.
	FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error)

	// FindOpenMovementByAnimal retrieves the animal's open movement.
	// Returns ErrNotFound when the animal has none.
	FindOpenMovementByAnimal(ctx context.Context, animalID string) (*domain.Movement, error)

	// ListMovementsByAnimal retrieves the animal's full movement history,
	// newest entry first.
	ListMovementsByAnimal(ctx context.Context, animalID string) ([]domain.Movement, error)

	// OccupancyAt returns the animals resident in the pasture on the given
	// date: entry on or before the date and exit after it or still open.
	OccupancyAt(ctx context.Context, pastureID string, asOf time.Time) ([]domain.Animal, error)

	// OccupancyBetween returns the animals resident in the pasture at any
	// point of the [from, to] range.
	OccupancyBetween(ctx context.Context, pastureID string, from, to time.Time) ([]domain.Animal, error)
}

// MovementWriter defines write operations over the movement ledger. Every
// method is one atomic unit: the prior-interval close, the ledger write and
// the animal's materialized pasture update commit together or not at all.
type MovementWriter interface {
	// SaveMovement persists a new open movement. Within one transaction it
	// locks the animal row, closes the previous open movement (exit = new
	// entry date), resolves the origin pasture when the movement carries
	// none, inserts the row and updates the animal's materialized pasture.
	// Fails with ErrValidation when the entry date precedes the open
	// interval's entry date, and with ErrConsistency when more than one open
	// movement is found.
	SaveMovement(ctx context.Context, movement domain.Movement) (*domain.Movement, error)

	// UpdateMovement applies an administrative correction to a movement and
	// re-derives the animal's materialized pasture from the ledger in the
	// same transaction.
	UpdateMovement(ctx context.Context, movement domain.Movement) error

	// DeleteMovement removes a movement (administrative correction only) and
	// re-derives the animal's materialized pasture in the same transaction.
	DeleteMovement(ctx context.Context, movementID string) error
}

// MovementRepositoryFacade combines all movement ledger repository interfaces.
type MovementRepositoryFacade interface {
	MovementReader
	MovementWriter
}

// MovementRepositoryWithTx extends the facade with transaction capabilities.
type MovementRepositoryWithTx interface {
	MovementRepositoryFacade
	TransactionManager
}
