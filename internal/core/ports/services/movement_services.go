package services

import (
	"context"
	"time"

	"github.com/herdstack/herd_management_app/internal/core/domain"
	"github.com/herdstack/herd_management_app/internal/dto"
)

// MovementSvcFacade exposes the movement ledger operations: opening residency
// intervals, reading occupancy and applying administrative corrections.
type MovementSvcFacade interface {
	// RecordMovement opens a new residency interval for the animal, closing
	// its previous one at the new entry date.
	RecordMovement(ctx context.Context, req dto.CreateMovementRequest, actorID string) (*domain.Movement, error)

	// CurrentPasture returns the pasture the animal is in, or nil when it has
	// no open movement.
	CurrentPasture(ctx context.Context, animalID string) (*domain.Pasture, error)

	// OccupancyAt returns the animals resident in the pasture on a date.
	OccupancyAt(ctx context.Context, pastureID string, asOf time.Time) ([]domain.Animal, error)

	// OccupancyBetween returns the animals resident in the pasture at any
	// point of the range.
	OccupancyBetween(ctx context.Context, pastureID string, from, to time.Time) ([]domain.Animal, error)

	ListMovementsByAnimal(ctx context.Context, animalID string) ([]domain.Movement, error)

	// UpdateMovement and DeleteMovement are administrative corrections; the
	// animal's materialized pasture is re-derived from the ledger.
	UpdateMovement(ctx context.Context, movementID string, req dto.UpdateMovementRequest, actorID string) (*domain.Movement, error)
	DeleteMovement(ctx context.Context, movementID string) error
}
