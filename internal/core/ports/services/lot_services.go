package services

import (
	"context"

	"github.com/herdstack/herd_management_app/internal/core/domain"
	"github.com/herdstack/herd_management_app/internal/dto"
)

// LotSvcFacade exposes lot management, including the bulk pasture
// reassignment that moves every member through the movement ledger.
type LotSvcFacade interface {
	CreateLot(ctx context.Context, req dto.CreateLotRequest, actorID string) (*domain.Lot, error)
	GetLotByID(ctx context.Context, lotID string) (*domain.Lot, error)
	ListLots(ctx context.Context) ([]domain.Lot, error)
	ListLotAnimals(ctx context.Context, lotID string) ([]domain.Animal, error)

	// ReassignLotPasture is abort-all: either every member animal is moved
	// and the lot pointer updated, or nothing is persisted.
	ReassignLotPasture(ctx context.Context, lotID string, req dto.ReassignLotPastureRequest, actorID string) (int, error)

	// AssignAnimalsToLot places animals into the lot, moving them to the
	// lot's pasture when it has one. Abort-all as well.
	AssignAnimalsToLot(ctx context.Context, lotID string, req dto.AssignAnimalsRequest, actorID string) (int, error)
}
