package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/herdstack/herd_management_app/internal/apperrors"
	"github.com/herdstack/herd_management_app/internal/core/domain"
	portsrepo "github.com/herdstack/herd_management_app/internal/core/ports/repositories"
	portssvc "github.com/herdstack/herd_management_app/internal/core/ports/services"
	"github.com/herdstack/herd_management_app/internal/dto"
)

// lotService provides lot management including the bulk pasture moves.
type lotService struct {
	BaseService
	lotRepo     portsrepo.LotRepositoryFacade
	pastureRepo portsrepo.PastureRepositoryFacade
}

// NewLotService creates a new LotService.
func NewLotService(lotRepo portsrepo.LotRepositoryFacade, pastureRepo portsrepo.PastureRepositoryFacade) portssvc.LotSvcFacade {
	return &lotService{
		lotRepo:     lotRepo,
		pastureRepo: pastureRepo,
	}
}

var _ portssvc.LotSvcFacade = (*lotService)(nil)

// CreateLot registers a new management lot.
func (s *lotService) CreateLot(ctx context.Context, req dto.CreateLotRequest, actorID string) (*domain.Lot, error) {
	if req.CurrentPastureID != nil {
		if _, err := s.pastureRepo.FindPastureByID(ctx, *req.CurrentPastureID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewNotFoundError("pasture " + *req.CurrentPastureID + " not found")
			}
			return nil, err
		}
	}

	now := time.Now().UTC()
	lot := domain.Lot{
		LotID:            uuid.New().String(),
		Name:             req.Name,
		Purpose:          domain.LotPurpose(req.Purpose),
		CurrentPastureID: req.CurrentPastureID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.lotRepo.SaveLot(ctx, lot); err != nil {
		s.LogError(ctx, err, "failed to create lot", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "lot created", slog.String("lot_id", lot.LotID), slog.String("name", lot.Name))
	return &lot, nil
}

// GetLotByID retrieves a lot by its ID.
func (s *lotService) GetLotByID(ctx context.Context, lotID string) (*domain.Lot, error) {
	return s.lotRepo.FindLotByID(ctx, lotID)
}

// ListLots lists all lots.
func (s *lotService) ListLots(ctx context.Context) ([]domain.Lot, error) {
	return s.lotRepo.ListLots(ctx)
}

// ListLotAnimals retrieves the lot's current members.
func (s *lotService) ListLotAnimals(ctx context.Context, lotID string) ([]domain.Animal, error) {
	if _, err := s.lotRepo.FindLotByID(ctx, lotID); err != nil {
		return nil, err
	}
	return s.lotRepo.ListAnimalsInLot(ctx, lotID)
}

// ReassignLotPasture moves the whole lot to a new pasture. The repository
// runs the operation abort-all: one ineligible member rolls back every move.
func (s *lotService) ReassignLotPasture(ctx context.Context, lotID string, req dto.ReassignLotPastureRequest, actorID string) (int, error) {
	if _, err := s.pastureRepo.FindPastureByID(ctx, req.PastureID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, apperrors.NewNotFoundError("pasture " + req.PastureID + " not found")
		}
		return 0, err
	}

	now := time.Now().UTC()
	moved, err := s.lotRepo.ReassignPasture(ctx, lotID, req.PastureID, req.EntryDate, req.Reason, actorID, now)
	if err != nil {
		s.LogError(ctx, err, "failed to reassign lot pasture",
			slog.String("lot_id", lotID), slog.String("pasture_id", req.PastureID))
		return 0, err
	}

	s.LogInfo(ctx, "lot reassigned",
		slog.String("lot_id", lotID),
		slog.String("pasture_id", req.PastureID),
		slog.Int("moved_count", moved))
	return moved, nil
}

// AssignAnimalsToLot places animals into the lot, abort-all.
func (s *lotService) AssignAnimalsToLot(ctx context.Context, lotID string, req dto.AssignAnimalsRequest, actorID string) (int, error) {
	now := time.Now().UTC()
	assigned, err := s.lotRepo.AssignAnimals(ctx, lotID, req.AnimalIDs, req.EntryDate, req.Reason, actorID, now)
	if err != nil {
		s.LogError(ctx, err, "failed to assign animals to lot",
			slog.String("lot_id", lotID), slog.Int("animal_count", len(req.AnimalIDs)))
		return 0, err
	}

	s.LogInfo(ctx, "animals assigned to lot",
		slog.String("lot_id", lotID), slog.Int("assigned_count", assigned))
	return assigned, nil
}
