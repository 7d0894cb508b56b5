package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/herdstack/herd_management_app/internal/core/domain"
	portsrepo "github.com/herdstack/herd_management_app/internal/core/ports/repositories"
	portssvc "github.com/herdstack/herd_management_app/internal/core/ports/services"
	"github.com/herdstack/herd_management_app/internal/dto"
)

// pastureService provides pasture reference-data operations.
type pastureService struct {
	BaseService
	pastureRepo portsrepo.PastureRepositoryFacade
}

// NewPastureService creates a new PastureService.
func NewPastureService(pastureRepo portsrepo.PastureRepositoryFacade) portssvc.PastureSvcFacade {
	return &pastureService{
		pastureRepo: pastureRepo,
	}
}

var _ portssvc.PastureSvcFacade = (*pastureService)(nil)

// CreatePasture registers a new pasture.
func (s *pastureService) CreatePasture(ctx context.Context, req dto.CreatePastureRequest, actorID string) (*domain.Pasture, error) {
	now := time.Now().UTC()
	pasture := domain.Pasture{
		PastureID:           uuid.New().String(),
		Name:                req.Name,
		AreaHectares:        req.AreaHectares,
		ForageType:          req.ForageType,
		MaxCapacityUnits:    req.MaxCapacityUnits,
		LastMaintenanceDate: req.LastMaintenanceDate,
		Notes:               req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.pastureRepo.SavePasture(ctx, pasture); err != nil {
		s.LogError(ctx, err, "failed to create pasture", slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "pasture created", slog.String("pasture_id", pasture.PastureID), slog.String("name", pasture.Name))
	return &pasture, nil
}

// GetPastureByID retrieves a pasture by its ID.
func (s *pastureService) GetPastureByID(ctx context.Context, pastureID string) (*domain.Pasture, error) {
	return s.pastureRepo.FindPastureByID(ctx, pastureID)
}

// ListPastures lists all pastures.
func (s *pastureService) ListPastures(ctx context.Context) ([]domain.Pasture, error) {
	return s.pastureRepo.ListPastures(ctx)
}

// UpdatePasture updates pasture attributes.
func (s *pastureService) UpdatePasture(ctx context.Context, pastureID string, req dto.UpdatePastureRequest, actorID string) (*domain.Pasture, error) {
	pasture, err := s.pastureRepo.FindPastureByID(ctx, pastureID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		pasture.Name = *req.Name
	}
	if req.AreaHectares != nil {
		pasture.AreaHectares = *req.AreaHectares
	}
	if req.ForageType != nil {
		pasture.ForageType = *req.ForageType
	}
	if req.MaxCapacityUnits != nil {
		pasture.MaxCapacityUnits = req.MaxCapacityUnits
	}
	if req.LastMaintenanceDate != nil {
		pasture.LastMaintenanceDate = req.LastMaintenanceDate
	}
	if req.Notes != nil {
		pasture.Notes = *req.Notes
	}

	pasture.LastUpdatedAt = time.Now().UTC()
	pasture.LastUpdatedBy = actorID

	if err := s.pastureRepo.UpdatePasture(ctx, *pasture); err != nil {
		s.LogError(ctx, err, "failed to update pasture", slog.String("pasture_id", pastureID))
		return nil, err
	}
	return pasture, nil
}

// DeletePasture removes a pasture. The repository refuses while movement
// history still references it.
func (s *pastureService) DeletePasture(ctx context.Context, pastureID string) error {
	if err := s.pastureRepo.DeletePasture(ctx, pastureID); err != nil {
		s.LogError(ctx, err, "failed to delete pasture", slog.String("pasture_id", pastureID))
		return err
	}
	s.LogInfo(ctx, "pasture deleted", slog.String("pasture_id", pastureID))
	return nil
}
