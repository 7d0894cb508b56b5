package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/herdstack/herd_management_app/internal/apperrors"
	"github.com/herdstack/herd_management_app/internal/core/domain"
	portsrepo "github.com/herdstack/herd_management_app/internal/core/ports/repositories"
	portssvc "github.com/herdstack/herd_management_app/internal/core/ports/services"
	"github.com/herdstack/herd_management_app/internal/dto"
)

var (
	ErrAnimalNotMovable = errors.New("animal is no longer in the herd and cannot be moved")
	ErrSamePasture      = errors.New("animal is already in the destination pasture")
)

// movementService provides the movement ledger operations.
type movementService struct {
	BaseService
	movementRepo portsrepo.MovementRepositoryWithTx
	animalRepo   portsrepo.AnimalRepositoryFacade
	pastureRepo  portsrepo.PastureRepositoryFacade
}

// NewMovementService creates a new MovementService.
func NewMovementService(movementRepo portsrepo.MovementRepositoryWithTx, animalRepo portsrepo.AnimalRepositoryFacade, pastureRepo portsrepo.PastureRepositoryFacade) portssvc.MovementSvcFacade {
	return &movementService{
		movementRepo: movementRepo,
		animalRepo:   animalRepo,
		pastureRepo:  pastureRepo,
	}
}

var _ portssvc.MovementSvcFacade = (*movementService)(nil)

// RecordMovement opens a new residency interval for the animal. The previous
// open interval is closed at the new entry date and the animal's materialized
// pasture follows the destination, all in one repository transaction.
func (s *movementService) RecordMovement(ctx context.Context, req dto.CreateMovementRequest, actorID string) (*domain.Movement, error) {
	animal, err := s.animalRepo.FindAnimalByID(ctx, req.AnimalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("animal " + req.AnimalID + " not found")
		}
		s.LogError(ctx, err, "failed to load animal for movement", slog.String("animal_id", req.AnimalID))
		return nil, err
	}
	if animal.LifeStatus != domain.Alive {
		return nil, fmt.Errorf("%w: %s: %s is %s", apperrors.ErrValidation, ErrAnimalNotMovable, animal.Tag, animal.LifeStatus)
	}

	if _, err := s.pastureRepo.FindPastureByID(ctx, req.DestinationPastureID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("pasture " + req.DestinationPastureID + " not found")
		}
		return nil, err
	}

	if animal.CurrentPastureID != nil && *animal.CurrentPastureID == req.DestinationPastureID {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrSamePasture)
	}

	now := time.Now().UTC()
	movement := domain.Movement{
		MovementID:           uuid.New().String(),
		AnimalID:             req.AnimalID,
		OriginPastureID:      req.OriginPastureID,
		DestinationPastureID: req.DestinationPastureID,
		EntryDate:            req.EntryDate,
		Reason:               req.Reason,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	saved, err := s.movementRepo.SaveMovement(ctx, movement)
	if err != nil {
		s.LogError(ctx, err, "failed to record movement",
			slog.String("animal_id", req.AnimalID),
			slog.String("destination_pasture_id", req.DestinationPastureID))
		return nil, err
	}

	s.LogInfo(ctx, "movement recorded",
		slog.String("movement_id", saved.MovementID),
		slog.String("animal_id", saved.AnimalID),
		slog.String("destination_pasture_id", saved.DestinationPastureID))
	return saved, nil
}

// CurrentPasture resolves the pasture the animal currently occupies, or nil
// when it has no open movement.
func (s *movementService) CurrentPasture(ctx context.Context, animalID string) (*domain.Pasture, error) {
	open, err := s.movementRepo.FindOpenMovementByAnimal(ctx, animalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Make sure the animal itself exists before reporting "nowhere".
			if _, aerr := s.animalRepo.FindAnimalByID(ctx, animalID); aerr != nil {
				return nil, aerr
			}
			return nil, nil
		}
		return nil, err
	}
	return s.pastureRepo.FindPastureByID(ctx, open.DestinationPastureID)
}

// OccupancyAt returns the animals resident in the pasture on the given date.
func (s *movementService) OccupancyAt(ctx context.Context, pastureID string, asOf time.Time) ([]domain.Animal, error) {
	if _, err := s.pastureRepo.FindPastureByID(ctx, pastureID); err != nil {
		return nil, err
	}
	return s.movementRepo.OccupancyAt(ctx, pastureID, asOf)
}

// OccupancyBetween returns the animals resident at any point of [from, to].
func (s *movementService) OccupancyBetween(ctx context.Context, pastureID string, from, to time.Time) ([]domain.Animal, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end %s precedes start %s", apperrors.ErrValidation,
			to.Format(time.DateOnly), from.Format(time.DateOnly))
	}
	if _, err := s.pastureRepo.FindPastureByID(ctx, pastureID); err != nil {
		return nil, err
	}
	return s.movementRepo.OccupancyBetween(ctx, pastureID, from, to)
}

// ListMovementsByAnimal retrieves the animal's movement history.
func (s *movementService) ListMovementsByAnimal(ctx context.Context, animalID string) ([]domain.Movement, error) {
	if _, err := s.animalRepo.FindAnimalByID(ctx, animalID); err != nil {
		return nil, err
	}
	return s.movementRepo.ListMovementsByAnimal(ctx, animalID)
}

// UpdateMovement applies an administrative correction to a ledger row.
func (s *movementService) UpdateMovement(ctx context.Context, movementID string, req dto.UpdateMovementRequest, actorID string) (*domain.Movement, error) {
	movement, err := s.movementRepo.FindMovementByID(ctx, movementID)
	if err != nil {
		return nil, err
	}

	if req.EntryDate != nil {
		movement.EntryDate = *req.EntryDate
	}
	if req.ExitDate != nil {
		movement.ExitDate = req.ExitDate
	}
	if req.Reason != nil {
		movement.Reason = *req.Reason
	}
	if movement.ExitDate != nil && movement.ExitDate.Before(movement.EntryDate) {
		return nil, fmt.Errorf("%w: exit date %s precedes entry date %s", apperrors.ErrValidation,
			movement.ExitDate.Format(time.DateOnly), movement.EntryDate.Format(time.DateOnly))
	}

	// A correction must not carve an interval that intersects the animal's
	// other residency intervals.
	history, err := s.movementRepo.ListMovementsByAnimal(ctx, movement.AnimalID)
	if err != nil {
		return nil, err
	}
	for _, other := range history {
		if other.MovementID == movement.MovementID {
			continue
		}
		if movement.Overlaps(other) {
			return nil, fmt.Errorf("%w: corrected interval [%s, %s) overlaps movement %s", apperrors.ErrValidation,
				movement.EntryDate.Format(time.DateOnly), formatExit(movement.ExitDate), other.MovementID)
		}
	}

	movement.LastUpdatedAt = time.Now().UTC()
	movement.LastUpdatedBy = actorID

	if err := s.movementRepo.UpdateMovement(ctx, *movement); err != nil {
		s.LogError(ctx, err, "failed to update movement", slog.String("movement_id", movementID))
		return nil, err
	}

	s.LogInfo(ctx, "movement corrected", slog.String("movement_id", movementID))
	return s.movementRepo.FindMovementByID(ctx, movementID)
}

func formatExit(exit *time.Time) string {
	if exit == nil {
		return "open"
	}
	return exit.Format(time.DateOnly)
}

// DeleteMovement removes a ledger row as an administrative correction.
func (s *movementService) DeleteMovement(ctx context.Context, movementID string) error {
	if err := s.movementRepo.DeleteMovement(ctx, movementID); err != nil {
		s.LogError(ctx, err, "failed to delete movement", slog.String("movement_id", movementID))
		return err
	}
	s.LogInfo(ctx, "movement deleted", slog.String("movement_id", movementID))
	return nil
}
