package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/herdstack/herd_management_app/internal/apperrors"
	"github.com/herdstack/herd_management_app/internal/core/domain"
	portsrepo "github.com/herdstack/herd_management_app/internal/core/ports/repositories"
	portssvc "github.com/herdstack/herd_management_app/internal/core/ports/services"
	"github.com/herdstack/herd_management_app/internal/dto"
)

var (
	ErrAlreadyDisposed = errors.New("animal already has a terminal life status")
	ErrParentNotFound  = errors.New("parent animal not found")
)

// animalService provides animal registration, lifecycle, weighing and health
// treatment operations.
type animalService struct {
	BaseService
	animalRepo    portsrepo.AnimalRepositoryFacade
	weighingRepo  portsrepo.WeighingRepositoryFacade
	treatmentRepo portsrepo.TreatmentRepositoryFacade
}

// NewAnimalService creates a new AnimalService.
func NewAnimalService(animalRepo portsrepo.AnimalRepositoryFacade, weighingRepo portsrepo.WeighingRepositoryFacade, treatmentRepo portsrepo.TreatmentRepositoryFacade) portssvc.AnimalSvcFacade {
	return &animalService{
		animalRepo:    animalRepo,
		weighingRepo:  weighingRepo,
		treatmentRepo: treatmentRepo,
	}
}

var _ portssvc.AnimalSvcFacade = (*animalService)(nil)

func (s *animalService) checkParent(ctx context.Context, parentID *string, expected domain.Sex) error {
	if parentID == nil {
		return nil
	}
	parent, err := s.animalRepo.FindAnimalByID(ctx, *parentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: %s: %s", apperrors.ErrValidation, ErrParentNotFound, *parentID)
		}
		return err
	}
	if parent.Sex != expected {
		return fmt.Errorf("%w: animal %s has sex %s, expected %s", apperrors.ErrValidation, parent.Tag, parent.Sex, expected)
	}
	return nil
}

// RegisterAnimal registers a new animal in the herd.
func (s *animalService) RegisterAnimal(ctx context.Context, req dto.CreateAnimalRequest, actorID string) (*domain.Animal, error) {
	if err := s.checkParent(ctx, req.MotherID, domain.Female); err != nil {
		return nil, err
	}
	if err := s.checkParent(ctx, req.FatherID, domain.Male); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	animal := domain.Animal{
		AnimalID:   uuid.New().String(),
		Tag:        req.Tag,
		Name:       req.Name,
		BirthDate:  req.BirthDate,
		Sex:        domain.Sex(req.Sex),
		LifeStatus: domain.Alive,
		MotherID:   req.MotherID,
		FatherID:   req.FatherID,
		Notes:      req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.animalRepo.SaveAnimal(ctx, animal); err != nil {
		s.LogError(ctx, err, "failed to register animal", slog.String("tag", req.Tag))
		return nil, err
	}

	s.LogInfo(ctx, "animal registered", slog.String("animal_id", animal.AnimalID), slog.String("tag", animal.Tag))
	return &animal, nil
}

// GetAnimalByID retrieves an animal by its ID.
func (s *animalService) GetAnimalByID(ctx context.Context, animalID string) (*domain.Animal, error) {
	return s.animalRepo.FindAnimalByID(ctx, animalID)
}

// GetAnimalByTag retrieves an animal by its ear tag.
func (s *animalService) GetAnimalByTag(ctx context.Context, tag string) (*domain.Animal, error) {
	return s.animalRepo.FindAnimalByTag(ctx, tag)
}

// ListAnimals lists animals ordered by tag.
func (s *animalService) ListAnimals(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.Animal, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.animalRepo.ListAnimals(ctx, activeOnly, limit, offset)
}

// UpdateAnimal updates an animal's mutable attributes.
func (s *animalService) UpdateAnimal(ctx context.Context, animalID string, req dto.UpdateAnimalRequest, actorID string) (*domain.Animal, error) {
	animal, err := s.animalRepo.FindAnimalByID(ctx, animalID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		animal.Name = *req.Name
	}
	if req.MotherID != nil {
		if err := s.checkParent(ctx, req.MotherID, domain.Female); err != nil {
			return nil, err
		}
		animal.MotherID = req.MotherID
	}
	if req.FatherID != nil {
		if err := s.checkParent(ctx, req.FatherID, domain.Male); err != nil {
			return nil, err
		}
		animal.FatherID = req.FatherID
	}
	if req.Notes != nil {
		animal.Notes = *req.Notes
	}

	animal.LastUpdatedAt = time.Now().UTC()
	animal.LastUpdatedBy = actorID

	if err := s.animalRepo.UpdateAnimal(ctx, *animal); err != nil {
		s.LogError(ctx, err, "failed to update animal", slog.String("animal_id", animalID))
		return nil, err
	}
	return animal, nil
}

// RecordDisposition moves the animal into a terminal life status. The
// repository closes the open movement in the same transaction, so the ledger
// never keeps an open interval for a gone animal.
func (s *animalService) RecordDisposition(ctx context.Context, animalID string, req dto.CreateDispositionRequest, actorID string) (*domain.Disposition, error) {
	animal, err := s.animalRepo.FindAnimalByID(ctx, animalID)
	if err != nil {
		return nil, err
	}
	if animal.LifeStatus != domain.Alive {
		return nil, fmt.Errorf("%w: %s: %s is %s", apperrors.ErrValidation, ErrAlreadyDisposed, animal.Tag, animal.LifeStatus)
	}

	kind := domain.DispositionKind(req.Kind)
	if kind == domain.DispositionDeath && req.Amount != nil && !req.Amount.Equal(decimal.Zero) {
		return nil, fmt.Errorf("%w: a death carries no sale amount", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	disposition := domain.Disposition{
		DispositionID:   uuid.New().String(),
		AnimalID:        animalID,
		Kind:            kind,
		DispositionDate: req.DispositionDate,
		WeightKg:        req.WeightKg,
		Amount:          req.Amount,
		Counterparty:    req.Counterparty,
		Cause:           req.Cause,
		Notes:           req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.animalRepo.SaveDisposition(ctx, disposition); err != nil {
		s.LogError(ctx, err, "failed to record disposition",
			slog.String("animal_id", animalID), slog.String("kind", req.Kind))
		return nil, err
	}

	s.LogInfo(ctx, "disposition recorded",
		slog.String("animal_id", animalID),
		slog.String("kind", req.Kind),
		slog.String("new_status", string(kind.LifeStatus())))
	return &disposition, nil
}

// RecordWeighing records a weight measurement for an animal.
func (s *animalService) RecordWeighing(ctx context.Context, animalID string, req dto.CreateWeighingRequest, actorID string) (*domain.Weighing, error) {
	if _, err := s.animalRepo.FindAnimalByID(ctx, animalID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	weighing := domain.Weighing{
		WeighingID: uuid.New().String(),
		AnimalID:   animalID,
		WeighDate:  req.WeighDate,
		WeightKg:   req.WeightKg,
		Event:      req.Event,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.weighingRepo.SaveWeighing(ctx, weighing); err != nil {
		s.LogError(ctx, err, "failed to record weighing", slog.String("animal_id", animalID))
		return nil, err
	}
	return &weighing, nil
}

// ListWeighings retrieves the animal's weighing history, oldest first.
func (s *animalService) ListWeighings(ctx context.Context, animalID string) ([]domain.Weighing, error) {
	if _, err := s.animalRepo.FindAnimalByID(ctx, animalID); err != nil {
		return nil, err
	}
	return s.weighingRepo.ListWeighingsByAnimal(ctx, animalID)
}

// RecordTreatment records a health intervention for an animal. Back-dating a
// treatment is allowed; NextDueDate, when set, must follow the treatment date.
func (s *animalService) RecordTreatment(ctx context.Context, animalID string, req dto.CreateTreatmentRequest, actorID string) (*domain.Treatment, error) {
	if _, err := s.animalRepo.FindAnimalByID(ctx, animalID); err != nil {
		return nil, err
	}
	if req.NextDueDate != nil && !req.NextDueDate.After(req.TreatDate) {
		return nil, fmt.Errorf("%w: follow-up date %s does not follow treatment date %s", apperrors.ErrValidation,
			req.NextDueDate.Format(time.DateOnly), req.TreatDate.Format(time.DateOnly))
	}

	now := time.Now().UTC()
	treatment := domain.Treatment{
		TreatmentID: uuid.New().String(),
		AnimalID:    animalID,
		TreatDate:   req.TreatDate,
		Kind:        domain.TreatmentKind(req.Kind),
		Product:     req.Product,
		Dose:        req.Dose,
		Notes:       req.Notes,
		NextDueDate: req.NextDueDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.treatmentRepo.SaveTreatment(ctx, treatment); err != nil {
		s.LogError(ctx, err, "failed to record treatment", slog.String("animal_id", animalID))
		return nil, err
	}
	return &treatment, nil
}

// ListTreatments retrieves the animal's treatment history, oldest first.
func (s *animalService) ListTreatments(ctx context.Context, animalID string) ([]domain.Treatment, error) {
	if _, err := s.animalRepo.FindAnimalByID(ctx, animalID); err != nil {
		return nil, err
	}
	return s.treatmentRepo.ListTreatmentsByAnimal(ctx, animalID)
}
