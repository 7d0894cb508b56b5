package services

import (
	"context"

	"github.com/herdstack/herd_management_app/internal/core/domain"
	"github.com/herdstack/herd_management_app/internal/dto"
)

// AnimalSvcFacade exposes animal registration, lifecycle, weighing and
// health treatment operations.
type AnimalSvcFacade interface {
	RegisterAnimal(ctx context.Context, req dto.CreateAnimalRequest, actorID string) (*domain.Animal, error)
	GetAnimalByID(ctx context.Context, animalID string) (*domain.Animal, error)
	GetAnimalByTag(ctx context.Context, tag string) (*domain.Animal, error)
	ListAnimals(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.Animal, error)
	UpdateAnimal(ctx context.Context, animalID string, req dto.UpdateAnimalRequest, actorID string) (*domain.Animal, error)

	// RecordDisposition moves the animal into a terminal life status and
	// closes its open movement. One-way: a second disposition fails.
	RecordDisposition(ctx context.Context, animalID string, req dto.CreateDispositionRequest, actorID string) (*domain.Disposition, error)

	RecordWeighing(ctx context.Context, animalID string, req dto.CreateWeighingRequest, actorID string) (*domain.Weighing, error)
	ListWeighings(ctx context.Context, animalID string) ([]domain.Weighing, error)

	RecordTreatment(ctx context.Context, animalID string, req dto.CreateTreatmentRequest, actorID string) (*domain.Treatment, error)
	ListTreatments(ctx context.Context, animalID string) ([]domain.Treatment, error)
}
