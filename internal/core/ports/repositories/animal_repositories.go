package repositories

import (
	"context"
	"time"

	"github.com/herdstack/herd_management_app/internal/core/domain"
)

// AnimalReader defines read operations for animal data.
type AnimalReader interface {
	FindAnimalByID(ctx context.Context, animalID string) (*domain.Animal, error)
	FindAnimalByTag(ctx context.Context, tag string) (*domain.Animal, error)

	// FindAnimalsByIDs retrieves several animals keyed by ID. Missing IDs are
	// simply absent from the map.
	FindAnimalsByIDs(ctx context.Context, animalIDs []string) (map[string]domain.Animal, error)

	// ListAnimals lists animals ordered by tag. When activeOnly is set only
	// non-terminal animals are returned.
	ListAnimals(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.Animal, error)

	// FindDispositionByAnimal retrieves the animal's disposition record, or
	// ErrNotFound when the animal is still in the herd.
	FindDispositionByAnimal(ctx context.Context, animalID string) (*domain.Disposition, error)
}

// AnimalWriter defines write operations for animal data.
type AnimalWriter interface {
	SaveAnimal(ctx context.Context, animal domain.Animal) error
	UpdateAnimal(ctx context.Context, animal domain.Animal) error

	// SaveDisposition records the animal's exit from the herd: within one
	// transaction it inserts the disposition, flips the animal to the
	// matching terminal life status and closes the animal's open movement
	// with the disposition date. Fails with ErrValidation when the animal is
	// not ALIVE.
	SaveDisposition(ctx context.Context, disposition domain.Disposition) error
}

// AnimalRepositoryFacade combines animal repository interfaces.
type AnimalRepositoryFacade interface {
	AnimalReader
	AnimalWriter
}

// WeighingRepositoryFacade defines persistence for weight measurements.
type WeighingRepositoryFacade interface {
	SaveWeighing(ctx context.Context, weighing domain.Weighing) error

	// ListWeighingsByAnimal retrieves weighings ordered by date ascending.
	ListWeighingsByAnimal(ctx context.Context, animalID string) ([]domain.Weighing, error)
}

// TreatmentRepositoryFacade defines persistence for health treatments.
type TreatmentRepositoryFacade interface {
	SaveTreatment(ctx context.Context, treatment domain.Treatment) error

	// ListTreatmentsByAnimal retrieves treatments ordered by date ascending.
	ListTreatmentsByAnimal(ctx context.Context, animalID string) ([]domain.Treatment, error)

	// ListTreatmentsDueBy retrieves treatments whose follow-up date falls on
	// or before the given date, across all animals.
	ListTreatmentsDueBy(ctx context.Context, dueBy time.Time) ([]domain.Treatment, error)
}
