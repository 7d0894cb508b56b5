package repositories

import (
	"context"

	"github.com/herdstack/herd_management_app/internal/core/domain"
)

// PastureReader defines read operations for pasture reference data.
type PastureReader interface {
	FindPastureByID(ctx context.Context, pastureID string) (*domain.Pasture, error)
	FindPastureByName(ctx context.Context, name string) (*domain.Pasture, error)
	ListPastures(ctx context.Context) ([]domain.Pasture, error)
}

// PastureWriter defines write operations for pasture reference data.
type PastureWriter interface {
	SavePasture(ctx context.Context, pasture domain.Pasture) error
	UpdatePasture(ctx context.Context, pasture domain.Pasture) error

	// DeletePasture removes the pasture. Animals and lots currently pointing
	// at it fall back to no pasture; deletion is refused (ErrValidation)
	// while movement history references it as a destination.
	DeletePasture(ctx context.Context, pastureID string) error
}

// PastureRepositoryFacade combines pasture repository interfaces.
type PastureRepositoryFacade interface {
	PastureReader
	PastureWriter
}
