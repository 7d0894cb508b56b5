package services

import (
	"context"

	"github.com/herdstack/herd_management_app/internal/core/domain"
	"github.com/herdstack/herd_management_app/internal/dto"
)

// PastureSvcFacade exposes pasture reference-data operations.
type PastureSvcFacade interface {
	CreatePasture(ctx context.Context, req dto.CreatePastureRequest, actorID string) (*domain.Pasture, error)
	GetPastureByID(ctx context.Context, pastureID string) (*domain.Pasture, error)
	ListPastures(ctx context.Context) ([]domain.Pasture, error)
	UpdatePasture(ctx context.Context, pastureID string, req dto.UpdatePastureRequest, actorID string) (*domain.Pasture, error)
	DeletePasture(ctx context.Context, pastureID string) error
}
