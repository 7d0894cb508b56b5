package mapping

import (
	"github.com/herdstack/herd_management_app/internal/core/domain"
	"github.com/herdstack/herd_management_app/internal/models"
)

// ToModelMovement converts a domain Movement to a model Movement.
func ToModelMovement(d domain.Movement) models.Movement {
	return models.Movement{
		MovementID:           d.MovementID,
		AnimalID:             d.AnimalID,
		OriginPastureID:      d.OriginPastureID,
		DestinationPastureID: d.DestinationPastureID,
		EntryDate:            d.EntryDate,
		ExitDate:             d.ExitDate,
		Reason:               d.Reason,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMovement converts a model Movement to a domain Movement.
func ToDomainMovement(m models.Movement) domain.Movement {
	return domain.Movement{
		MovementID:           m.MovementID,
		AnimalID:             m.AnimalID,
		OriginPastureID:      m.OriginPastureID,
		DestinationPastureID: m.DestinationPastureID,
		EntryDate:            m.EntryDate,
		ExitDate:             m.ExitDate,
		Reason:               m.Reason,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMovementSlice converts a slice of model Movements to domain Movements.
func ToDomainMovementSlice(ms []models.Movement) []domain.Movement {
	ds := make([]domain.Movement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMovement(m)
	}
	return ds
}
