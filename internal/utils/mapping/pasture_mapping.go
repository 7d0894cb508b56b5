package mapping

import (
	"github.com/herdstack/herd_management_app/internal/core/domain"
	"github.com/herdstack/herd_management_app/internal/models"
)

// ToModelPasture converts a domain Pasture to a model Pasture.
func ToModelPasture(d domain.Pasture) models.Pasture {
	return models.Pasture{
		PastureID:           d.PastureID,
		Name:                d.Name,
		AreaHectares:        d.AreaHectares,
		ForageType:          d.ForageType,
		MaxCapacityUnits:    d.MaxCapacityUnits,
		LastMaintenanceDate: d.LastMaintenanceDate,
		Notes:               d.Notes,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPasture converts a model Pasture to a domain Pasture.
func ToDomainPasture(m models.Pasture) domain.Pasture {
	return domain.Pasture{
		PastureID:           m.PastureID,
		Name:                m.Name,
		AreaHectares:        m.AreaHectares,
		ForageType:          m.ForageType,
		MaxCapacityUnits:    m.MaxCapacityUnits,
		LastMaintenanceDate: m.LastMaintenanceDate,
		Notes:               m.Notes,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelLot converts a domain Lot to a model Lot.
func ToModelLot(d domain.Lot) models.Lot {
	return models.Lot{
		LotID:            d.LotID,
		Name:             d.Name,
		Purpose:          string(d.Purpose),
		CurrentPastureID: d.CurrentPastureID,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLot converts a model Lot to a domain Lot.
func ToDomainLot(m models.Lot) domain.Lot {
	return domain.Lot{
		LotID:            m.LotID,
		Name:             m.Name,
		Purpose:          domain.LotPurpose(m.Purpose),
		CurrentPastureID: m.CurrentPastureID,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
