package mapping

import (
	"github.com/herdstack/herd_management_app/internal/core/domain"
	"github.com/herdstack/herd_management_app/internal/models"
)

// ToModelAnimal converts a domain Animal to a model Animal.
func ToModelAnimal(d domain.Animal) models.Animal {
	return models.Animal{
		AnimalID:         d.AnimalID,
		Tag:              d.Tag,
		Name:             d.Name,
		BirthDate:        d.BirthDate,
		Sex:              string(d.Sex),
		LifeStatus:       models.LifeStatus(d.LifeStatus),
		MotherID:         d.MotherID,
		FatherID:         d.FatherID,
		Notes:            d.Notes,
		CurrentPastureID: d.CurrentPastureID,
		CurrentLotID:     d.CurrentLotID,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAnimal converts a model Animal to a domain Animal.
func ToDomainAnimal(m models.Animal) domain.Animal {
	return domain.Animal{
		AnimalID:         m.AnimalID,
		Tag:              m.Tag,
		Name:             m.Name,
		BirthDate:        m.BirthDate,
		Sex:              domain.Sex(m.Sex),
		LifeStatus:       domain.LifeStatus(m.LifeStatus),
		MotherID:         m.MotherID,
		FatherID:         m.FatherID,
		Notes:            m.Notes,
		CurrentPastureID: m.CurrentPastureID,
		CurrentLotID:     m.CurrentLotID,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAnimalSlice converts a slice of model Animals to domain Animals.
func ToDomainAnimalSlice(ms []models.Animal) []domain.Animal {
	ds := make([]domain.Animal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAnimal(m)
	}
	return ds
}

// ToModelDisposition converts a domain Disposition to a model Disposition.
func ToModelDisposition(d domain.Disposition) models.Disposition {
	return models.Disposition{
		DispositionID:   d.DispositionID,
		AnimalID:        d.AnimalID,
		Kind:            string(d.Kind),
		DispositionDate: d.DispositionDate,
		WeightKg:        d.WeightKg,
		Amount:          d.Amount,
		Counterparty:    d.Counterparty,
		Cause:           d.Cause,
		Notes:           d.Notes,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDisposition converts a model Disposition to a domain Disposition.
func ToDomainDisposition(m models.Disposition) domain.Disposition {
	return domain.Disposition{
		DispositionID:   m.DispositionID,
		AnimalID:        m.AnimalID,
		Kind:            domain.DispositionKind(m.Kind),
		DispositionDate: m.DispositionDate,
		WeightKg:        m.WeightKg,
		Amount:          m.Amount,
		Counterparty:    m.Counterparty,
		Cause:           m.Cause,
		Notes:           m.Notes,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelWeighing converts a domain Weighing to a model Weighing.
func ToModelWeighing(d domain.Weighing) models.Weighing {
	return models.Weighing{
		WeighingID:  d.WeighingID,
		AnimalID:    d.AnimalID,
		WeighDate:   d.WeighDate,
		WeightKg:    d.WeightKg,
		Event:       d.Event,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWeighing converts a model Weighing to a domain Weighing.
func ToDomainWeighing(m models.Weighing) domain.Weighing {
	return domain.Weighing{
		WeighingID:  m.WeighingID,
		AnimalID:    m.AnimalID,
		WeighDate:   m.WeighDate,
		WeightKg:    m.WeightKg,
		Event:       m.Event,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainWeighingSlice converts a slice of model Weighings to domain Weighings.
func ToDomainWeighingSlice(ms []models.Weighing) []domain.Weighing {
	ds := make([]domain.Weighing, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWeighing(m)
	}
	return ds
}

// ToModelTreatment converts a domain Treatment to a model Treatment.
func ToModelTreatment(d domain.Treatment) models.Treatment {
	return models.Treatment{
		TreatmentID: d.TreatmentID,
		AnimalID:    d.AnimalID,
		TreatDate:   d.TreatDate,
		Kind:        string(d.Kind),
		Product:     d.Product,
		Dose:        d.Dose,
		Notes:       d.Notes,
		NextDueDate: d.NextDueDate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTreatment converts a model Treatment to a domain Treatment.
func ToDomainTreatment(m models.Treatment) domain.Treatment {
	return domain.Treatment{
		TreatmentID: m.TreatmentID,
		AnimalID:    m.AnimalID,
		TreatDate:   m.TreatDate,
		Kind:        domain.TreatmentKind(m.Kind),
		Product:     m.Product,
		Dose:        m.Dose,
		Notes:       m.Notes,
		NextDueDate: m.NextDueDate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTreatmentSlice converts a slice of model Treatments to domain Treatments.
func ToDomainTreatmentSlice(ms []models.Treatment) []domain.Treatment {
	ds := make([]domain.Treatment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTreatment(m)
	}
	return ds
}
