package mapping

import (
	"github.com/herdstack/herd_management_app/internal/core/domain"
	"github.com/herdstack/herd_management_app/internal/models"
)

// ToModelCostRecord converts a domain CostRecord to a model CostRecord.
func ToModelCostRecord(d domain.CostRecord) models.CostRecord {
	return models.CostRecord{
		CostID:      d.CostID,
		CategoryID:  d.CategoryID,
		CostDate:    d.CostDate,
		Amount:      d.Amount,
		Description: d.Description,
		AnimalID:    d.AnimalID,
		PastureID:   d.PastureID,
		Quantity:    d.Quantity,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCostRecord converts a model CostRecord to a domain CostRecord.
func ToDomainCostRecord(m models.CostRecord) domain.CostRecord {
	return domain.CostRecord{
		CostID:      m.CostID,
		CategoryID:  m.CategoryID,
		CostDate:    m.CostDate,
		Amount:      m.Amount,
		Description: m.Description,
		AnimalID:    m.AnimalID,
		PastureID:   m.PastureID,
		Quantity:    m.Quantity,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCostCategory converts a model CostCategory to a domain CostCategory.
func ToDomainCostCategory(m models.CostCategory) domain.CostCategory {
	return domain.CostCategory{
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAllocationDetail converts a model CostAllocationDetail to its domain form.
func ToDomainAllocationDetail(m models.CostAllocationDetail) domain.CostAllocationDetail {
	return domain.CostAllocationDetail{
		CostID:    m.CostID,
		AnimalID:  m.AnimalID,
		Allocated: m.Allocated,
	}
}

// ToDomainAllocationDetailSlice converts a slice of model allocation details.
func ToDomainAllocationDetailSlice(ms []models.CostAllocationDetail) []domain.CostAllocationDetail {
	ds := make([]domain.CostAllocationDetail, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAllocationDetail(m)
	}
	return ds
}

// ToModelTask converts a domain Task to a model Task.
func ToModelTask(d domain.Task) models.Task {
	return models.Task{
		TaskID:      d.TaskID,
		Title:       d.Title,
		DueDate:     d.DueDate,
		Kind:        string(d.Kind),
		AnimalID:    d.AnimalID,
		PastureID:   d.PastureID,
		Notes:       d.Notes,
		Done:        d.Done,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTask converts a model Task to a domain Task.
func ToDomainTask(m models.Task) domain.Task {
	return domain.Task{
		TaskID:      m.TaskID,
		Title:       m.Title,
		DueDate:     m.DueDate,
		Kind:        domain.TaskKind(m.Kind),
		AnimalID:    m.AnimalID,
		PastureID:   m.PastureID,
		Notes:       m.Notes,
		Done:        m.Done,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
