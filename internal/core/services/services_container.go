package services

import (
	portsrepo "github.com/herdstack/herd_management_app/internal/core/ports/repositories"
	portssvc "github.com/herdstack/herd_management_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Animal = NewAnimalService(repos.AnimalRepo, repos.WeighingRepo, repos.TreatmentRepo)
	container.Pasture = NewPastureService(repos.PastureRepo)
	container.Movement = NewMovementService(repos.MovementRepo, repos.AnimalRepo, repos.PastureRepo)
	container.Lot = NewLotService(repos.LotRepo, repos.PastureRepo)
	container.Cost = NewCostService(repos.CostRepo, repos.AnimalRepo, repos.PastureRepo)
	container.Task = NewTaskService(repos.TaskRepo, repos.AnimalRepo, repos.PastureRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.PastureRepo, repos.AnimalRepo, repos.WeighingRepo, repos.TreatmentRepo)

	return container
}
