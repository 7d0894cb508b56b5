package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/herdstack/herd_management_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	animalRepo := newPgxAnimalRepository(dbPool)
	pastureRepo := newPgxPastureRepository(dbPool)
	movementRepo := newPgxMovementRepository(dbPool)
	lotRepo := newPgxLotRepository(dbPool)
	costRepo := newPgxCostRepository(dbPool)
	weighingRepo := newPgxWeighingRepository(dbPool)
	treatmentRepo := newPgxTreatmentRepository(dbPool)
	taskRepo := newPgxTaskRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AnimalRepo:    animalRepo,
		PastureRepo:   pastureRepo,
		MovementRepo:  movementRepo,
		LotRepo:       lotRepo,
		CostRepo:      costRepo,
		WeighingRepo:  weighingRepo,
		TreatmentRepo: treatmentRepo,
		TaskRepo:      taskRepo,
		ReportingRepo: reportingRepo,
	}
}
