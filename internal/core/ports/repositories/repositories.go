package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	AnimalRepo    AnimalRepositoryFacade
	PastureRepo   PastureRepositoryFacade
	MovementRepo  MovementRepositoryWithTx
	LotRepo       LotRepositoryFacade
	CostRepo      CostRepositoryFacade
	WeighingRepo  WeighingRepositoryFacade
	TreatmentRepo TreatmentRepositoryFacade
	TaskRepo      TaskRepositoryFacade
	ReportingRepo ReportingRepository
}
