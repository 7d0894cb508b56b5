package services

// ServiceContainer holds all service facades needed by the handlers.
type ServiceContainer struct {
	Animal    AnimalSvcFacade
	Pasture   PastureSvcFacade
	Movement  MovementSvcFacade
	Lot       LotSvcFacade
	Cost      CostSvcFacade
	Task      TaskSvcFacade
	Reporting ReportingSvcFacade
}
