package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/herdstack/herd_management_app/internal/core/domain"
	portsrepo "github.com/herdstack/herd_management_app/internal/core/ports/repositories"
)

// --- Mock AnimalRepository ---

type MockAnimalRepository struct {
	mock.Mock
}

var _ portsrepo.AnimalRepositoryFacade = (*MockAnimalRepository)(nil)

func (m *MockAnimalRepository) FindAnimalByID(ctx context.Context, animalID string) (*domain.Animal, error) {
	args := m.Called(ctx, animalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Animal), args.Error(1)
}

func (m *MockAnimalRepository) FindAnimalByTag(ctx context.Context, tag string) (*domain.Animal, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Animal), args.Error(1)
}

func (m *MockAnimalRepository) FindAnimalsByIDs(ctx context.Context, animalIDs []string) (map[string]domain.Animal, error) {
	args := m.Called(ctx, animalIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Animal), args.Error(1)
}

func (m *MockAnimalRepository) ListAnimals(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.Animal, error) {
	args := m.Called(ctx, activeOnly, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Animal), args.Error(1)
}

func (m *MockAnimalRepository) FindDispositionByAnimal(ctx context.Context, animalID string) (*domain.Disposition, error) {
	args := m.Called(ctx, animalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Disposition), args.Error(1)
}

func (m *MockAnimalRepository) SaveAnimal(ctx context.Context, animal domain.Animal) error {
	args := m.Called(ctx, animal)
	return args.Error(0)
}

func (m *MockAnimalRepository) UpdateAnimal(ctx context.Context, animal domain.Animal) error {
	args := m.Called(ctx, animal)
	return args.Error(0)
}

func (m *MockAnimalRepository) SaveDisposition(ctx context.Context, disposition domain.Disposition) error {
	args := m.Called(ctx, disposition)
	return args.Error(0)
}

// --- Mock WeighingRepository ---

type MockWeighingRepository struct {
	mock.Mock
}

var _ portsrepo.WeighingRepositoryFacade = (*MockWeighingRepository)(nil)

func (m *MockWeighingRepository) SaveWeighing(ctx context.Context, weighing domain.Weighing) error {
	args := m.Called(ctx, weighing)
	return args.Error(0)
}

func (m *MockWeighingRepository) ListWeighingsByAnimal(ctx context.Context, animalID string) ([]domain.Weighing, error) {
	args := m.Called(ctx, animalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Weighing), args.Error(1)
}

// --- Mock TreatmentRepository ---

type MockTreatmentRepository struct {
	mock.Mock
}

var _ portsrepo.TreatmentRepositoryFacade = (*MockTreatmentRepository)(nil)

func (m *MockTreatmentRepository) SaveTreatment(ctx context.Context, treatment domain.Treatment) error {
	args := m.Called(ctx, treatment)
	return args.Error(0)
}

func (m *MockTreatmentRepository) ListTreatmentsByAnimal(ctx context.Context, animalID string) ([]domain.Treatment, error) {
	args := m.Called(ctx, animalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Treatment), args.Error(1)
}

func (m *MockTreatmentRepository) ListTreatmentsDueBy(ctx context.Context, dueBy time.Time) ([]domain.Treatment, error) {
	args := m.Called(ctx, dueBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Treatment), args.Error(1)
}

// --- Mock PastureRepository ---

type MockPastureRepository struct {
	mock.Mock
}

var _ portsrepo.PastureRepositoryFacade = (*MockPastureRepository)(nil)

func (m *MockPastureRepository) FindPastureByID(ctx context.Context, pastureID string) (*domain.Pasture, error) {
	args := m.Called(ctx, pastureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pasture), args.Error(1)
}

func (m *MockPastureRepository) FindPastureByName(ctx context.Context, name string) (*domain.Pasture, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pasture), args.Error(1)
}

func (m *MockPastureRepository) ListPastures(ctx context.Context) ([]domain.Pasture, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pasture), args.Error(1)
}

func (m *MockPastureRepository) SavePasture(ctx context.Context, pasture domain.Pasture) error {
	args := m.Called(ctx, pasture)
	return args.Error(0)
}

func (m *MockPastureRepository) UpdatePasture(ctx context.Context, pasture domain.Pasture) error {
	args := m.Called(ctx, pasture)
	return args.Error(0)
}

func (m *MockPastureRepository) DeletePasture(ctx context.Context, pastureID string) error {
	args := m.Called(ctx, pastureID)
	return args.Error(0)
}

// --- Mock MovementRepository ---

type MockMovementRepository struct {
	mock.Mock
}

var _ portsrepo.MovementRepositoryWithTx = (*MockMovementRepository)(nil)

func (m *MockMovementRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error) {
	args := m.Called(ctx, movementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) FindOpenMovementByAnimal(ctx context.Context, animalID string) (*domain.Movement, error) {
	args := m.Called(ctx, animalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) ListMovementsByAnimal(ctx context.Context, animalID string) ([]domain.Movement, error) {
	args := m.Called(ctx, animalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) OccupancyAt(ctx context.Context, pastureID string, asOf time.Time) ([]domain.Animal, error) {
	args := m.Called(ctx, pastureID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Animal), args.Error(1)
}

func (m *MockMovementRepository) OccupancyBetween(ctx context.Context, pastureID string, from, to time.Time) ([]domain.Animal, error) {
	args := m.Called(ctx, pastureID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Animal), args.Error(1)
}

func (m *MockMovementRepository) SaveMovement(ctx context.Context, movement domain.Movement) (*domain.Movement, error) {
	args := m.Called(ctx, movement)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) UpdateMovement(ctx context.Context, movement domain.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) DeleteMovement(ctx context.Context, movementID string) error {
	args := m.Called(ctx, movementID)
	return args.Error(0)
}

func (m *MockMovementRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockMovementRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockMovementRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock LotRepository ---

type MockLotRepository struct {
	mock.Mock
}

var _ portsrepo.LotRepositoryFacade = (*MockLotRepository)(nil)

func (m *MockLotRepository) FindLotByID(ctx context.Context, lotID string) (*domain.Lot, error) {
	args := m.Called(ctx, lotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lot), args.Error(1)
}

func (m *MockLotRepository) FindLotByName(ctx context.Context, name string) (*domain.Lot, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lot), args.Error(1)
}

func (m *MockLotRepository) ListLots(ctx context.Context) ([]domain.Lot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Lot), args.Error(1)
}

func (m *MockLotRepository) ListAnimalsInLot(ctx context.Context, lotID string) ([]domain.Animal, error) {
	args := m.Called(ctx, lotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Animal), args.Error(1)
}

func (m *MockLotRepository) SaveLot(ctx context.Context, lot domain.Lot) error {
	args := m.Called(ctx, lot)
	return args.Error(0)
}

func (m *MockLotRepository) UpdateLot(ctx context.Context, lot domain.Lot) error {
	args := m.Called(ctx, lot)
	return args.Error(0)
}

func (m *MockLotRepository) ReassignPasture(ctx context.Context, lotID, pastureID string, entryDate time.Time, reason, actorID string, now time.Time) (int, error) {
	args := m.Called(ctx, lotID, pastureID, entryDate, reason, actorID, now)
	return args.Int(0), args.Error(1)
}

func (m *MockLotRepository) AssignAnimals(ctx context.Context, lotID string, animalIDs []string, entryDate time.Time, reason, actorID string, now time.Time) (int, error) {
	args := m.Called(ctx, lotID, animalIDs, entryDate, reason, actorID, now)
	return args.Int(0), args.Error(1)
}

// --- Mock CostRepository ---

type MockCostRepository struct {
	mock.Mock
}

var _ portsrepo.CostRepositoryFacade = (*MockCostRepository)(nil)

func (m *MockCostRepository) FindCostRecordByID(ctx context.Context, costID string) (*domain.CostRecord, error) {
	args := m.Called(ctx, costID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CostRecord), args.Error(1)
}

func (m *MockCostRepository) ListCostRecords(ctx context.Context, from, to time.Time, limit, offset int) ([]domain.CostRecord, error) {
	args := m.Called(ctx, from, to, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CostRecord), args.Error(1)
}

func (m *MockCostRepository) FindAllocationsByCostID(ctx context.Context, costID string) ([]domain.CostAllocationDetail, error) {
	args := m.Called(ctx, costID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CostAllocationDetail), args.Error(1)
}

func (m *MockCostRepository) ListAllocationsByAnimal(ctx context.Context, animalID string) ([]domain.CostAllocationDetail, error) {
	args := m.Called(ctx, animalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CostAllocationDetail), args.Error(1)
}

func (m *MockCostRepository) FindCategoryByName(ctx context.Context, name string) (*domain.CostCategory, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CostCategory), args.Error(1)
}

func (m *MockCostRepository) ListCategories(ctx context.Context) ([]domain.CostCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CostCategory), args.Error(1)
}

func (m *MockCostRepository) SaveCostRecord(ctx context.Context, record domain.CostRecord) (int, error) {
	args := m.Called(ctx, record)
	return args.Int(0), args.Error(1)
}

func (m *MockCostRepository) UpdateCostRecord(ctx context.Context, record domain.CostRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockCostRepository) GetOrCreateCategory(ctx context.Context, name, description, actorID string, now time.Time) (*domain.CostCategory, error) {
	args := m.Called(ctx, name, description, actorID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CostCategory), args.Error(1)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetPastureSummaryData(ctx context.Context, pastureID string, from, to time.Time) (int, decimal.Decimal, error) {
	args := m.Called(ctx, pastureID, from, to)
	return args.Int(0), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockReportingRepository) GetCostTotalsByCategory(ctx context.Context, from, to time.Time) ([]domain.CategoryCost, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryCost), args.Error(1)
}

func (m *MockReportingRepository) GetAllocatedTotalForAnimal(ctx context.Context, animalID string) (decimal.Decimal, error) {
	args := m.Called(ctx, animalID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
