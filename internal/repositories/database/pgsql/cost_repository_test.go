package pgsql_test

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/herdstack/herd_management_app/internal/core/domain"
	"github.com/herdstack/herd_management_app/internal/repositories/database/pgsql"
)

// decimalEq matches a decimal argument by numeric value, ignoring the
// exponent representation.
type decimalEq string

func (d decimalEq) Match(v any) bool {
	dec, ok := v.(decimal.Decimal)
	if !ok {
		return false
	}
	return dec.Equal(decimal.RequireFromString(string(d)))
}

type CostRepositoryTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	repo *pgsql.PgxCostRepository
	ctx  context.Context
}

func (suite *CostRepositoryTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	suite.Require().NoError(err)
	suite.mock = mock
	suite.repo = &pgsql.PgxCostRepository{BaseRepository: pgsql.BaseRepository{Pool: mock}}
	suite.ctx = context.Background()
}

func (suite *CostRepositoryTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func (suite *CostRepositoryTestSuite) costRecord(amount string) domain.CostRecord {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return domain.CostRecord{
		CostID:      "co-1",
		CategoryID:  "cat-feed",
		CostDate:    time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.RequireFromString(amount),
		Description: "hay bales",
		Quantity:    decimal.NewFromInt(1),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "bookkeeper",
			LastUpdatedAt: now,
			LastUpdatedBy: "bookkeeper",
		},
	}
}

func (suite *CostRepositoryTestSuite) expectInsertRecord() {
	suite.mock.ExpectExec(`INSERT INTO cost_records`).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
}

func (suite *CostRepositoryTestSuite) expectClearAllocations(costID string) {
	suite.mock.ExpectExec(`DELETE FROM cost_allocation_details`).
		WithArgs(costID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
}

func occupancyRows(pairs ...string) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"animal_id", "tag"})
	for i := 0; i < len(pairs); i += 2 {
		rows.AddRow(pairs[i], pairs[i+1])
	}
	return rows
}

// A pasture-scoped cost is split across the occupants on the cost date. The
// split runs at currency precision with the truncation remainder pinned to
// the first animal by tag, and stale allocation rows are cleared first so a
// replay writes the same set.
func (suite *CostRepositoryTestSuite) TestSaveCostRecord_SplitsAcrossOccupants() {
	pastureID := "pa-1"
	record := suite.costRecord("100.00")
	record.PastureID = &pastureID

	suite.mock.ExpectBegin()
	suite.expectInsertRecord()
	suite.expectClearAllocations("co-1")
	suite.mock.ExpectQuery(`SELECT DISTINCT a.animal_id, a.tag`).
		WithArgs(pastureID, record.CostDate).
		WillReturnRows(occupancyRows("an-1", "BR-001", "an-2", "BR-002", "an-3", "BR-003"))
	batch := suite.mock.ExpectBatch()
	batch.ExpectExec(`INSERT INTO cost_allocation_details`).
		WithArgs("co-1", "an-1", decimalEq("33.34")).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	batch.ExpectExec(`INSERT INTO cost_allocation_details`).
		WithArgs("co-1", "an-2", decimalEq("33.33")).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	batch.ExpectExec(`INSERT INTO cost_allocation_details`).
		WithArgs("co-1", "an-3", decimalEq("33.33")).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	suite.mock.ExpectCommit()

	written, err := suite.repo.SaveCostRecord(suite.ctx, record)

	suite.Require().NoError(err)
	suite.Equal(3, written)
}

// A record carrying both an animal and a pasture allocates by the pasture's
// occupancy; the animal reference stays on the record only.
func (suite *CostRepositoryTestSuite) TestSaveCostRecord_PastureDrivesAllocationWhenAnimalAlsoSet() {
	pastureID := "pa-1"
	animalID := "an-9"
	record := suite.costRecord("50.00")
	record.PastureID = &pastureID
	record.AnimalID = &animalID

	suite.mock.ExpectBegin()
	suite.expectInsertRecord()
	suite.expectClearAllocations("co-1")
	suite.mock.ExpectQuery(`SELECT DISTINCT a.animal_id, a.tag`).
		WithArgs(pastureID, record.CostDate).
		WillReturnRows(occupancyRows("an-1", "BR-001", "an-2", "BR-002"))
	batch := suite.mock.ExpectBatch()
	batch.ExpectExec(`INSERT INTO cost_allocation_details`).
		WithArgs("co-1", "an-1", decimalEq("25.00")).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	batch.ExpectExec(`INSERT INTO cost_allocation_details`).
		WithArgs("co-1", "an-2", decimalEq("25.00")).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	suite.mock.ExpectCommit()

	written, err := suite.repo.SaveCostRecord(suite.ctx, record)

	suite.Require().NoError(err)
	suite.Equal(2, written)
}

// An empty pasture on the cost date is not an error: the record commits with
// no allocation rows.
func (suite *CostRepositoryTestSuite) TestSaveCostRecord_EmptyPastureWritesNoAllocations() {
	pastureID := "pa-empty"
	record := suite.costRecord("80.00")
	record.PastureID = &pastureID

	suite.mock.ExpectBegin()
	suite.expectInsertRecord()
	suite.expectClearAllocations("co-1")
	suite.mock.ExpectQuery(`SELECT DISTINCT a.animal_id, a.tag`).
		WithArgs(pastureID, record.CostDate).
		WillReturnRows(occupancyRows())
	suite.mock.ExpectCommit()

	written, err := suite.repo.SaveCostRecord(suite.ctx, record)

	suite.Require().NoError(err)
	suite.Equal(0, written)
}

// An animal-scoped cost is attributed whole to that animal.
func (suite *CostRepositoryTestSuite) TestSaveCostRecord_AnimalScoped() {
	animalID := "an-1"
	record := suite.costRecord("75.50")
	record.AnimalID = &animalID

	suite.mock.ExpectBegin()
	suite.expectInsertRecord()
	suite.expectClearAllocations("co-1")
	batch := suite.mock.ExpectBatch()
	batch.ExpectExec(`INSERT INTO cost_allocation_details`).
		WithArgs("co-1", "an-1", decimalEq("75.50")).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	suite.mock.ExpectCommit()

	written, err := suite.repo.SaveCostRecord(suite.ctx, record)

	suite.Require().NoError(err)
	suite.Equal(1, written)
}

func TestCostRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CostRepositoryTestSuite))
}
