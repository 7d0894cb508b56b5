package pgsql_test

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/suite"

	"github.com/herdstack/herd_management_app/internal/apperrors"
	"github.com/herdstack/herd_management_app/internal/core/domain"
	"github.com/herdstack/herd_management_app/internal/models"
	"github.com/herdstack/herd_management_app/internal/repositories/database/pgsql"
)

type AnimalRepositoryTestSuite struct {
	suite.Suite
	mock pgxmock.PgxPoolIface
	repo *pgsql.PgxAnimalRepository
	ctx  context.Context
}

func (suite *AnimalRepositoryTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	suite.Require().NoError(err)
	suite.mock = mock
	suite.repo = &pgsql.PgxAnimalRepository{BaseRepository: pgsql.BaseRepository{Pool: mock}}
	suite.ctx = context.Background()
}

func (suite *AnimalRepositoryTestSuite) TearDownTest() {
	suite.NoError(suite.mock.ExpectationsWereMet())
	suite.mock.Close()
}

func (suite *AnimalRepositoryTestSuite) disposition() domain.Disposition {
	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	return domain.Disposition{
		DispositionID:   "di-1",
		AnimalID:        "an-1",
		Kind:            domain.DispositionSale,
		DispositionDate: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		Counterparty:    "local market",
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "herdsman",
			LastUpdatedAt: now,
			LastUpdatedBy: "herdsman",
		},
	}
}

// Recording a disposition moves the animal to its terminal status, clears the
// materialized pasture and closes the open movement at the disposition date,
// all in one transaction.
func (suite *AnimalRepositoryTestSuite) TestSaveDisposition_ClosesOpenInterval() {
	disposition := suite.disposition()
	currentPasture := "pa-1"

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`SELECT animal_id, life_status, current_pasture_id FROM animals`).
		WithArgs("an-1").
		WillReturnRows(pgxmock.NewRows([]string{"animal_id", "life_status", "current_pasture_id"}).
			AddRow("an-1", models.Alive, &currentPasture))
	suite.mock.ExpectExec(`INSERT INTO dispositions`).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	suite.mock.ExpectExec(`UPDATE animals SET life_status`).
		WithArgs("an-1", string(models.Sold), pgxmock.AnyArg(), "herdsman").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mock.ExpectExec(`UPDATE movements SET exit_date`).
		WithArgs("an-1", disposition.DispositionDate, pgxmock.AnyArg(), "herdsman").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mock.ExpectCommit()

	err := suite.repo.SaveDisposition(suite.ctx, disposition)

	suite.Require().NoError(err)
}

// A second disposition for an animal already out of the herd is refused
// before anything is written.
func (suite *AnimalRepositoryTestSuite) TestSaveDisposition_TerminalAnimalRejected() {
	disposition := suite.disposition()

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`SELECT animal_id, life_status, current_pasture_id FROM animals`).
		WithArgs("an-1").
		WillReturnRows(pgxmock.NewRows([]string{"animal_id", "life_status", "current_pasture_id"}).
			AddRow("an-1", models.Sold, (*string)(nil)))
	suite.mock.ExpectRollback()

	err := suite.repo.SaveDisposition(suite.ctx, disposition)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestAnimalRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AnimalRepositoryTestSuite))
}
