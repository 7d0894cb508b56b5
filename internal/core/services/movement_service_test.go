package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/herdstack/herd_management_app/internal/apperrors"
	"github.com/herdstack/herd_management_app/internal/core/domain"
	portssvc "github.com/herdstack/herd_management_app/internal/core/ports/services"
	"github.com/herdstack/herd_management_app/internal/core/services"
	"github.com/herdstack/herd_management_app/internal/dto"
)

type MovementServiceTestSuite struct {
	suite.Suite
	mockMovementRepo *MockMovementRepository
	mockAnimalRepo   *MockAnimalRepository
	mockPastureRepo  *MockPastureRepository
	service          portssvc.MovementSvcFacade
	ctx              context.Context
}

func (suite *MovementServiceTestSuite) SetupTest() {
	suite.mockMovementRepo = new(MockMovementRepository)
	suite.mockAnimalRepo = new(MockAnimalRepository)
	suite.mockPastureRepo = new(MockPastureRepository)
	suite.service = services.NewMovementService(suite.mockMovementRepo, suite.mockAnimalRepo, suite.mockPastureRepo)
	suite.ctx = context.Background()
}

func (suite *MovementServiceTestSuite) aliveAnimal(pastureID *string) *domain.Animal {
	return &domain.Animal{
		AnimalID:         uuid.New().String(),
		Tag:              "BR-001",
		Sex:              domain.Female,
		LifeStatus:       domain.Alive,
		CurrentPastureID: pastureID,
	}
}

func (suite *MovementServiceTestSuite) TestRecordMovement_Success() {
	pastureID := uuid.New().String()
	animal := suite.aliveAnimal(nil)
	entry := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	req := dto.CreateMovementRequest{
		AnimalID:             animal.AnimalID,
		DestinationPastureID: pastureID,
		EntryDate:            entry,
		Reason:               "rotation",
	}

	suite.mockAnimalRepo.On("FindAnimalByID", suite.ctx, animal.AnimalID).Return(animal, nil).Once()
	suite.mockPastureRepo.On("FindPastureByID", suite.ctx, pastureID).Return(&domain.Pasture{PastureID: pastureID}, nil).Once()

	// The repository echoes back the persisted row.
	persisted := &domain.Movement{}
	suite.mockMovementRepo.On("SaveMovement", suite.ctx, mock.AnythingOfType("domain.Movement")).
		Run(func(args mock.Arguments) { *persisted = args.Get(1).(domain.Movement) }).
		Return(persisted, nil).Once()

	saved, err := suite.service.RecordMovement(suite.ctx, req, "tester")

	suite.Require().NoError(err)
	suite.Require().NotNil(saved)
	suite.Equal(animal.AnimalID, saved.AnimalID)
	suite.Equal(pastureID, saved.DestinationPastureID)
	suite.True(saved.IsOpen())
	suite.Equal("tester", saved.CreatedBy)
	suite.mockMovementRepo.AssertExpectations(suite.T())
	suite.mockAnimalRepo.AssertExpectations(suite.T())
	suite.mockPastureRepo.AssertExpectations(suite.T())
}

func (suite *MovementServiceTestSuite) TestRecordMovement_TerminalAnimalRejected() {
	animal := suite.aliveAnimal(nil)
	animal.LifeStatus = domain.Sold

	req := dto.CreateMovementRequest{
		AnimalID:             animal.AnimalID,
		DestinationPastureID: uuid.New().String(),
		EntryDate:            time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	suite.mockAnimalRepo.On("FindAnimalByID", suite.ctx, animal.AnimalID).Return(animal, nil).Once()

	_, err := suite.service.RecordMovement(suite.ctx, req, "tester")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrAnimalNotMovable)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "SaveMovement", mock.Anything, mock.Anything)
}

func (suite *MovementServiceTestSuite) TestRecordMovement_SamePastureRejected() {
	pastureID := uuid.New().String()
	animal := suite.aliveAnimal(&pastureID)

	req := dto.CreateMovementRequest{
		AnimalID:             animal.AnimalID,
		DestinationPastureID: pastureID,
		EntryDate:            time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	suite.mockAnimalRepo.On("FindAnimalByID", suite.ctx, animal.AnimalID).Return(animal, nil).Once()
	suite.mockPastureRepo.On("FindPastureByID", suite.ctx, pastureID).Return(&domain.Pasture{PastureID: pastureID}, nil).Once()

	_, err := suite.service.RecordMovement(suite.ctx, req, "tester")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrSamePasture)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "SaveMovement", mock.Anything, mock.Anything)
}

func (suite *MovementServiceTestSuite) TestRecordMovement_AnimalNotFound() {
	animalID := uuid.New().String()
	req := dto.CreateMovementRequest{
		AnimalID:             animalID,
		DestinationPastureID: uuid.New().String(),
		EntryDate:            time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	suite.mockAnimalRepo.On("FindAnimalByID", suite.ctx, animalID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RecordMovement(suite.ctx, req, "tester")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPastureRepo.AssertNotCalled(suite.T(), "FindPastureByID", mock.Anything, mock.Anything)
}

func (suite *MovementServiceTestSuite) TestRecordMovement_PastureNotFound() {
	animal := suite.aliveAnimal(nil)
	pastureID := uuid.New().String()
	req := dto.CreateMovementRequest{
		AnimalID:             animal.AnimalID,
		DestinationPastureID: pastureID,
		EntryDate:            time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	suite.mockAnimalRepo.On("FindAnimalByID", suite.ctx, animal.AnimalID).Return(animal, nil).Once()
	suite.mockPastureRepo.On("FindPastureByID", suite.ctx, pastureID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RecordMovement(suite.ctx, req, "tester")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "SaveMovement", mock.Anything, mock.Anything)
}

func (suite *MovementServiceTestSuite) TestRecordMovement_RepoValidationPassesThrough() {
	// A back-dated entry is detected inside the repository transaction.
	pastureID := uuid.New().String()
	origin := uuid.New().String()
	animal := suite.aliveAnimal(&origin)
	req := dto.CreateMovementRequest{
		AnimalID:             animal.AnimalID,
		DestinationPastureID: pastureID,
		EntryDate:            time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	suite.mockAnimalRepo.On("FindAnimalByID", suite.ctx, animal.AnimalID).Return(animal, nil).Once()
	suite.mockPastureRepo.On("FindPastureByID", suite.ctx, pastureID).Return(&domain.Pasture{PastureID: pastureID}, nil).Once()
	suite.mockMovementRepo.On("SaveMovement", suite.ctx, mock.AnythingOfType("domain.Movement")).
		Return(nil, apperrors.ErrValidation).Once()

	_, err := suite.service.RecordMovement(suite.ctx, req, "tester")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *MovementServiceTestSuite) TestCurrentPasture_ResolvesOpenMovement() {
	animalID := uuid.New().String()
	pastureID := uuid.New().String()
	open := &domain.Movement{
		MovementID:           uuid.New().String(),
		AnimalID:             animalID,
		DestinationPastureID: pastureID,
		EntryDate:            time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	pasture := &domain.Pasture{PastureID: pastureID, Name: "North paddock"}

	suite.mockMovementRepo.On("FindOpenMovementByAnimal", suite.ctx, animalID).Return(open, nil).Once()
	suite.mockPastureRepo.On("FindPastureByID", suite.ctx, pastureID).Return(pasture, nil).Once()

	got, err := suite.service.CurrentPasture(suite.ctx, animalID)

	suite.Require().NoError(err)
	suite.Require().NotNil(got)
	suite.Equal("North paddock", got.Name)
}

func (suite *MovementServiceTestSuite) TestCurrentPasture_AnimalNowhere() {
	animal := suite.aliveAnimal(nil)

	suite.mockMovementRepo.On("FindOpenMovementByAnimal", suite.ctx, animal.AnimalID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAnimalRepo.On("FindAnimalByID", suite.ctx, animal.AnimalID).Return(animal, nil).Once()

	got, err := suite.service.CurrentPasture(suite.ctx, animal.AnimalID)

	suite.Require().NoError(err)
	suite.Nil(got, "an animal with no open movement is nowhere, not an error")
}

func (suite *MovementServiceTestSuite) TestCurrentPasture_UnknownAnimal() {
	animalID := uuid.New().String()

	suite.mockMovementRepo.On("FindOpenMovementByAnimal", suite.ctx, animalID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockAnimalRepo.On("FindAnimalByID", suite.ctx, animalID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CurrentPasture(suite.ctx, animalID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *MovementServiceTestSuite) TestOccupancyBetween_InvertedRangeRejected() {
	pastureID := uuid.New().String()
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	_, err := suite.service.OccupancyBetween(suite.ctx, pastureID, from, to)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "OccupancyBetween", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MovementServiceTestSuite) TestOccupancyAt_Success() {
	pastureID := uuid.New().String()
	asOf := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	residents := []domain.Animal{{AnimalID: uuid.New().String(), Tag: "BR-001"}}

	suite.mockPastureRepo.On("FindPastureByID", suite.ctx, pastureID).Return(&domain.Pasture{PastureID: pastureID}, nil).Once()
	suite.mockMovementRepo.On("OccupancyAt", suite.ctx, pastureID, asOf).Return(residents, nil).Once()

	got, err := suite.service.OccupancyAt(suite.ctx, pastureID, asOf)

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.Equal("BR-001", got[0].Tag)
}

func (suite *MovementServiceTestSuite) TestUpdateMovement_ExitBeforeEntryRejected() {
	movementID := uuid.New().String()
	existing := &domain.Movement{
		MovementID:           movementID,
		AnimalID:             uuid.New().String(),
		DestinationPastureID: uuid.New().String(),
		EntryDate:            time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	badExit := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	req := dto.UpdateMovementRequest{ExitDate: &badExit}

	suite.mockMovementRepo.On("FindMovementByID", suite.ctx, movementID).Return(existing, nil).Once()

	_, err := suite.service.UpdateMovement(suite.ctx, movementID, req, "tester")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "UpdateMovement", mock.Anything, mock.Anything)
}

func (suite *MovementServiceTestSuite) TestUpdateMovement_Success() {
	movementID := uuid.New().String()
	animalID := uuid.New().String()
	existing := &domain.Movement{
		MovementID:           movementID,
		AnimalID:             animalID,
		DestinationPastureID: uuid.New().String(),
		EntryDate:            time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	exit := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	req := dto.UpdateMovementRequest{ExitDate: &exit}

	suite.mockMovementRepo.On("FindMovementByID", suite.ctx, movementID).Return(existing, nil).Twice()
	suite.mockMovementRepo.On("ListMovementsByAnimal", suite.ctx, animalID).
		Return([]domain.Movement{*existing}, nil).Once()
	suite.mockMovementRepo.On("UpdateMovement", suite.ctx, mock.MatchedBy(func(m domain.Movement) bool {
		return m.MovementID == movementID && m.ExitDate != nil && m.ExitDate.Equal(exit)
	})).Return(nil).Once()

	got, err := suite.service.UpdateMovement(suite.ctx, movementID, req, "tester")

	suite.Require().NoError(err)
	suite.Require().NotNil(got)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *MovementServiceTestSuite) TestUpdateMovement_BackDateIntoClosedIntervalRejected() {
	animalID := uuid.New().String()
	closedExit := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	closed := domain.Movement{
		MovementID:           uuid.New().String(),
		AnimalID:             animalID,
		DestinationPastureID: uuid.New().String(),
		EntryDate:            time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ExitDate:             &closedExit,
	}
	open := domain.Movement{
		MovementID:           uuid.New().String(),
		AnimalID:             animalID,
		DestinationPastureID: uuid.New().String(),
		EntryDate:            time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	backDated := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	req := dto.UpdateMovementRequest{EntryDate: &backDated}

	suite.mockMovementRepo.On("FindMovementByID", suite.ctx, open.MovementID).Return(&open, nil).Once()
	suite.mockMovementRepo.On("ListMovementsByAnimal", suite.ctx, animalID).
		Return([]domain.Movement{open, closed}, nil).Once()

	_, err := suite.service.UpdateMovement(suite.ctx, open.MovementID, req, "tester")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "UpdateMovement", mock.Anything, mock.Anything)
}

func (suite *MovementServiceTestSuite) TestDeleteMovement_Success() {
	movementID := uuid.New().String()
	suite.mockMovementRepo.On("DeleteMovement", suite.ctx, movementID).Return(nil).Once()

	err := suite.service.DeleteMovement(suite.ctx, movementID)

	suite.Require().NoError(err)
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func TestMovementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MovementServiceTestSuite))
}

func TestNewMovementService(t *testing.T) {
	svc := services.NewMovementService(new(MockMovementRepository), new(MockAnimalRepository), new(MockPastureRepository))
	assert.NotNil(t, svc)
}
