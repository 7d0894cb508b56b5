package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/herdstack/herd_management_app/internal/apperrors"
	"github.com/herdstack/herd_management_app/internal/core/domain"
	portssvc "github.com/herdstack/herd_management_app/internal/core/ports/services"
	"github.com/herdstack/herd_management_app/internal/core/services"
	"github.com/herdstack/herd_management_app/internal/dto"
)

type AnimalServiceTestSuite struct {
	suite.Suite
	mockAnimalRepo    *MockAnimalRepository
	mockWeighingRepo  *MockWeighingRepository
	mockTreatmentRepo *MockTreatmentRepository
	service           portssvc.AnimalSvcFacade
	ctx               context.Context
}

func (suite *AnimalServiceTestSuite) SetupTest() {
	suite.mockAnimalRepo = new(MockAnimalRepository)
	suite.mockWeighingRepo = new(MockWeighingRepository)
	suite.mockTreatmentRepo = new(MockTreatmentRepository)
	suite.service = services.NewAnimalService(suite.mockAnimalRepo, suite.mockWeighingRepo, suite.mockTreatmentRepo)
	suite.ctx = context.Background()
}

func (suite *AnimalServiceTestSuite) TestRegisterAnimal_Success() {
	req := dto.CreateAnimalRequest{
		Tag:       "BR-010",
		Name:      "Mimosa",
		BirthDate: time.Date(2023, 9, 12, 0, 0, 0, 0, time.UTC),
		Sex:       "F",
	}

	suite.mockAnimalRepo.On("SaveAnimal", suite.ctx, mock.MatchedBy(func(a domain.Animal) bool {
		return a.Tag == "BR-010" && a.LifeStatus == domain.Alive && a.CurrentPastureID == nil
	})).Return(nil).Once()

	animal, err := suite.service.RegisterAnimal(suite.ctx, req, "tester")

	suite.Require().NoError(err)
	suite.Require().NotNil(animal)
	suite.Equal(domain.Alive, animal.LifeStatus)
	suite.Equal("tester", animal.CreatedBy)
	suite.mockAnimalRepo.AssertExpectations(suite.T())
}

func (suite *AnimalServiceTestSuite) TestRegisterAnimal_MotherMustBeFemale() {
	motherID := uuid.New().String()
	req := dto.CreateAnimalRequest{
		Tag:       "BR-011",
		BirthDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Sex:       "M",
		MotherID:  &motherID,
	}

	suite.mockAnimalRepo.On("FindAnimalByID", suite.ctx, motherID).
		Return(&domain.Animal{AnimalID: motherID, Tag: "BR-002", Sex: domain.Male}, nil).Once()

	_, err := suite.service.RegisterAnimal(suite.ctx, req, "tester")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAnimalRepo.AssertNotCalled(suite.T(), "SaveAnimal", mock.Anything, mock.Anything)
}

func (suite *AnimalServiceTestSuite) TestRegisterAnimal_UnknownParent() {
	fatherID := uuid.New().String()
	req := dto.CreateAnimalRequest{
		Tag:       "BR-012",
		BirthDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Sex:       "F",
		FatherID:  &fatherID,
	}

	suite.mockAnimalRepo.On("FindAnimalByID", suite.ctx, fatherID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RegisterAnimal(suite.ctx, req, "tester")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrParentNotFound)
}

func (suite *AnimalServiceTestSuite) TestRegisterAnimal_DuplicateTag() {
	req := dto.CreateAnimalRequest{
		Tag:       "BR-001",
		BirthDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Sex:       "F",
	}

	suite.mockAnimalRepo.On("SaveAnimal", suite.ctx, mock.AnythingOfType("domain.Animal")).
		Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.RegisterAnimal(suite.ctx, req, "tester")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *AnimalServiceTestSuite) TestRecordDisposition_Sale() {
	animalID := uuid.New().String()
	amount := decimal.RequireFromString("1450.00")
	weight := decimal.RequireFromString("480.5")
	req := dto.CreateDispositionRequest{
		Kind:            "SALE",
		DispositionDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		WeightKg:        &weight,
		Amount:          &amount,
		Counterparty:    "local market",
	}

	suite.mockAnimalRepo.On("FindAnimalByID", suite.ctx, animalID).
		Return(&domain.Animal{AnimalID: animalID, Tag: "BR-001", LifeStatus: domain.Alive}, nil).Once()
	suite.mockAnimalRepo.On("SaveDisposition", suite.ctx, mock.MatchedBy(func(d domain.Disposition) bool {
		return d.AnimalID == animalID && d.Kind == domain.DispositionSale
	})).Return(nil).Once()

	disposition, err := suite.service.RecordDisposition(suite.ctx, animalID, req, "tester")

	suite.Require().NoError(err)
	suite.Require().NotNil(disposition)
	suite.Equal(domain.DispositionSale, disposition.Kind)
	suite.mockAnimalRepo.AssertExpectations(suite.T())
}

func (suite *AnimalServiceTestSuite) TestRecordDisposition_AlreadyDisposed() {
	animalID := uuid.New().String()
	req := dto.CreateDispositionRequest{
		Kind:            "DEATH",
		DispositionDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	suite.mockAnimalRepo.On("FindAnimalByID", suite.ctx, animalID).
		Return(&domain.Animal{AnimalID: animalID, Tag: "BR-001", LifeStatus: domain.Sold}, nil).Once()

	_, err := suite.service.RecordDisposition(suite.ctx, animalID, req, "tester")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrAlreadyDisposed)
	suite.mockAnimalRepo.AssertNotCalled(suite.T(), "SaveDisposition", mock.Anything, mock.Anything)
}

func (suite *AnimalServiceTestSuite) TestRecordDisposition_DeathWithAmountRejected() {
	animalID := uuid.New().String()
	amount := decimal.RequireFromString("100.00")
	req := dto.CreateDispositionRequest{
		Kind:            "DEATH",
		DispositionDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Amount:          &amount,
		Cause:           "bloat",
	}

	suite.mockAnimalRepo.On("FindAnimalByID", suite.ctx, animalID).
		Return(&domain.Animal{AnimalID: animalID, Tag: "BR-001", LifeStatus: domain.Alive}, nil).Once()

	_, err := suite.service.RecordDisposition(suite.ctx, animalID, req, "tester")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAnimalRepo.AssertNotCalled(suite.T(), "SaveDisposition", mock.Anything, mock.Anything)
}

func (suite *AnimalServiceTestSuite) TestListAnimals_ClampsPagination() {
	suite.mockAnimalRepo.On("ListAnimals", suite.ctx, true, 100, 0).Return([]domain.Animal{}, nil).Twice()

	_, err := suite.service.ListAnimals(suite.ctx, true, -5, -3)
	suite.Require().NoError(err)

	_, err = suite.service.ListAnimals(suite.ctx, true, 10000, 0)
	suite.Require().NoError(err)

	suite.mockAnimalRepo.AssertExpectations(suite.T())
}

func (suite *AnimalServiceTestSuite) TestRecordWeighing_Success() {
	animalID := uuid.New().String()
	req := dto.CreateWeighingRequest{
		WeighDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		WeightKg:  decimal.RequireFromString("312.5"),
		Event:     "weaning",
	}

	suite.mockAnimalRepo.On("FindAnimalByID", suite.ctx, animalID).
		Return(&domain.Animal{AnimalID: animalID, LifeStatus: domain.Alive}, nil).Once()
	suite.mockWeighingRepo.On("SaveWeighing", suite.ctx, mock.MatchedBy(func(w domain.Weighing) bool {
		return w.AnimalID == animalID && w.WeightKg.Equal(req.WeightKg)
	})).Return(nil).Once()

	weighing, err := suite.service.RecordWeighing(suite.ctx, animalID, req, "tester")

	suite.Require().NoError(err)
	suite.Require().NotNil(weighing)
	suite.Equal("weaning", weighing.Event)
	suite.mockWeighingRepo.AssertExpectations(suite.T())
}

func (suite *AnimalServiceTestSuite) TestRecordWeighing_UnknownAnimal() {
	animalID := uuid.New().String()
	req := dto.CreateWeighingRequest{
		WeighDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		WeightKg:  decimal.RequireFromString("312.5"),
	}

	suite.mockAnimalRepo.On("FindAnimalByID", suite.ctx, animalID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RecordWeighing(suite.ctx, animalID, req, "tester")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockWeighingRepo.AssertNotCalled(suite.T(), "SaveWeighing", mock.Anything, mock.Anything)
}

func (suite *AnimalServiceTestSuite) TestRecordTreatment_Success() {
	animalID := uuid.New().String()
	nextDue := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	req := dto.CreateTreatmentRequest{
		TreatDate:   time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		Kind:        "VACCINE",
		Product:     "FMD vaccine",
		Dose:        "5 ml",
		NextDueDate: &nextDue,
	}

	suite.mockAnimalRepo.On("FindAnimalByID", suite.ctx, animalID).
		Return(&domain.Animal{AnimalID: animalID, LifeStatus: domain.Alive}, nil).Once()
	suite.mockTreatmentRepo.On("SaveTreatment", suite.ctx, mock.MatchedBy(func(t domain.Treatment) bool {
		return t.AnimalID == animalID && t.Kind == domain.TreatmentVaccine && t.NextDueDate != nil
	})).Return(nil).Once()

	treatment, err := suite.service.RecordTreatment(suite.ctx, animalID, req, "tester")

	suite.Require().NoError(err)
	suite.Require().NotNil(treatment)
	suite.Equal("FMD vaccine", treatment.Product)
	suite.mockTreatmentRepo.AssertExpectations(suite.T())
}

func (suite *AnimalServiceTestSuite) TestRecordTreatment_FollowUpBeforeTreatmentRejected() {
	animalID := uuid.New().String()
	nextDue := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	req := dto.CreateTreatmentRequest{
		TreatDate:   time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		Kind:        "DEWORMING",
		Product:     "ivermectin",
		NextDueDate: &nextDue,
	}

	suite.mockAnimalRepo.On("FindAnimalByID", suite.ctx, animalID).
		Return(&domain.Animal{AnimalID: animalID, LifeStatus: domain.Alive}, nil).Once()

	_, err := suite.service.RecordTreatment(suite.ctx, animalID, req, "tester")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTreatmentRepo.AssertNotCalled(suite.T(), "SaveTreatment", mock.Anything, mock.Anything)
}

func (suite *AnimalServiceTestSuite) TestListTreatments_UnknownAnimal() {
	animalID := uuid.New().String()
	suite.mockAnimalRepo.On("FindAnimalByID", suite.ctx, animalID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ListTreatments(suite.ctx, animalID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTreatmentRepo.AssertNotCalled(suite.T(), "ListTreatmentsByAnimal", mock.Anything, mock.Anything)
}

func TestAnimalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnimalServiceTestSuite))
}
