package impl

import (
	"context"
	"testing"
	"time"

	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/domain/repository"
	mockRepo "petwelfare/internal/mocks/repository"
	"petwelfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type shelterServiceFixtures struct {
	service     *shelterService
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	shelterRepo *mockRepo.MockShelterRepository
	rescueRepo  *mockRepo.MockRescueRepository
	petRepo     *mockRepo.MockAdoptionPetRepository
	seqRepo     *mockRepo.MockSequenceRepository
}

func createTestShelterService(t *testing.T) shelterServiceFixtures {
	fx := shelterServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		shelterRepo: mockRepo.NewMockShelterRepository(t),
		rescueRepo:  mockRepo.NewMockRescueRepository(t),
		petRepo:     mockRepo.NewMockAdoptionPetRepository(t),
		seqRepo:     mockRepo.NewMockSequenceRepository(t),
	}
	fx.service = NewShelterService(ShelterServiceParams{
		TxManager: fx.txManager,
		Logger:    newDiscardLogger(),
	}).(*shelterService)
	fx.service.now = func() time.Time { return fixedNow }
	fx.factory.EXPECT().ShelterRepo().Return(fx.shelterRepo).Maybe()
	fx.factory.EXPECT().RescueRepo().Return(fx.rescueRepo).Maybe()
	fx.factory.EXPECT().AdoptionPetRepo().Return(fx.petRepo).Maybe()
	fx.factory.EXPECT().SequenceRepo().Return(fx.seqRepo).Maybe()
	expectTx(fx.txManager, fx.factory)

	return fx
}

func TestShelterService_Intake(t *testing.T) {
	t.Run("stray into free kennel", func(t *testing.T) {
		fx := createTestShelterService(t)

		fx.shelterRepo.EXPECT().FindResidentInKennel(mock.Anything, "K-3").Return(nil, repository.ErrNotFound)
		fx.seqRepo.EXPECT().Next(mock.Anything, "SHL-20250310").Return(int64(7), nil)
		fx.shelterRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.ShelterAnimal")).Return(nil)

		animal, err := fx.service.Intake(context.Background(), testActor("shelter_worker"), usecase.IntakeInput{
			Species:      "cat",
			IntakeSource: entity.IntakeStray,
			Kennel:       " K-3 ",
		})

		require.NoError(t, err)
		assert.Equal(t, "SHL-20250310-0007", animal.IntakeNumber)
		assert.Equal(t, "K-3", animal.Kennel)
		assert.Equal(t, entity.ShelterSheltered, animal.Status)
		assert.Equal(t, fixedNow, animal.IntakeDate)
	})

	t.Run("kennel occupied", func(t *testing.T) {
		fx := createTestShelterService(t)
		resident := &entity.ShelterAnimal{ID: uuid.New(), IntakeNumber: "SHL-20250301-0001"}

		fx.shelterRepo.EXPECT().FindResidentInKennel(mock.Anything, "K-3").Return(resident, nil)

		_, err := fx.service.Intake(context.Background(), testActor("shelter_worker"), usecase.IntakeInput{
			Species:      "cat",
			IntakeSource: entity.IntakeStray,
			Kennel:       "K-3",
		})

		require.ErrorIs(t, err, domainerrors.ErrKennelOccupied)
		assert.Equal(t, 409, mustAppError(t, err).HTTPCode())
	})

	t.Run("from rescued report closes it", func(t *testing.T) {
		fx := createTestShelterService(t)
		report := &entity.RescueReport{ID: uuid.New(), Status: entity.RescueRescued}

		fx.seqRepo.EXPECT().Next(mock.Anything, mock.Anything).Return(int64(1), nil)
		fx.rescueRepo.EXPECT().FindByID(mock.Anything, report.ID).Return(report, nil)
		fx.rescueRepo.EXPECT().Update(mock.Anything, report).Return(nil)
		fx.shelterRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

		animal, err := fx.service.Intake(context.Background(), testActor("shelter_worker"), usecase.IntakeInput{
			Species:        "dog",
			RescueReportID: &report.ID,
		})

		require.NoError(t, err)
		assert.Equal(t, entity.IntakeRescue, animal.IntakeSource)
		assert.Equal(t, entity.RescueClosed, report.Status)
		require.Len(t, report.Notes, 1)
		assert.Contains(t, report.Notes[0].Text, animal.IntakeNumber)
	})

	t.Run("report not yet rescued", func(t *testing.T) {
		fx := createTestShelterService(t)
		report := &entity.RescueReport{ID: uuid.New(), Status: entity.RescueAssigned}

		fx.seqRepo.EXPECT().Next(mock.Anything, mock.Anything).Return(int64(1), nil)
		fx.rescueRepo.EXPECT().FindByID(mock.Anything, report.ID).Return(report, nil)

		_, err := fx.service.Intake(context.Background(), testActor("shelter_worker"), usecase.IntakeInput{
			Species:        "dog",
			RescueReportID: &report.ID,
		})

		require.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
	})

	t.Run("unknown source", func(t *testing.T) {
		fx := createTestShelterService(t)

		_, err := fx.service.Intake(context.Background(), testActor("shelter_worker"), usecase.IntakeInput{Species: "dog"})

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestShelterService_AssignKennel_SameAnimalIsNotAConflict(t *testing.T) {
	fx := createTestShelterService(t)
	animal := &entity.ShelterAnimal{ID: uuid.New(), Status: entity.ShelterSheltered, Kennel: "K-1"}

	fx.shelterRepo.EXPECT().FindByID(mock.Anything, animal.ID).Return(animal, nil)
	fx.shelterRepo.EXPECT().FindResidentInKennel(mock.Anything, "K-1").Return(animal, nil)
	fx.shelterRepo.EXPECT().Update(mock.Anything, animal).Return(nil)

	updated, err := fx.service.AssignKennel(context.Background(), testActor("shelter_manager"), animal.ID, "K-1")

	require.NoError(t, err)
	assert.Equal(t, "K-1", updated.Kennel)
}

func TestShelterService_UpdateStatus(t *testing.T) {
	t.Run("deceased frees kennel", func(t *testing.T) {
		fx := createTestShelterService(t)
		animal := &entity.ShelterAnimal{ID: uuid.New(), Status: entity.ShelterMedicalCare, Kennel: "K-9", Notes: "intake"}

		fx.shelterRepo.EXPECT().FindByID(mock.Anything, animal.ID).Return(animal, nil)
		fx.shelterRepo.EXPECT().Update(mock.Anything, animal).Return(nil)

		updated, err := fx.service.UpdateStatus(context.Background(), testActor("shelter_manager"), animal.ID, entity.ShelterDeceased, "passed overnight")

		require.NoError(t, err)
		assert.Empty(t, updated.Kennel)
		assert.Equal(t, "intake\npassed overnight", updated.Notes)
	})

	t.Run("transfer must use transfer operation", func(t *testing.T) {
		fx := createTestShelterService(t)

		_, err := fx.service.UpdateStatus(context.Background(), testActor("shelter_manager"), uuid.New(), entity.ShelterTransferred, "")

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestShelterService_TransferToAdoption(t *testing.T) {
	t.Run("creates listing", func(t *testing.T) {
		fx := createTestShelterService(t)
		actor := testActor("shelter_manager")
		animal := &entity.ShelterAnimal{
			ID: uuid.New(), IntakeNumber: "SHL-20250301-0004", Species: "dog", Gender: "female",
			EstimatedAgeMonths: 14, Status: entity.ShelterReadyForAdoption, Kennel: "K-2",
		}

		fx.shelterRepo.EXPECT().FindByID(mock.Anything, animal.ID).Return(animal, nil)
		fx.petRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.AdoptionPet")).Return(nil)
		fx.shelterRepo.EXPECT().Update(mock.Anything, animal).Return(nil)

		result, err := fx.service.TransferToAdoption(context.Background(), actor, animal.ID, usecase.TransferInput{AdoptionFee: 150})

		require.NoError(t, err)
		assert.Equal(t, entity.ShelterTransferred, result.Animal.Status)
		assert.Empty(t, result.Animal.Kennel)
		assert.Equal(t, result.Pet.ID, *result.Animal.AdoptionPetID)
		assert.Equal(t, "SHL-20250301-0004", result.Pet.Name)
		assert.Equal(t, "Female", result.Pet.Gender)
		assert.Equal(t, 14, result.Pet.Age)
		assert.Equal(t, "months", result.Pet.AgeUnit)
		assert.Equal(t, entity.PetAvailable, result.Pet.Status)
		assert.Equal(t, animal.ID, *result.Pet.ShelterAnimalID)
	})

	t.Run("already listed", func(t *testing.T) {
		fx := createTestShelterService(t)
		petID := uuid.New()
		animal := &entity.ShelterAnimal{ID: uuid.New(), Status: entity.ShelterSheltered, AdoptionPetID: &petID}

		fx.shelterRepo.EXPECT().FindByID(mock.Anything, animal.ID).Return(animal, nil)

		_, err := fx.service.TransferToAdoption(context.Background(), testActor("shelter_manager"), animal.ID, usecase.TransferInput{})

		require.ErrorIs(t, err, domainerrors.ErrAlreadyAdoption)
	})

	t.Run("in medical care", func(t *testing.T) {
		fx := createTestShelterService(t)
		animal := &entity.ShelterAnimal{ID: uuid.New(), Status: entity.ShelterMedicalCare}

		fx.shelterRepo.EXPECT().FindByID(mock.Anything, animal.ID).Return(animal, nil)

		_, err := fx.service.TransferToAdoption(context.Background(), testActor("shelter_manager"), animal.ID, usecase.TransferInput{})

		require.ErrorIs(t, err, domainerrors.ErrInvalidStatus)
	})
}
