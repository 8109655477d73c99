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

type petServiceFixtures struct {
	service   *petService
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	petRepo   *mockRepo.MockPetRepository
	seqRepo   *mockRepo.MockSequenceRepository
}

func createTestPetService(t *testing.T) petServiceFixtures {
	fx := petServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		petRepo:   mockRepo.NewMockPetRepository(t),
		seqRepo:   mockRepo.NewMockSequenceRepository(t),
	}
	fx.service = NewPetService(PetServiceParams{
		TxManager: fx.txManager,
		Logger:    newDiscardLogger(),
	}).(*petService)
	fx.service.now = func() time.Time { return fixedNow }
	fx.factory.EXPECT().PetRepo().Return(fx.petRepo).Maybe()
	fx.factory.EXPECT().SequenceRepo().Return(fx.seqRepo).Maybe()
	expectTx(fx.txManager, fx.factory)

	return fx
}

func TestPetService_CreatePet(t *testing.T) {
	ctx := context.Background()

	t.Run("registers with a pet code", func(t *testing.T) {
		fx := createTestPetService(t)
		owner := testActor("user")
		dob := fixedNow.AddDate(-1, 0, 0)

		fx.seqRepo.EXPECT().Next(ctx, "PET-20250310").Return(int64(12), nil)
		fx.petRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Pet")).Return(nil)

		pet, err := fx.service.CreatePet(ctx, owner, usecase.PetInput{
			Name:        " Milo ",
			Species:     "Dog",
			Breed:       "Beagle",
			DateOfBirth: &dob,
			WeightKg:    12.345,
		})

		require.NoError(t, err)
		assert.Equal(t, "PET-20250310-0012", pet.PetCode)
		assert.Equal(t, "Milo", pet.Name)
		assert.Equal(t, "dog", pet.Species)
		assert.Equal(t, "Unknown", pet.Gender)
		assert.InDelta(t, 12.35, pet.WeightKg, 0.001)
		assert.Equal(t, owner.UserID, pet.OwnerID)
		assert.Equal(t, entity.PetSourceOwner, pet.Source)
		assert.Equal(t, entity.PetOwned, pet.Status)
		require.Len(t, pet.OwnershipHistory, 1)
		assert.Nil(t, pet.OwnershipHistory[0].PreviousOwnerID)
		assert.Equal(t, 12, pet.AgeMonths(fixedNow))
	})

	invalid := []struct {
		name  string
		input usecase.PetInput
		want  error
	}{
		{name: "missing name", input: usecase.PetInput{Species: "dog"}, want: domainerrors.ErrValidationFailed},
		{name: "unknown species", input: usecase.PetInput{Name: "Rex", Species: "dragon"}, want: domainerrors.ErrUnknownSpecies},
		{name: "bad gender", input: usecase.PetInput{Name: "Rex", Species: "dog", Gender: "m"}, want: domainerrors.ErrValidationFailed},
		{name: "negative weight", input: usecase.PetInput{Name: "Rex", Species: "dog", WeightKg: -1}, want: domainerrors.ErrValidationFailed},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPetService(t)

			_, err := fx.service.CreatePet(ctx, testActor("user"), tt.input)
			require.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("birth date in the future", func(t *testing.T) {
		fx := createTestPetService(t)
		dob := fixedNow.Add(24 * time.Hour)

		_, err := fx.service.CreatePet(ctx, testActor("user"), usecase.PetInput{Name: "Rex", Species: "dog", DateOfBirth: &dob})
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestPetService_GetMyPet(t *testing.T) {
	ctx := context.Background()

	t.Run("owner", func(t *testing.T) {
		fx := createTestPetService(t)
		owner := testActor("user")
		pet := ownedPet(fx.petRepo, owner)

		found, err := fx.service.GetMyPet(ctx, owner, pet.ID)
		require.NoError(t, err)
		assert.Equal(t, pet.ID, found.ID)
	})

	t.Run("someone else's pet is hidden", func(t *testing.T) {
		fx := createTestPetService(t)
		pet := ownedPet(fx.petRepo, testActor("user"))

		_, err := fx.service.GetMyPet(ctx, testActor("user"), pet.ID)
		require.ErrorIs(t, err, domainerrors.ErrOwnedPetNotFound)
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestPetService(t)
		id := uuid.New()
		fx.petRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrNotFound)

		_, err := fx.service.GetMyPet(ctx, testActor("user"), id)
		require.ErrorIs(t, err, domainerrors.ErrOwnedPetNotFound)
	})
}

func TestPetService_ListMyPets_ScopesToCaller(t *testing.T) {
	fx := createTestPetService(t)
	ctx := context.Background()
	owner := testActor("user")
	other := uuid.New()

	fx.petRepo.EXPECT().
		List(ctx, entity.PetFilter{OwnerID: &owner.UserID, Species: "cat"}, entity.PageRequest{Page: 1, Limit: entity.DefaultPageLimit}).
		Return([]*entity.Pet{{ID: uuid.New(), OwnerID: owner.UserID}}, int64(1), nil)

	page, err := fx.service.ListMyPets(ctx, owner, entity.PetFilter{OwnerID: &other, Species: "cat"}, entity.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Pagination.Total)
}

func TestPetService_UpdatePet(t *testing.T) {
	fx := createTestPetService(t)
	ctx := context.Background()
	owner := testActor("user")
	pet := ownedPet(fx.petRepo, owner)
	pet.MedicalHistory = []entity.MedicalRecord{{Condition: "otitis"}}

	fx.petRepo.EXPECT().Update(ctx, pet).Return(nil)

	updated, err := fx.service.UpdatePet(ctx, owner, pet.ID, usecase.PetInput{Name: "Milo Jr", Species: "dog", Gender: "Male", MicrochipID: " 985112 "})
	require.NoError(t, err)
	assert.Equal(t, "Milo Jr", updated.Name)
	assert.Equal(t, "985112", updated.MicrochipID)
	assert.Equal(t, fixedNow, updated.UpdatedAt)
	assert.Len(t, updated.MedicalHistory, 1)
}

func TestPetService_DeletePet(t *testing.T) {
	ctx := context.Background()

	t.Run("owner", func(t *testing.T) {
		fx := createTestPetService(t)
		owner := testActor("user")
		pet := ownedPet(fx.petRepo, owner)
		fx.petRepo.EXPECT().Delete(ctx, pet.ID).Return(nil)

		require.NoError(t, fx.service.DeletePet(ctx, owner, pet.ID))
	})

	t.Run("not the owner", func(t *testing.T) {
		fx := createTestPetService(t)
		pet := ownedPet(fx.petRepo, testActor("user"))

		err := fx.service.DeletePet(ctx, testActor("user"), pet.ID)
		require.ErrorIs(t, err, domainerrors.ErrOwnedPetNotFound)
		fx.petRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestPetService_AddMedicalRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("appends with recorder", func(t *testing.T) {
		fx := createTestPetService(t)
		owner := testActor("user")
		pet := ownedPet(fx.petRepo, owner)
		follow := fixedNow.AddDate(0, 0, 14)
		fx.petRepo.EXPECT().Update(ctx, pet).Return(nil)

		updated, err := fx.service.AddMedicalRecord(ctx, owner, pet.ID, usecase.MedicalRecordInput{
			Date:       fixedNow.AddDate(0, 0, -1),
			Condition:  "Ear infection",
			Treatment:  "Drops",
			FollowUpAt: &follow,
		})
		require.NoError(t, err)
		require.Len(t, updated.MedicalHistory, 1)
		assert.Equal(t, owner.UserID, updated.MedicalHistory[0].RecordedBy)
		assert.Equal(t, fixedNow, updated.MedicalHistory[0].RecordedAt)
	})

	t.Run("future date", func(t *testing.T) {
		fx := createTestPetService(t)

		_, err := fx.service.AddMedicalRecord(ctx, testActor("user"), uuid.New(), usecase.MedicalRecordInput{
			Date:      fixedNow.Add(time.Hour),
			Condition: "Limp",
		})
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestPetService_AddVaccination(t *testing.T) {
	ctx := context.Background()

	t.Run("appends", func(t *testing.T) {
		fx := createTestPetService(t)
		owner := testActor("user")
		pet := ownedPet(fx.petRepo, owner)
		due := fixedNow.AddDate(1, 0, 0)
		fx.petRepo.EXPECT().Update(ctx, pet).Return(nil)

		updated, err := fx.service.AddVaccination(ctx, owner, pet.ID, usecase.VaccinationInput{Name: "Rabies", Date: fixedNow, NextDueDate: &due})
		require.NoError(t, err)
		require.Len(t, updated.Vaccinations, 1)
		assert.Equal(t, "Rabies", updated.Vaccinations[0].Name)
	})

	t.Run("next due before the shot", func(t *testing.T) {
		fx := createTestPetService(t)
		due := fixedNow.AddDate(0, 0, -1)

		_, err := fx.service.AddVaccination(ctx, testActor("user"), uuid.New(), usecase.VaccinationInput{Name: "Rabies", Date: fixedNow, NextDueDate: &due})
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestPetService_OwnershipHistory(t *testing.T) {
	fx := createTestPetService(t)
	owner := testActor("user")
	pet := ownedPet(fx.petRepo, owner)
	pet.TransferTo(owner.UserID, entity.PetSourceAdoption, 100, "adopted", fixedNow)

	history, err := fx.service.OwnershipHistory(context.Background(), owner, pet.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, entity.PetSourceAdoption, history[0].TransferType)
}

func TestPetService_ListBreeds(t *testing.T) {
	fx := createTestPetService(t)

	breeds, err := fx.service.ListBreeds(context.Background(), " Cat ")
	require.NoError(t, err)
	assert.Contains(t, breeds, "Persian")

	_, err = fx.service.ListBreeds(context.Background(), "unicorn")
	require.ErrorIs(t, err, domainerrors.ErrUnknownSpecies)

	species := fx.service.ListSpecies(context.Background())
	require.NotEmpty(t, species)
	assert.Equal(t, "Guinea Pig", species[4].DisplayName)
}
