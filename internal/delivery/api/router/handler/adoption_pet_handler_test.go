package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"
	mocks "petwelfare/internal/mocks/usecase"
	"petwelfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func shelterManager() *usecase.Actor {
	return &usecase.Actor{UserID: uuid.New(), Name: "Noor", Role: entity.ModuleRoleName(entity.ModuleAdoption, entity.StaffManager)}
}

func TestAdoptionHandler_CompleteHandover(t *testing.T) {
	actor := shelterManager()
	id := uuid.New()

	t.Run("passes the code through", func(t *testing.T) {
		adoptionUC := mocks.NewMockAdoptionUsecase(t)
		adoptionUC.EXPECT().CompleteHandover(mock.Anything, actor, id, "482913").
			Return(&entity.AdoptionApplication{ID: id, Status: entity.ApplicationCompleted}, nil).Once()

		h := NewAdoptionHandler(AdoptionHandlerParams{AdoptionUC: adoptionUC, Logger: slog.Default()})
		c, rec := newContext(http.MethodPut, "/", `{"otp":"482913"}`, actor)
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		require.NoError(t, h.CompleteHandover(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("code is required", func(t *testing.T) {
		h := NewAdoptionHandler(AdoptionHandlerParams{AdoptionUC: mocks.NewMockAdoptionUsecase(t), Logger: slog.Default()})
		c, rec := newContext(http.MethodPut, "/", `{}`, actor)
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		require.NoError(t, h.CompleteHandover(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("wrong code", func(t *testing.T) {
		adoptionUC := mocks.NewMockAdoptionUsecase(t)
		adoptionUC.EXPECT().CompleteHandover(mock.Anything, actor, id, "000000").
			Return(nil, domainerrors.ErrOTPInvalid).Once()

		h := NewAdoptionHandler(AdoptionHandlerParams{AdoptionUC: adoptionUC, Logger: slog.Default()})
		c, rec := newContext(http.MethodPut, "/", `{"otp":"000000"}`, actor)
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		require.NoError(t, h.CompleteHandover(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "OTP_INVALID", decode(t, rec).ErrorCode)
	})
}

func TestAdoptionHandler_ScheduleHandover(t *testing.T) {
	actor := shelterManager()
	id := uuid.New()
	at := time.Date(2025, 3, 20, 10, 0, 0, 0, time.UTC)

	adoptionUC := mocks.NewMockAdoptionUsecase(t)
	adoptionUC.EXPECT().ScheduleHandover(mock.Anything, actor, id, mock.MatchedBy(func(in usecase.HandoverInput) bool {
		return in.ScheduledAt.Equal(at) && in.Location == "Front desk"
	})).Return(&entity.AdoptionApplication{ID: id, Status: entity.ApplicationApproved}, nil).Once()

	h := NewAdoptionHandler(AdoptionHandlerParams{AdoptionUC: adoptionUC, Logger: slog.Default()})
	c, rec := newContext(http.MethodPost, "/", `{"scheduledAt":"2025-03-20T10:00:00Z","location":"Front desk"}`, actor)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	require.NoError(t, h.ScheduleHandover(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPetHandler_GetMyPet(t *testing.T) {
	actor := publicUser()
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		petUC := mocks.NewMockPetUsecase(t)
		petUC.EXPECT().GetMyPet(mock.Anything, actor, id).
			Return(&entity.Pet{ID: id, PetCode: "PET-20250310-0001", Name: "Milo"}, nil).Once()

		h := NewPetHandler(PetHandlerParams{PetUC: petUC, Logger: slog.Default()})
		c, rec := newContext(http.MethodGet, "/", "", actor)
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		require.NoError(t, h.GetMyPet(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var pet entity.Pet
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &pet))
		assert.Equal(t, "PET-20250310-0001", pet.PetCode)
	})

	t.Run("not in the caller's registry", func(t *testing.T) {
		petUC := mocks.NewMockPetUsecase(t)
		petUC.EXPECT().GetMyPet(mock.Anything, actor, id).Return(nil, domainerrors.ErrOwnedPetNotFound).Once()

		h := NewPetHandler(PetHandlerParams{PetUC: petUC, Logger: slog.Default()})
		c, rec := newContext(http.MethodGet, "/", "", actor)
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		require.NoError(t, h.GetMyPet(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "OWNED_PET_NOT_FOUND", decode(t, rec).ErrorCode)
	})
}

func TestPetHandler_CreatePet(t *testing.T) {
	actor := publicUser()

	t.Run("registers", func(t *testing.T) {
		petUC := mocks.NewMockPetUsecase(t)
		petUC.EXPECT().CreatePet(mock.Anything, actor, usecase.PetInput{Name: "Milo", Species: "dog", Breed: "Beagle"}).
			Return(&entity.Pet{ID: uuid.New(), Name: "Milo"}, nil).Once()

		h := NewPetHandler(PetHandlerParams{PetUC: petUC, Logger: slog.Default()})
		c, rec := newContext(http.MethodPost, "/api/users/me/pets", `{"name":"Milo","species":"dog","breed":"Beagle"}`, actor)

		require.NoError(t, h.CreatePet(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("bad gender", func(t *testing.T) {
		h := NewPetHandler(PetHandlerParams{PetUC: mocks.NewMockPetUsecase(t), Logger: slog.Default()})
		c, rec := newContext(http.MethodPost, "/api/users/me/pets", `{"name":"Milo","species":"dog","gender":"x"}`, actor)

		require.NoError(t, h.CreatePet(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "oneof", decode(t, rec).Details["gender"])
	})
}

func TestPetHandler_ListBreeds(t *testing.T) {
	petUC := mocks.NewMockPetUsecase(t)
	petUC.EXPECT().ListBreeds(mock.Anything, "cat").Return([]string{"Persian", "Siamese"}, nil).Once()
	petUC.EXPECT().ListBreeds(mock.Anything, "dragon").Return(nil, domainerrors.ErrUnknownSpecies).Once()

	h := NewPetHandler(PetHandlerParams{PetUC: petUC, Logger: slog.Default()})

	c, rec := newContext(http.MethodGet, "/", "", nil)
	c.SetParamNames("species")
	c.SetParamValues("cat")
	require.NoError(t, h.ListBreeds(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var breeds []string
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &breeds))
	assert.Equal(t, []string{"Persian", "Siamese"}, breeds)

	c, rec = newContext(http.MethodGet, "/", "", nil)
	c.SetParamNames("species")
	c.SetParamValues("dragon")
	require.NoError(t, h.ListBreeds(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UNKNOWN_SPECIES", decode(t, rec).ErrorCode)
}
