package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"petwelfare/internal/delivery/api/middleware"
	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/domain/service"
	mocks "petwelfare/internal/mocks/usecase"
	"petwelfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func publicUser() *usecase.Actor {
	return &usecase.Actor{UserID: uuid.New(), Name: "Ari", Role: entity.RolePublicUser}
}

func TestEcommerceHandler_Checkout(t *testing.T) {
	actor := publicUser()

	t.Run("places order", func(t *testing.T) {
		ecommerceUC := mocks.NewMockEcommerceUsecase(t)
		ecommerceUC.EXPECT().Checkout(mock.Anything, actor, usecase.CheckoutInput{
			ShippingMethod: entity.ShippingPickup,
			PaymentMethod:  "cod",
		}).Return(&entity.Order{ID: uuid.New(), OrderNumber: "ORD-20261018-0001", TotalAmount: 42.5}, nil).Once()

		h := NewEcommerceHandler(EcommerceHandlerParams{EcommerceUC: ecommerceUC, Logger: slog.Default()})
		c, rec := newContext(http.MethodPost, "/api/ecommerce/orders", `{"shippingMethod":"pickup","paymentMethod":"cod"}`, actor)

		require.NoError(t, h.Checkout(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var order entity.Order
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &order))
		assert.Equal(t, "ORD-20261018-0001", order.OrderNumber)
	})

	t.Run("unknown shipping method", func(t *testing.T) {
		h := NewEcommerceHandler(EcommerceHandlerParams{EcommerceUC: mocks.NewMockEcommerceUsecase(t), Logger: slog.Default()})
		c, rec := newContext(http.MethodPost, "/api/ecommerce/orders", `{"shippingMethod":"teleport"}`, actor)

		require.NoError(t, h.Checkout(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "oneof", decode(t, rec).Details["shippingMethod"])
	})

	t.Run("empty cart", func(t *testing.T) {
		ecommerceUC := mocks.NewMockEcommerceUsecase(t)
		ecommerceUC.EXPECT().Checkout(mock.Anything, actor, mock.Anything).Return(nil, domainerrors.ErrCartEmpty).Once()

		h := NewEcommerceHandler(EcommerceHandlerParams{EcommerceUC: ecommerceUC, Logger: slog.Default()})
		c, rec := newContext(http.MethodPost, "/api/ecommerce/orders", `{}`, actor)

		require.NoError(t, h.Checkout(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "CART_EMPTY", decode(t, rec).ErrorCode)
	})
}

func TestPetShopHandler_HandoverQR(t *testing.T) {
	actor := publicUser()
	id := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	t.Run("renders png", func(t *testing.T) {
		petShopUC := mocks.NewMockPetShopUsecase(t)
		petShopUC.EXPECT().HandoverQR(mock.Anything, actor, id).Return(png, nil).Once()

		h := NewPetShopHandler(PetShopHandlerParams{PetShopUC: petShopUC, Logger: slog.Default()})
		c, rec := newContext(http.MethodGet, "/", "", actor)
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		require.NoError(t, h.HandoverQR(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("bad id", func(t *testing.T) {
		h := NewPetShopHandler(PetShopHandlerParams{PetShopUC: mocks.NewMockPetShopUsecase(t), Logger: slog.Default()})
		c, rec := newContext(http.MethodGet, "/", "", actor)
		c.SetParamNames("id")
		c.SetParamValues("not-a-uuid")

		require.NoError(t, h.HandoverQR(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_ID", decode(t, rec).ErrorCode)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		petShopUC := mocks.NewMockPetShopUsecase(t)
		petShopUC.EXPECT().HandoverQR(mock.Anything, actor, id).Return(nil, domainerrors.ErrReservationNotFound).Once()

		h := NewPetShopHandler(PetShopHandlerParams{PetShopUC: petShopUC, Logger: slog.Default()})
		c, rec := newContext(http.MethodGet, "/", "", actor)
		c.SetParamNames("id")
		c.SetParamValues(id.String())

		require.NoError(t, h.HandoverQR(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestVeterinaryHandler_AvailableSlots(t *testing.T) {
	t.Run("lists slots", func(t *testing.T) {
		date := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
		vetUC := mocks.NewMockVeterinaryUsecase(t)
		vetUC.EXPECT().AvailableSlots(mock.Anything, "clinic-1", date).Return(&usecase.SlotAvailability{
			Date:      "2026-10-20",
			StoreID:   "clinic-1",
			Available: []string{"09:00", "09:30"},
			Booked:    []string{"10:00"},
		}, nil).Once()

		h := NewVeterinaryHandler(VeterinaryHandlerParams{VeterinaryUC: vetUC, Logger: slog.Default()})
		c, rec := newContext(http.MethodGet, "/api/veterinary/stores/clinic-1/slots?date=2026-10-20", "", nil)
		c.SetParamNames("storeId")
		c.SetParamValues("clinic-1")

		require.NoError(t, h.AvailableSlots(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var slots usecase.SlotAvailability
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &slots))
		assert.Equal(t, []string{"09:00", "09:30"}, slots.Available)
	})

	t.Run("missing date", func(t *testing.T) {
		h := NewVeterinaryHandler(VeterinaryHandlerParams{VeterinaryUC: mocks.NewMockVeterinaryUsecase(t), Logger: slog.Default()})
		c, rec := newContext(http.MethodGet, "/api/veterinary/stores/clinic-1/slots?date=20-10-2026", "", nil)

		require.NoError(t, h.AvailableSlots(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRBACHandler_CheckPermission(t *testing.T) {
	actor := &usecase.Actor{UserID: uuid.New(), Role: entity.ModuleRoleName(entity.ModuleAdoption, entity.StaffManager)}

	permUC := mocks.NewMockPermissionUsecase(t)
	permUC.EXPECT().CheckPermission(mock.Anything, actor, usecase.PermissionCheck{
		Module:     entity.ModuleAdoption,
		Action:     entity.ActionApprove,
		Attributes: map[string]any{"storeId": "s-1"},
	}).Return(&usecase.PermissionDecision{Allowed: true, Module: "adoption", Action: "approve"}, nil).Once()

	h := NewRBACHandler(RBACHandlerParams{PermissionUC: permUC, Logger: slog.Default()})
	body := `{"module":"adoption","action":"approve","attributes":{"storeId":"s-1"}}`
	c, rec := newContext(http.MethodPost, "/api/rbac/check-permission", body, actor)

	require.NoError(t, h.CheckPermission(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var decision usecase.PermissionDecision
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &decision))
	assert.True(t, decision.Allowed)
}

func TestUploadHandler_Upload(t *testing.T) {
	actor := publicUser()

	newUpload := func(t *testing.T, field string) echo.Context {
		t.Helper()

		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		part, err := w.CreateFormFile(field, "rex.png")
		require.NoError(t, err)
		_, err = part.Write([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'})
		require.NoError(t, err)
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/uploads/adoption", &buf)
		req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
		c := newTestEcho().NewContext(req, httptest.NewRecorder())
		c.SetParamNames("module")
		c.SetParamValues("adoption")
		middleware.SetActor(c, actor)

		return c
	}

	t.Run("stores file", func(t *testing.T) {
		uploadUC := mocks.NewMockUploadUsecase(t)
		uploadUC.EXPECT().Upload(mock.Anything, actor, "adoption", mock.MatchedBy(func(in usecase.UploadInput) bool {
			return in.Filename == "rex.png" && in.Size == 8
		})).Return(&service.StoredFile{Key: "adoption/abc.png", URL: "/uploads/adoption/abc.png", Size: 8}, nil).Once()

		h := NewUploadHandler(UploadHandlerParams{UploadUC: uploadUC, Logger: slog.Default()})
		c := newUpload(t, "file")

		require.NoError(t, h.Upload(c))
		rec := c.Response().Writer.(*httptest.ResponseRecorder)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var stored service.StoredFile
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &stored))
		assert.Equal(t, "/uploads/adoption/abc.png", stored.URL)
	})

	t.Run("wrong field name", func(t *testing.T) {
		h := NewUploadHandler(UploadHandlerParams{UploadUC: mocks.NewMockUploadUsecase(t), Logger: slog.Default()})
		c := newUpload(t, "image")

		require.NoError(t, h.Upload(c))
		rec := c.Response().Writer.(*httptest.ResponseRecorder)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejected type", func(t *testing.T) {
		uploadUC := mocks.NewMockUploadUsecase(t)
		uploadUC.EXPECT().Upload(mock.Anything, actor, "adoption", mock.Anything).Return(nil, domainerrors.ErrUnsupportedFileType).Once()

		h := NewUploadHandler(UploadHandlerParams{UploadUC: uploadUC, Logger: slog.Default()})
		c := newUpload(t, "file")

		require.NoError(t, h.Upload(c))
		rec := c.Response().Writer.(*httptest.ResponseRecorder)
		assert.Equal(t, "UNSUPPORTED_FILE_TYPE", decode(t, rec).ErrorCode)
	})
}
