package handler

import (
	"log/slog"
	"net/http"
	"time"

	"petwelfare/internal/delivery/api/response"
	"petwelfare/internal/domain/entity"
	"petwelfare/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PetShopHandlerParams holds dependencies for PetShopHandler, injected by Fx.
type PetShopHandlerParams struct {
	fx.In

	PetShopUC usecase.PetShopUsecase
	Logger    *slog.Logger
}

// PetShopHandler serves pet shop inventory and reservations.
type PetShopHandler struct {
	petShopUC usecase.PetShopUsecase
	logger    *slog.Logger
}

// NewPetShopHandler is the constructor for PetShopHandler.
func NewPetShopHandler(params PetShopHandlerParams) *PetShopHandler {
	return &PetShopHandler{
		petShopUC: params.PetShopUC,
		logger:    params.Logger,
	}
}

// InventoryItemRequest creates or replaces a listing.
type InventoryItemRequest struct {
	Name          string   `json:"name" validate:"required,max=100"`
	Species       string   `json:"species" validate:"required"`
	Breed         string   `json:"breed"`
	Gender        string   `json:"gender" validate:"omitempty,oneof=Male Female Unknown"`
	AgeMonths     int      `json:"ageMonths" validate:"min=0"`
	Color         string   `json:"color"`
	Description   string   `json:"description" validate:"max=2000"`
	Price         float64  `json:"price" validate:"gt=0"`
	DiscountPrice float64  `json:"discountPrice" validate:"min=0"`
	Images        []string `json:"images"`
	StoreID       string   `json:"storeId"`
}

// ReservationRequest reserves an item.
type ReservationRequest struct {
	ItemID      string             `json:"itemId" validate:"required,uuid"`
	ContactInfo entity.ContactInfo `json:"contactInfo"`
	Notes       string             `json:"notes" validate:"max=500"`
}

// ReservationPaymentRequest records a reservation payment.
type ReservationPaymentRequest struct {
	Amount    float64 `json:"amount" validate:"min=0"`
	Method    string  `json:"method"`
	Reference string  `json:"reference"`
}

// HandoverRequest schedules a pickup.
type HandoverRequest struct {
	ScheduledAt time.Time `json:"scheduledAt" validate:"required"`
	Location    string    `json:"location" validate:"required"`
	Notes       string    `json:"notes"`
}

// OTPRequest carries a handover code.
type OTPRequest struct {
	OTP string `json:"otp" validate:"required,otp"`
}

func (req InventoryItemRequest) toInput() usecase.InventoryItemInput {
	return usecase.InventoryItemInput{
		Name:          req.Name,
		Species:       req.Species,
		Breed:         req.Breed,
		Gender:        req.Gender,
		AgeMonths:     req.AgeMonths,
		Color:         req.Color,
		Description:   req.Description,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		Images:        req.Images,
		StoreID:       req.StoreID,
	}
}

func inventoryFilter(c echo.Context) entity.InventoryFilter {
	return entity.InventoryFilter{
		StoreID: c.QueryParam("storeId"),
		Species: c.QueryParam("species"),
		Status:  entity.InventoryStatus(c.QueryParam("status")),
		Search:  c.QueryParam("search"),
	}
}

// ListItems lists in-stock items for the public.
func (h *PetShopHandler) ListItems(c echo.Context) error {
	items, err := h.petShopUC.ListItems(c.Request().Context(), inventoryFilter(c), pageQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// GetItem returns an in-stock item.
func (h *PetShopHandler) GetItem(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	item, err := h.petShopUC.GetItem(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// CreateReservation reserves an item for the caller.
func (h *PetShopHandler) CreateReservation(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	var req ReservationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	res, err := h.petShopUC.CreateReservation(c.Request().Context(), actor, usecase.ReservationInput{
		ItemID:      mustParseUUID(req.ItemID),
		ContactInfo: req.ContactInfo,
		Notes:       req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusCreated, "Reservation created", res)
}

// ListMyReservations lists the caller's reservations.
func (h *PetShopHandler) ListMyReservations(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	list, err := h.petShopUC.ListMyReservations(c.Request().Context(), actor, pageQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// GetMyReservation returns one of the caller's reservations.
func (h *PetShopHandler) GetMyReservation(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	view, err := h.petShopUC.GetMyReservation(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// CancelReservation cancels a pending or approved reservation of the caller.
func (h *PetShopHandler) CancelReservation(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	res, err := h.petShopUC.CancelReservation(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Reservation cancelled", res)
}

// HandoverQR renders the reservation's pickup QR code.
func (h *PetShopHandler) HandoverQR(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	png, err := h.petShopUC.HandoverQR(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// --- Manager ---

// ListStoreItems lists the manager's store inventory.
func (h *PetShopHandler) ListStoreItems(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	items, err := h.petShopUC.ListStoreItems(c.Request().Context(), actor, inventoryFilter(c), pageQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// GetStoreItem returns a store item in any status.
func (h *PetShopHandler) GetStoreItem(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	item, err := h.petShopUC.GetStoreItem(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// CreateItem adds an item with a generated pet code.
func (h *PetShopHandler) CreateItem(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	var req InventoryItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	item, err := h.petShopUC.CreateItem(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusCreated, "Item created", item)
}

// UpdateItem replaces an item.
func (h *PetShopHandler) UpdateItem(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	var req InventoryItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	item, err := h.petShopUC.UpdateItem(c.Request().Context(), actor, id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Item updated", item)
}

// DeleteItem removes an item that is not reserved or sold.
func (h *PetShopHandler) DeleteItem(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	if err := h.petShopUC.DeleteItem(c.Request().Context(), actor, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Item deleted", nil)
}

// ListReservations lists reservations of the manager's store.
func (h *PetShopHandler) ListReservations(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	filter := entity.ReservationFilter{
		StoreID: c.QueryParam("storeId"),
		Status:  entity.ReservationStatus(c.QueryParam("status")),
	}

	list, err := h.petShopUC.ListReservations(c.Request().Context(), actor, filter, pageQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// GetReservation returns a store reservation.
func (h *PetShopHandler) GetReservation(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	view, err := h.petShopUC.GetReservation(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// ApproveReservation approves a pending reservation.
func (h *PetShopHandler) ApproveReservation(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	res, err := h.petShopUC.ApproveReservation(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Reservation approved", res)
}

// RejectReservation rejects a reservation and releases the item.
func (h *PetShopHandler) RejectReservation(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	var req RejectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	res, err := h.petShopUC.RejectReservation(c.Request().Context(), actor, id, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Reservation rejected", res)
}

// RecordPayment records the buyer's payment.
func (h *PetShopHandler) RecordPayment(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	var req ReservationPaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	res, err := h.petShopUC.RecordPayment(c.Request().Context(), actor, id, usecase.PaymentInput{
		Amount:    req.Amount,
		Method:    req.Method,
		Reference: req.Reference,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, res)
}

// ScheduleHandover schedules the pickup and issues an OTP to the buyer.
func (h *PetShopHandler) ScheduleHandover(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	var req HandoverRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	res, err := h.petShopUC.ScheduleHandover(c.Request().Context(), actor, id, usecase.HandoverInput{
		ScheduledAt: req.ScheduledAt,
		Location:    req.Location,
		Notes:       req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Handover scheduled", res)
}

// RegenerateOTP issues a fresh handover code.
func (h *PetShopHandler) RegenerateOTP(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	res, err := h.petShopUC.RegenerateOTP(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "A new handover code has been sent", res)
}

// CompleteHandover verifies the buyer's OTP and hands the pet over.
func (h *PetShopHandler) CompleteHandover(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	var req OTPRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	res, err := h.petShopUC.CompleteHandover(c.Request().Context(), actor, id, req.OTP)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Handover completed", res)
}
