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

// PharmacyHandlerParams holds dependencies for PharmacyHandler, injected by Fx.
type PharmacyHandlerParams struct {
	fx.In

	PharmacyUC usecase.PharmacyUsecase
	Logger     *slog.Logger
}

// PharmacyHandler serves the medicine catalogue, prescriptions and orders.
type PharmacyHandler struct {
	pharmacyUC usecase.PharmacyUsecase
	logger     *slog.Logger
}

// NewPharmacyHandler is the constructor for PharmacyHandler.
func NewPharmacyHandler(params PharmacyHandlerParams) *PharmacyHandler {
	return &PharmacyHandler{
		pharmacyUC: params.PharmacyUC,
		logger:     params.Logger,
	}
}

// MedicineRequest creates or updates a catalogue entry.
type MedicineRequest struct {
	Name                 string       `json:"name" validate:"required,max=200"`
	Description          string       `json:"description"`
	Category             string       `json:"category" validate:"required"`
	Price                float64      `json:"price" validate:"gt=0"`
	CostPrice            float64      `json:"costPrice" validate:"min=0"`
	Dosage               string       `json:"dosage"`
	Manufacturer         string       `json:"manufacturer"`
	ExpiryDate           *time.Time   `json:"expiryDate"`
	BatchNumber          string       `json:"batchNumber"`
	RequiresPrescription bool         `json:"requiresPrescription"`
	PetTypes             []string     `json:"petTypes"`
	Stock                entity.Stock `json:"stock"`
}

func (req MedicineRequest) toInput() usecase.MedicineInput {
	return usecase.MedicineInput{
		Name:                 req.Name,
		Description:          req.Description,
		Category:             req.Category,
		Price:                req.Price,
		CostPrice:            req.CostPrice,
		Dosage:               req.Dosage,
		Manufacturer:         req.Manufacturer,
		ExpiryDate:           req.ExpiryDate,
		BatchNumber:          req.BatchNumber,
		RequiresPrescription: req.RequiresPrescription,
		PetTypes:             req.PetTypes,
		Stock:                req.Stock,
	}
}

// PrescriptionRequest uploads a prescription document for a medicine.
type PrescriptionRequest struct {
	MedicineID  string `json:"medicineId" validate:"required,uuid"`
	PetID       string `json:"petId" validate:"omitempty,uuid"`
	DocumentURL string `json:"documentUrl" validate:"required"`
}

// ReviewPrescriptionRequest approves or rejects a prescription.
type ReviewPrescriptionRequest struct {
	Approve *bool  `json:"approve" validate:"required"`
	Notes   string `json:"notes" validate:"max=500"`
}

// PharmacyOrderLineRequest is one ordered medicine.
type PharmacyOrderLineRequest struct {
	MedicineID string `json:"medicineId" validate:"required,uuid"`
	Quantity   int    `json:"quantity" validate:"required,min=1"`
}

// PharmacyOrderRequest places a medicine order.
type PharmacyOrderRequest struct {
	Items           []PharmacyOrderLineRequest `json:"items" validate:"required,min=1,dive"`
	ShippingAddress *entity.Address            `json:"shippingAddress"`
}

// PharmacyOrderStatusRequest updates an order's status.
type PharmacyOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed dispatched delivered cancelled"`
}

// ListMedicines lists active medicines.
func (h *PharmacyHandler) ListMedicines(c echo.Context) error {
	list, err := h.pharmacyUC.ListMedicines(c.Request().Context(), entity.MedicineFilter{
		Search:     c.QueryParam("search"),
		Category:   c.QueryParam("category"),
		OnlyActive: true,
	}, pageQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// GetMedicine returns one medicine.
func (h *PharmacyHandler) GetMedicine(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	med, err := h.pharmacyUC.GetMedicine(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, med)
}

// UploadPrescription stores a prescription for review.
func (h *PharmacyHandler) UploadPrescription(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	var req PrescriptionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	input := usecase.PrescriptionInput{
		MedicineID:  mustParseUUID(req.MedicineID),
		DocumentURL: req.DocumentURL,
	}
	if req.PetID != "" {
		petID := mustParseUUID(req.PetID)
		input.PetID = &petID
	}

	rx, err := h.pharmacyUC.UploadPrescription(c.Request().Context(), actor, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusCreated, "Prescription uploaded", rx)
}

// ListMyPrescriptions lists the caller's prescriptions.
func (h *PharmacyHandler) ListMyPrescriptions(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	list, err := h.pharmacyUC.ListMyPrescriptions(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// PlaceOrder orders medicines for the caller.
func (h *PharmacyHandler) PlaceOrder(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	var req PharmacyOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	lines := make([]usecase.PharmacyOrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, usecase.PharmacyOrderLine{
			MedicineID: mustParseUUID(item.MedicineID),
			Quantity:   item.Quantity,
		})
	}

	order, err := h.pharmacyUC.PlaceOrder(c.Request().Context(), actor, usecase.PharmacyOrderInput{
		Items:           lines,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusCreated, "Order placed", order)
}

// ListMyOrders lists the caller's medicine orders.
func (h *PharmacyHandler) ListMyOrders(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	list, err := h.pharmacyUC.ListMyOrders(c.Request().Context(), actor, pageQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// GetMyOrder returns one of the caller's medicine orders.
func (h *PharmacyHandler) GetMyOrder(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	order, err := h.pharmacyUC.GetMyOrder(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// --- Manager ---

// ListManagedMedicines lists the catalogue including inactive entries.
func (h *PharmacyHandler) ListManagedMedicines(c echo.Context) error {
	list, err := h.pharmacyUC.ListMedicines(c.Request().Context(), entity.MedicineFilter{
		Search:     c.QueryParam("search"),
		Category:   c.QueryParam("category"),
		OnlyActive: boolOr(boolQuery(c, "activeOnly"), false),
	}, pageQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// SaveMedicine creates a medicine or updates the entry with the same name and batch.
func (h *PharmacyHandler) SaveMedicine(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	var req MedicineRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	med, created, err := h.pharmacyUC.SaveMedicine(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if created {
		return response.SuccessMessage(c, http.StatusCreated, "Medicine created", med)
	}

	return response.SuccessMessage(c, http.StatusOK, "Medicine updated", med)
}

// UpdateMedicine replaces a medicine by ID.
func (h *PharmacyHandler) UpdateMedicine(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	var req MedicineRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	med, err := h.pharmacyUC.UpdateMedicine(c.Request().Context(), actor, id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Medicine updated", med)
}

// DeleteMedicine deactivates a medicine.
func (h *PharmacyHandler) DeleteMedicine(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	if err := h.pharmacyUC.DeleteMedicine(c.Request().Context(), actor, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Medicine deleted", nil)
}

// ListLowStock lists medicines at or below their reorder level.
func (h *PharmacyHandler) ListLowStock(c echo.Context) error {
	list, err := h.pharmacyUC.ListLowStock(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// ListPendingPrescriptions lists prescriptions awaiting review.
func (h *PharmacyHandler) ListPendingPrescriptions(c echo.Context) error {
	list, err := h.pharmacyUC.ListPendingPrescriptions(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// ReviewPrescription approves or rejects a prescription.
func (h *PharmacyHandler) ReviewPrescription(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	var req ReviewPrescriptionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	rx, err := h.pharmacyUC.ReviewPrescription(c.Request().Context(), actor, id, *req.Approve, req.Notes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rx)
}

// ListOrders lists medicine orders by status.
func (h *PharmacyHandler) ListOrders(c echo.Context) error {
	list, err := h.pharmacyUC.ListOrders(c.Request().Context(), entity.PharmacyOrderStatus(c.QueryParam("status")), pageQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// UpdateOrderStatus moves an order to a new status.
func (h *PharmacyHandler) UpdateOrderStatus(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	var req PharmacyOrderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	order, err := h.pharmacyUC.UpdateOrderStatus(c.Request().Context(), actor, id, entity.PharmacyOrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Order updated", order)
}
