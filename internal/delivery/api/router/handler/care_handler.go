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

// CareHandlerParams holds dependencies for CareHandler, injected by Fx.
type CareHandlerParams struct {
	fx.In

	CareUC usecase.CareUsecase
	Logger *slog.Logger
}

// CareHandler serves the temporary care catalogue and bookings.
type CareHandler struct {
	careUC usecase.CareUsecase
	logger *slog.Logger
}

// NewCareHandler is the constructor for CareHandler.
func NewCareHandler(params CareHandlerParams) *CareHandler {
	return &CareHandler{
		careUC: params.CareUC,
		logger: params.Logger,
	}
}

// CareServiceRequest creates or replaces a catalogue service.
type CareServiceRequest struct {
	Name              string                    `json:"name" validate:"required,max=100"`
	Category          string                    `json:"category" validate:"required,oneof=boarding in-home daycare overnight"`
	Description       string                    `json:"description" validate:"max=2000"`
	BasePrice         float64                   `json:"basePrice" validate:"gt=0"`
	PriceUnit         string                    `json:"priceUnit" validate:"omitempty,oneof=per_day per_hour fixed"`
	AdvancePercentage float64                   `json:"advancePercentage" validate:"min=0,max=100"`
	AdditionalCharges []entity.AdditionalCharge `json:"additionalCharges" validate:"dive"`
	StoreID           string                    `json:"storeId"`
}

func (req CareServiceRequest) toInput() usecase.CareServiceInput {
	return usecase.CareServiceInput{
		Name:              req.Name,
		Category:          entity.CareCategory(req.Category),
		Description:       req.Description,
		BasePrice:         req.BasePrice,
		PriceUnit:         entity.PriceUnit(req.PriceUnit),
		AdvancePercentage: req.AdvancePercentage,
		AdditionalCharges: req.AdditionalCharges,
		StoreID:           req.StoreID,
	}
}

// CareBookingRequest requests a stay.
type CareBookingRequest struct {
	PetID               string               `json:"petId" validate:"required,uuid"`
	PetName             string               `json:"petName" validate:"max=100"`
	ServiceID           string               `json:"serviceId" validate:"omitempty,uuid"`
	ServiceCategory     string               `json:"serviceCategory" validate:"omitempty,oneof=boarding in-home daycare overnight"`
	StartDate           time.Time            `json:"startDate" validate:"required"`
	EndDate             time.Time            `json:"endDate" validate:"required"`
	Duration            *entity.CareDuration `json:"duration"`
	Location            entity.CareLocation  `json:"location"`
	SpecialRequirements string               `json:"specialRequirements" validate:"max=2000"`
	BaseAmount          float64              `json:"baseAmount" validate:"min=0"`
}

func (req CareBookingRequest) toInput() usecase.CareBookingInput {
	input := usecase.CareBookingInput{
		PetID:               mustParseUUID(req.PetID),
		PetName:             req.PetName,
		ServiceCategory:     entity.CareCategory(req.ServiceCategory),
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		Duration:            req.Duration,
		Location:            req.Location,
		SpecialRequirements: req.SpecialRequirements,
		BaseAmount:          req.BaseAmount,
	}
	if req.ServiceID != "" {
		serviceID := mustParseUUID(req.ServiceID)
		input.ServiceID = &serviceID
	}

	return input
}

// ReviewRequest rates a completed booking or a product.
type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=1000"`
}

// AssignCaregiverRequest assigns a caregiver.
type AssignCaregiverRequest struct {
	CaregiverID string `json:"caregiverId" validate:"required,uuid"`
}

// ActivityRequest is a caregiver log entry.
type ActivityRequest struct {
	Type        string   `json:"type" validate:"required,max=50"`
	Description string   `json:"description" validate:"required,max=1000"`
	Images      []string `json:"images"`
}

// ListServices lists active services, optionally by ?category.
func (h *CareHandler) ListServices(c echo.Context) error {
	list, err := h.careUC.ListServices(c.Request().Context(), entity.CareCategory(c.QueryParam("category")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// GetService returns one service.
func (h *CareHandler) GetService(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	svc, err := h.careUC.GetService(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, svc)
}

// Quote prices a booking request without saving it.
func (h *CareHandler) Quote(c echo.Context) error {
	var req CareBookingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	pricing, err := h.careUC.Quote(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pricing)
}

// CreateBooking books a stay for the caller.
func (h *CareHandler) CreateBooking(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	var req CareBookingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	booking, err := h.careUC.CreateBooking(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusCreated, "Booking created", booking)
}

// ListMyBookings lists the caller's bookings.
func (h *CareHandler) ListMyBookings(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	list, err := h.careUC.ListMyBookings(c.Request().Context(), actor, pageQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// GetMyBooking returns one of the caller's bookings.
func (h *CareHandler) GetMyBooking(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	booking, err := h.careUC.GetMyBooking(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, booking)
}

// PayAdvance records the advance payment and confirms the booking.
func (h *CareHandler) PayAdvance(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	booking, err := h.careUC.PayAdvance(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Advance payment received", booking)
}

// CancelBooking cancels a booking more than 24 hours before it starts.
func (h *CareHandler) CancelBooking(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	var req CancelRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	booking, err := h.careUC.CancelBooking(c.Request().Context(), actor, id, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Booking cancelled", booking)
}

// ReviewBooking rates a completed booking.
func (h *CareHandler) ReviewBooking(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	var req ReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	booking, err := h.careUC.ReviewBooking(c.Request().Context(), actor, id, req.Rating, req.Comment)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Thank you for your review", booking)
}

// --- Manager ---

// ListManagedServices lists the manager's services including inactive ones.
func (h *CareHandler) ListManagedServices(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	list, err := h.careUC.ListManagedServices(c.Request().Context(), actor, entity.CareCategory(c.QueryParam("category")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// CreateService adds a catalogue service.
func (h *CareHandler) CreateService(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	var req CareServiceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	svc, err := h.careUC.CreateService(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusCreated, "Service created", svc)
}

// UpdateService replaces a catalogue service.
func (h *CareHandler) UpdateService(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	var req CareServiceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	svc, err := h.careUC.UpdateService(c.Request().Context(), actor, id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Service updated", svc)
}

// DeactivateService hides a service from the catalogue.
func (h *CareHandler) DeactivateService(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	svc, err := h.careUC.DeactivateService(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Service deactivated", svc)
}

// ListBookings lists bookings with status, category and caregiver filters.
func (h *CareHandler) ListBookings(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	filter := entity.CareBookingFilter{
		StoreID:         c.QueryParam("storeId"),
		Status:          entity.CareBookingStatus(c.QueryParam("status")),
		ServiceCategory: entity.CareCategory(c.QueryParam("serviceCategory")),
	}
	if caregiver, ok := optionalUUIDQuery(c, "caregiverId"); ok {
		filter.CaregiverID = &caregiver
	}

	list, err := h.careUC.ListBookings(c.Request().Context(), actor, filter, pageQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// GetBooking returns any booking of the manager's store.
func (h *CareHandler) GetBooking(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	booking, err := h.careUC.GetBooking(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, booking)
}

// AssignCaregiver adds a caregiver to a booking.
func (h *CareHandler) AssignCaregiver(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	var req AssignCaregiverRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	booking, err := h.careUC.AssignCaregiver(c.Request().Context(), actor, id, mustParseUUID(req.CaregiverID))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Caregiver assigned", booking)
}

// GenerateDropOffOTP sends the drop-off code to the owner.
func (h *CareHandler) GenerateDropOffOTP(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	booking, err := h.careUC.GenerateDropOffOTP(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Drop-off code sent", booking)
}

// VerifyDropOff checks the owner's drop-off code and starts the stay.
func (h *CareHandler) VerifyDropOff(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	var req OTPRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	booking, err := h.careUC.VerifyDropOff(c.Request().Context(), actor, id, req.OTP)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Drop-off verified", booking)
}

// LogActivity appends a caregiver activity.
func (h *CareHandler) LogActivity(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	var req ActivityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	booking, err := h.careUC.LogActivity(c.Request().Context(), actor, id, usecase.ActivityInput{
		Type:        req.Type,
		Description: req.Description,
		Images:      req.Images,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, booking)
}

// GeneratePickupOTP sends the pickup code to the owner.
func (h *CareHandler) GeneratePickupOTP(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	booking, err := h.careUC.GeneratePickupOTP(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Pickup code sent", booking)
}

// VerifyPickup checks the owner's pickup code and completes the stay.
func (h *CareHandler) VerifyPickup(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	var req OTPRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	booking, err := h.careUC.VerifyPickup(c.Request().Context(), actor, id, req.OTP)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Pickup verified", booking)
}
