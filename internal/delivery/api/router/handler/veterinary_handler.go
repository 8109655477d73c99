package handler

import (
	"log/slog"
	"net/http"
	"time"

	"petwelfare/internal/delivery/api/response"
	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VeterinaryHandlerParams holds dependencies for VeterinaryHandler, injected by Fx.
type VeterinaryHandlerParams struct {
	fx.In

	VeterinaryUC usecase.VeterinaryUsecase
	Logger       *slog.Logger
}

// VeterinaryHandler serves appointment booking and clinic management.
type VeterinaryHandler struct {
	veterinaryUC usecase.VeterinaryUsecase
	logger       *slog.Logger
}

// NewVeterinaryHandler is the constructor for VeterinaryHandler.
func NewVeterinaryHandler(params VeterinaryHandlerParams) *VeterinaryHandler {
	return &VeterinaryHandler{
		veterinaryUC: params.VeterinaryUC,
		logger:       params.Logger,
	}
}

// BookAppointmentRequest books a visit. Dates are yyyy-mm-dd.
type BookAppointmentRequest struct {
	StoreID         string `json:"storeId" validate:"required"`
	PetID           string `json:"petId" validate:"omitempty,uuid"`
	PetName         string `json:"petName" validate:"required,max=100"`
	AppointmentDate string `json:"appointmentDate" validate:"required,datetime=2006-01-02"`
	TimeSlot        string `json:"timeSlot" validate:"omitempty,timeslot"`
	BookingType     string `json:"bookingType" validate:"omitempty,oneof=routine walkin emergency"`
	VisitType       string `json:"visitType"`
	Reason          string `json:"reason" validate:"max=1000"`
	Symptoms        string `json:"symptoms" validate:"max=1000"`
}

// CancelRequest carries an optional cancellation reason.
type CancelRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// AppointmentStatusRequest moves an appointment along its lifecycle.
type AppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending_approval scheduled confirmed in_progress completed cancelled rejected"`
	Notes  string `json:"notes" validate:"max=1000"`
}

// ConsultationRequest records the outcome of a visit.
type ConsultationRequest struct {
	Diagnosis string  `json:"diagnosis" validate:"required"`
	Treatment string  `json:"treatment"`
	Notes     string  `json:"notes"`
	Amount    float64 `json:"amount" validate:"min=0"`
}

// BookAppointment books a visit for the caller.
func (h *VeterinaryHandler) BookAppointment(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	var req BookAppointmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	date, _ := time.Parse(dateLayout, req.AppointmentDate)
	input := usecase.BookAppointmentInput{
		StoreID:         req.StoreID,
		PetName:         req.PetName,
		AppointmentDate: date,
		TimeSlot:        req.TimeSlot,
		BookingType:     entity.BookingType(req.BookingType),
		VisitType:       req.VisitType,
		Reason:          req.Reason,
		Symptoms:        req.Symptoms,
	}
	if input.BookingType == "" {
		input.BookingType = entity.BookingRoutine
	}
	if req.PetID != "" {
		petID := mustParseUUID(req.PetID)
		input.PetID = &petID
	}

	appt, err := h.veterinaryUC.BookAppointment(c.Request().Context(), actor, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusCreated, "Appointment booked", appt)
}

// ListMyAppointments lists the caller's appointments.
func (h *VeterinaryHandler) ListMyAppointments(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	list, err := h.veterinaryUC.ListMyAppointments(c.Request().Context(), actor, pageQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// GetMyAppointment returns one of the caller's appointments.
func (h *VeterinaryHandler) GetMyAppointment(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	appt, err := h.veterinaryUC.GetMyAppointment(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, appt)
}

// CancelAppointment cancels one of the caller's upcoming appointments.
func (h *VeterinaryHandler) CancelAppointment(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	var req CancelRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	appt, err := h.veterinaryUC.CancelAppointment(c.Request().Context(), actor, id, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Appointment cancelled", appt)
}

// AvailableSlots lists a store's free slots on ?date=yyyy-mm-dd.
func (h *VeterinaryHandler) AvailableSlots(c echo.Context) error {
	date := dateQuery(c, "date")
	if date == nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "date must be yyyy-mm-dd")
	}

	slots, err := h.veterinaryUC.AvailableSlots(c.Request().Context(), c.Param("storeId"), *date)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, slots)
}

// --- Manager ---

// ListAppointments lists clinic appointments, emergencies first.
func (h *VeterinaryHandler) ListAppointments(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	filter := entity.AppointmentFilter{
		StoreID:     c.QueryParam("storeId"),
		Date:        dateQuery(c, "date"),
		Status:      entity.AppointmentStatus(c.QueryParam("status")),
		BookingType: entity.BookingType(c.QueryParam("bookingType")),
	}
	if ownerID, ok := optionalUUIDQuery(c, "ownerId"); ok {
		filter.OwnerID = &ownerID
	}

	list, err := h.veterinaryUC.ListAppointments(c.Request().Context(), actor, filter, pageQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// GetAppointment returns a clinic appointment.
func (h *VeterinaryHandler) GetAppointment(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	appt, err := h.veterinaryUC.GetAppointment(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, appt)
}

// UpdateStatus moves an appointment to a new status.
func (h *VeterinaryHandler) UpdateStatus(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	var req AppointmentStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	appt, err := h.veterinaryUC.UpdateStatus(c.Request().Context(), actor, id, entity.AppointmentStatus(req.Status), req.Notes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Appointment updated", appt)
}

// RecordConsultation stores diagnosis and treatment.
func (h *VeterinaryHandler) RecordConsultation(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	var req ConsultationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	appt, err := h.veterinaryUC.RecordConsultation(c.Request().Context(), actor, id, usecase.ConsultationInput{
		Diagnosis: req.Diagnosis,
		Treatment: req.Treatment,
		Notes:     req.Notes,
		Amount:    req.Amount,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Consultation recorded", appt)
}

// DeleteAppointment removes an appointment.
func (h *VeterinaryHandler) DeleteAppointment(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	if err := h.veterinaryUC.DeleteAppointment(c.Request().Context(), actor, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Appointment deleted", nil)
}
