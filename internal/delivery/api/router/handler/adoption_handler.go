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

// AdoptionHandlerParams holds dependencies for AdoptionHandler, injected by Fx.
type AdoptionHandlerParams struct {
	fx.In

	AdoptionUC usecase.AdoptionUsecase
	Logger     *slog.Logger
}

// AdoptionHandler serves pet listings and adoption applications.
type AdoptionHandler struct {
	adoptionUC usecase.AdoptionUsecase
	logger     *slog.Logger
}

// NewAdoptionHandler is the constructor for AdoptionHandler.
func NewAdoptionHandler(params AdoptionHandlerParams) *AdoptionHandler {
	return &AdoptionHandler{
		adoptionUC: params.AdoptionUC,
		logger:     params.Logger,
	}
}

// AdoptionPetRequest creates or replaces a pet listing.
type AdoptionPetRequest struct {
	Name         string   `json:"name" validate:"required,max=100"`
	Species      string   `json:"species" validate:"required"`
	Breed        string   `json:"breed"`
	Age          int      `json:"age" validate:"min=0"`
	AgeUnit      string   `json:"ageUnit" validate:"omitempty,oneof=weeks months years"`
	Gender       string   `json:"gender" validate:"omitempty,oneof=Male Female Unknown"`
	Color        string   `json:"color"`
	Size         string   `json:"size"`
	Description  string   `json:"description" validate:"max=2000"`
	HealthStatus string   `json:"healthStatus"`
	Vaccinations []string `json:"vaccinations"`
	Images       []string `json:"images"`
	AdoptionFee  float64  `json:"adoptionFee" validate:"min=0"`
}

func (req AdoptionPetRequest) toInput() usecase.AdoptionPetInput {
	return usecase.AdoptionPetInput{
		Name:         req.Name,
		Species:      req.Species,
		Breed:        req.Breed,
		Age:          req.Age,
		AgeUnit:      req.AgeUnit,
		Gender:       req.Gender,
		Color:        req.Color,
		Size:         req.Size,
		Description:  req.Description,
		HealthStatus: req.HealthStatus,
		Vaccinations: req.Vaccinations,
		Images:       req.Images,
		AdoptionFee:  req.AdoptionFee,
	}
}

// PetStatusRequest changes a listing's status.
type PetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available reserved adopted unavailable"`
}

// ApplicationRequest files an adoption application.
type ApplicationRequest struct {
	PetID           string         `json:"petId" validate:"required,uuid"`
	ApplicationData map[string]any `json:"applicationData"`
	Documents       []string       `json:"documents"`
}

// RejectRequest carries a mandatory rejection reason.
type RejectRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// PaymentRequest records an offline payment.
type PaymentRequest struct {
	Reference string `json:"reference" validate:"max=100"`
}

// AdoptionHandoverRequest books an adoption pickup. Location defaults to the adoption center.
type AdoptionHandoverRequest struct {
	ScheduledAt time.Time `json:"scheduledAt" validate:"required"`
	Location    string    `json:"location" validate:"max=200"`
	Notes       string    `json:"notes" validate:"max=500"`
}

func petFilter(c echo.Context) entity.AdoptionPetFilter {
	return entity.AdoptionPetFilter{
		Species: c.QueryParam("species"),
		Gender:  c.QueryParam("gender"),
		Size:    c.QueryParam("size"),
		Status:  entity.AdoptionPetStatus(c.QueryParam("status")),
		Search:  c.QueryParam("search"),
	}
}

// ListAvailablePets lists the public adoption catalogue.
func (h *AdoptionHandler) ListAvailablePets(c echo.Context) error {
	pets, err := h.adoptionUC.ListAvailablePets(c.Request().Context(), petFilter(c), pageQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pets)
}

// GetAvailablePet returns a pet that is open for adoption.
func (h *AdoptionHandler) GetAvailablePet(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	pet, err := h.adoptionUC.GetAvailablePet(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pet)
}

// VerifyCertificate resolves a certificate number, e.g. from its QR code.
func (h *AdoptionHandler) VerifyCertificate(c echo.Context) error {
	view, err := h.adoptionUC.VerifyCertificate(c.Request().Context(), c.Param("number"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// SubmitApplication files an application for the caller.
func (h *AdoptionHandler) SubmitApplication(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	var req ApplicationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	app, err := h.adoptionUC.SubmitApplication(c.Request().Context(), actor, usecase.ApplicationInput{
		PetID:           mustParseUUID(req.PetID),
		ApplicationData: req.ApplicationData,
		Documents:       req.Documents,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusCreated, "Application submitted", app)
}

// ListMyApplications lists the caller's applications.
func (h *AdoptionHandler) ListMyApplications(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	apps, err := h.adoptionUC.ListMyApplications(c.Request().Context(), actor, pageQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, apps)
}

// GetMyApplication returns one of the caller's applications.
func (h *AdoptionHandler) GetMyApplication(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	view, err := h.adoptionUC.GetMyApplication(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// CancelApplication withdraws one of the caller's applications.
func (h *AdoptionHandler) CancelApplication(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	app, err := h.adoptionUC.CancelApplication(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Application cancelled", app)
}

// --- Manager ---

// ListPets lists every listing with manager filters.
func (h *AdoptionHandler) ListPets(c echo.Context) error {
	pets, err := h.adoptionUC.ListPets(c.Request().Context(), petFilter(c), pageQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pets)
}

// GetPet returns any listing.
func (h *AdoptionHandler) GetPet(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	pet, err := h.adoptionUC.GetPet(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pet)
}

// CreatePet creates a listing.
func (h *AdoptionHandler) CreatePet(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	var req AdoptionPetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	pet, err := h.adoptionUC.CreatePet(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusCreated, "Pet created", pet)
}

// UpdatePet replaces a listing.
func (h *AdoptionHandler) UpdatePet(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	var req AdoptionPetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	pet, err := h.adoptionUC.UpdatePet(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Pet updated", pet)
}

// SetPetStatus changes a listing's status.
func (h *AdoptionHandler) SetPetStatus(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	var req PetStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	pet, err := h.adoptionUC.SetPetStatus(c.Request().Context(), id, entity.AdoptionPetStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pet)
}

// DeletePet retires a listing.
func (h *AdoptionHandler) DeletePet(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	if err := h.adoptionUC.DeletePet(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Pet deleted", nil)
}

// ListApplications lists applications with status and pet filters.
func (h *AdoptionHandler) ListApplications(c echo.Context) error {
	filter := entity.ApplicationFilter{Status: entity.ApplicationStatus(c.QueryParam("status"))}
	if petID, ok := optionalUUIDQuery(c, "petId"); ok {
		filter.PetID = &petID
	}

	apps, err := h.adoptionUC.ListApplications(c.Request().Context(), filter, pageQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, apps)
}

// GetApplication returns any application with its pet.
func (h *AdoptionHandler) GetApplication(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	view, err := h.adoptionUC.GetApplication(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// ApproveApplication approves an application and reserves the pet.
func (h *AdoptionHandler) ApproveApplication(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	app, err := h.adoptionUC.ApproveApplication(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Application approved", app)
}

// RejectApplication rejects an application with a reason.
func (h *AdoptionHandler) RejectApplication(c echo.Context) error {
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

	app, err := h.adoptionUC.RejectApplication(c.Request().Context(), actor, id, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Application rejected", app)
}

// MarkPaymentReceived records the adoption fee payment.
func (h *AdoptionHandler) MarkPaymentReceived(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	var req PaymentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	app, err := h.adoptionUC.MarkPaymentReceived(c.Request().Context(), actor, id, req.Reference)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, app)
}

// ScheduleHandover books the pickup and sends the applicant a handover code.
func (h *AdoptionHandler) ScheduleHandover(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	var req AdoptionHandoverRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	app, err := h.adoptionUC.ScheduleHandover(c.Request().Context(), actor, id, usecase.HandoverInput{
		ScheduledAt: req.ScheduledAt,
		Location:    req.Location,
		Notes:       req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Handover scheduled", app)
}

// RegenerateHandoverOTP sends the applicant a new handover code.
func (h *AdoptionHandler) RegenerateHandoverOTP(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	app, err := h.adoptionUC.RegenerateHandoverOTP(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Handover code sent", app)
}

// CompleteHandover checks the applicant's code, finishes the adoption and issues the certificate.
func (h *AdoptionHandler) CompleteHandover(c echo.Context) error {
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

	app, err := h.adoptionUC.CompleteHandover(c.Request().Context(), actor, id, req.OTP)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Adoption completed", app)
}

// ListCertificates lists issued adoption certificates.
func (h *AdoptionHandler) ListCertificates(c echo.Context) error {
	apps, err := h.adoptionUC.ListCertificates(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, apps)
}
