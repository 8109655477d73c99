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

// ShelterHandlerParams holds dependencies for ShelterHandler, injected by Fx.
type ShelterHandlerParams struct {
	fx.In

	ShelterUC usecase.ShelterUsecase
	Logger    *slog.Logger
}

// ShelterHandler serves shelter intake and kennel management.
type ShelterHandler struct {
	shelterUC usecase.ShelterUsecase
	logger    *slog.Logger
}

// NewShelterHandler is the constructor for ShelterHandler.
func NewShelterHandler(params ShelterHandlerParams) *ShelterHandler {
	return &ShelterHandler{
		shelterUC: params.ShelterUC,
		logger:    params.Logger,
	}
}

// IntakeRequest admits or updates an animal.
type IntakeRequest struct {
	Name               string     `json:"name" validate:"max=100"`
	Species            string     `json:"species" validate:"required"`
	Breed              string     `json:"breed"`
	Gender             string     `json:"gender" validate:"omitempty,oneof=Male Female Unknown"`
	EstimatedAgeMonths int        `json:"estimatedAgeMonths" validate:"min=0"`
	IntakeDate         *time.Time `json:"intakeDate"`
	IntakeSource       string     `json:"intakeSource" validate:"omitempty,oneof=stray surrender rescue transfer"`
	RescueReportID     string     `json:"rescueReportId" validate:"omitempty,uuid"`
	Kennel             string     `json:"kennel"`
	HealthStatus       string     `json:"healthStatus"`
	Images             []string   `json:"images"`
	Notes              string     `json:"notes" validate:"max=2000"`
}

func (req IntakeRequest) toInput() usecase.IntakeInput {
	input := usecase.IntakeInput{
		Name:               req.Name,
		Species:            req.Species,
		Breed:              req.Breed,
		Gender:             req.Gender,
		EstimatedAgeMonths: req.EstimatedAgeMonths,
		IntakeSource:       entity.IntakeSource(req.IntakeSource),
		Kennel:             req.Kennel,
		HealthStatus:       req.HealthStatus,
		Images:             req.Images,
		Notes:              req.Notes,
	}
	if req.IntakeDate != nil {
		input.IntakeDate = *req.IntakeDate
	}
	if req.RescueReportID != "" {
		reportID := mustParseUUID(req.RescueReportID)
		input.RescueReportID = &reportID
	}

	return input
}

// KennelRequest assigns a kennel.
type KennelRequest struct {
	Kennel string `json:"kennel" validate:"required,max=20"`
}

// ShelterStatusRequest moves an animal to a new status.
type ShelterStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=sheltered medical_care ready_for_adoption transferred deceased"`
	Notes  string `json:"notes" validate:"max=1000"`
}

// TransferRequest lists a sheltered animal for adoption.
type TransferRequest struct {
	AdoptionFee  float64  `json:"adoptionFee" validate:"min=0"`
	Size         string   `json:"size"`
	Color        string   `json:"color"`
	Description  string   `json:"description" validate:"max=2000"`
	Vaccinations []string `json:"vaccinations"`
}

// Intake admits an animal.
func (h *ShelterHandler) Intake(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	var req IntakeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	animal, err := h.shelterUC.Intake(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusCreated, "Animal admitted", animal)
}

// ListAnimals lists sheltered animals.
func (h *ShelterHandler) ListAnimals(c echo.Context) error {
	list, err := h.shelterUC.ListAnimals(c.Request().Context(), entity.ShelterFilter{
		Status:  entity.ShelterStatus(c.QueryParam("status")),
		Species: c.QueryParam("species"),
		Kennel:  c.QueryParam("kennel"),
	}, pageQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// GetAnimal returns one animal.
func (h *ShelterHandler) GetAnimal(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	animal, err := h.shelterUC.GetAnimal(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, animal)
}

// UpdateAnimal replaces an animal's descriptive fields.
func (h *ShelterHandler) UpdateAnimal(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	var req IntakeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	animal, err := h.shelterUC.UpdateAnimal(c.Request().Context(), actor, id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Animal updated", animal)
}

// AssignKennel moves an animal into a kennel.
func (h *ShelterHandler) AssignKennel(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	var req KennelRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	animal, err := h.shelterUC.AssignKennel(c.Request().Context(), actor, id, req.Kennel)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, animal)
}

// UpdateStatus moves an animal to a new status.
func (h *ShelterHandler) UpdateStatus(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	var req ShelterStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	animal, err := h.shelterUC.UpdateStatus(c.Request().Context(), actor, id, entity.ShelterStatus(req.Status), req.Notes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, animal)
}

// TransferToAdoption lists an animal for adoption.
func (h *ShelterHandler) TransferToAdoption(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	var req TransferRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	result, err := h.shelterUC.TransferToAdoption(c.Request().Context(), actor, id, usecase.TransferInput{
		AdoptionFee:  req.AdoptionFee,
		Size:         req.Size,
		Color:        req.Color,
		Description:  req.Description,
		Vaccinations: req.Vaccinations,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusCreated, "Animal listed for adoption", result)
}
