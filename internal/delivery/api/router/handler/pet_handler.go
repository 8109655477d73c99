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

// PetHandlerParams holds dependencies for PetHandler, injected by Fx.
type PetHandlerParams struct {
	fx.In

	PetUC  usecase.PetUsecase
	Logger *slog.Logger
}

// PetHandler serves the caller's pet registry and the species lookup.
type PetHandler struct {
	petUC  usecase.PetUsecase
	logger *slog.Logger
}

// NewPetHandler is the constructor for PetHandler.
func NewPetHandler(params PetHandlerParams) *PetHandler {
	return &PetHandler{
		petUC:  params.PetUC,
		logger: params.Logger,
	}
}

// PetRequest registers or edits an owned pet.
type PetRequest struct {
	Name        string     `json:"name" validate:"required,max=100"`
	Species     string     `json:"species" validate:"required,max=50"`
	Breed       string     `json:"breed" validate:"max=100"`
	Gender      string     `json:"gender" validate:"omitempty,oneof=Male Female Unknown"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Color       string     `json:"color" validate:"max=50"`
	WeightKg    float64    `json:"weightKg" validate:"min=0,max=500"`
	MicrochipID string     `json:"microchipId" validate:"max=50"`
	Images      []string   `json:"images" validate:"max=10"`
}

// MedicalRecordRequest adds a medical history entry.
type MedicalRecordRequest struct {
	Date         time.Time  `json:"date" validate:"required"`
	Condition    string     `json:"condition" validate:"required,max=200"`
	Diagnosis    string     `json:"diagnosis" validate:"max=1000"`
	Treatment    string     `json:"treatment" validate:"max=1000"`
	Veterinarian string     `json:"veterinarian" validate:"max=100"`
	Notes        string     `json:"notes" validate:"max=2000"`
	FollowUpAt   *time.Time `json:"followUpAt"`
}

// VaccinationRequest records an administered vaccine.
type VaccinationRequest struct {
	Name         string     `json:"name" validate:"required,max=100"`
	Date         time.Time  `json:"date" validate:"required"`
	NextDueDate  *time.Time `json:"nextDueDate"`
	Veterinarian string     `json:"veterinarian" validate:"max=100"`
	BatchNumber  string     `json:"batchNumber" validate:"max=50"`
}

func (req PetRequest) toInput() usecase.PetInput {
	return usecase.PetInput{
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		Gender:      req.Gender,
		DateOfBirth: req.DateOfBirth,
		Color:       req.Color,
		WeightKg:    req.WeightKg,
		MicrochipID: req.MicrochipID,
		Images:      req.Images,
	}
}

// ListMyPets lists the caller's pets, optionally by species or a name search.
func (h *PetHandler) ListMyPets(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	filter := entity.PetFilter{Species: c.QueryParam("species"), Search: c.QueryParam("search")}
	list, err := h.petUC.ListMyPets(c.Request().Context(), actor, filter, pageQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

func (h *PetHandler) GetMyPet(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	pet, err := h.petUC.GetMyPet(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pet)
}

func (h *PetHandler) CreatePet(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	var req PetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	pet, err := h.petUC.CreatePet(c.Request().Context(), actor, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusCreated, "Pet registered", pet)
}

func (h *PetHandler) UpdatePet(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	var req PetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	pet, err := h.petUC.UpdatePet(c.Request().Context(), actor, id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pet)
}

func (h *PetHandler) DeletePet(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	if err := h.petUC.DeletePet(c.Request().Context(), actor, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Pet removed", nil)
}

// AddMedicalRecord appends to the pet's medical history.
func (h *PetHandler) AddMedicalRecord(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	var req MedicalRecordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	pet, err := h.petUC.AddMedicalRecord(c.Request().Context(), actor, id, usecase.MedicalRecordInput{
		Date:         req.Date,
		Condition:    req.Condition,
		Diagnosis:    req.Diagnosis,
		Treatment:    req.Treatment,
		Veterinarian: req.Veterinarian,
		Notes:        req.Notes,
		FollowUpAt:   req.FollowUpAt,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusCreated, "Medical record added", pet)
}

func (h *PetHandler) AddVaccination(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	var req VaccinationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	pet, err := h.petUC.AddVaccination(c.Request().Context(), actor, id, usecase.VaccinationInput{
		Name:         req.Name,
		Date:         req.Date,
		NextDueDate:  req.NextDueDate,
		Veterinarian: req.Veterinarian,
		BatchNumber:  req.BatchNumber,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusCreated, "Vaccination recorded", pet)
}

func (h *PetHandler) OwnershipHistory(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	history, err := h.petUC.OwnershipHistory(c.Request().Context(), actor, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, history)
}

// ListSpecies is the public species and breed lookup.
func (h *PetHandler) ListSpecies(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.petUC.ListSpecies(c.Request().Context()))
}

func (h *PetHandler) ListBreeds(c echo.Context) error {
	breeds, err := h.petUC.ListBreeds(c.Request().Context(), c.Param("species"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, breeds)
}
