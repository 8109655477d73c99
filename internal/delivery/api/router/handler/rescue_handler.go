package handler

import (
	"log/slog"
	"net/http"

	"petwelfare/internal/delivery/api/response"
	"petwelfare/internal/domain/entity"
	"petwelfare/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RescueHandlerParams holds dependencies for RescueHandler, injected by Fx.
type RescueHandlerParams struct {
	fx.In

	RescueUC usecase.RescueUsecase
	Logger   *slog.Logger
}

// RescueHandler serves rescue reports.
type RescueHandler struct {
	rescueUC usecase.RescueUsecase
	logger   *slog.Logger
}

// NewRescueHandler is the constructor for RescueHandler.
func NewRescueHandler(params RescueHandlerParams) *RescueHandler {
	return &RescueHandler{
		rescueUC: params.RescueUC,
		logger:   params.Logger,
	}
}

// GeoPointRequest is a reported location.
type GeoPointRequest struct {
	Latitude  float64 `json:"lat" validate:"latitude"`
	Longitude float64 `json:"lng" validate:"longitude"`
	Address   string  `json:"address"`
}

// RescueReportRequest reports an animal in distress.
type RescueReportRequest struct {
	Species      string          `json:"species" validate:"required"`
	Description  string          `json:"description" validate:"required,max=2000"`
	Urgency      string          `json:"urgency" validate:"omitempty,oneof=low medium high critical"`
	Location     GeoPointRequest `json:"location"`
	Photos       []string        `json:"photos"`
	ContactPhone string          `json:"contactPhone" validate:"omitempty,max=20"`
}

// NearbyRequest is read from the query string.
type NearbyRequest struct {
	Latitude  float64 `query:"lat" validate:"latitude"`
	Longitude float64 `query:"lng" validate:"longitude"`
	RadiusKm  float64 `query:"radiusKm" validate:"min=0"`
}

// AssignRescueRequest assigns a report to a rescuer.
type AssignRescueRequest struct {
	AssigneeID string `json:"assigneeId" validate:"required,uuid"`
}

// RescueStatusRequest moves a report along its lifecycle.
type RescueStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=reported assigned in_progress rescued closed false_alarm"`
	Note   string `json:"note" validate:"max=1000"`
}

// NoteRequest appends a note.
type NoteRequest struct {
	Text string `json:"text" validate:"required,max=1000"`
}

// CreateReport files a rescue report for the caller.
func (h *RescueHandler) CreateReport(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	var req RescueReportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	urgency := entity.RescueUrgency(req.Urgency)
	if urgency == "" {
		urgency = entity.UrgencyMedium
	}

	report, err := h.rescueUC.CreateReport(c.Request().Context(), actor, usecase.RescueReportInput{
		Species:     req.Species,
		Description: req.Description,
		Urgency:     urgency,
		Location: entity.GeoPoint{
			Latitude:  req.Location.Latitude,
			Longitude: req.Location.Longitude,
			Address:   req.Location.Address,
		},
		Photos:       req.Photos,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusCreated, "Rescue report submitted", report)
}

// ListMyReports lists reports filed by the caller.
func (h *RescueHandler) ListMyReports(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	list, err := h.rescueUC.ListMyReports(c.Request().Context(), actor, pageQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// ListReports lists reports with status, urgency, species and assignee filters.
func (h *RescueHandler) ListReports(c echo.Context) error {
	filter := entity.RescueFilter{
		Status:  entity.RescueStatus(c.QueryParam("status")),
		Urgency: entity.RescueUrgency(c.QueryParam("urgency")),
		Species: c.QueryParam("species"),
	}
	if assignee, ok := optionalUUIDQuery(c, "assignedTo"); ok {
		filter.AssignedTo = &assignee
	}

	list, err := h.rescueUC.ListReports(c.Request().Context(), filter, pageQuery(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// GetReport returns one report.
func (h *RescueHandler) GetReport(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	report, err := h.rescueUC.GetReport(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

// Nearby lists open reports around ?lat&lng, closest first.
func (h *RescueHandler) Nearby(c echo.Context) error {
	var req NearbyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	list, err := h.rescueUC.Nearby(c.Request().Context(), usecase.NearbyQuery{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		RadiusKm:  req.RadiusKm,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// AssignReport assigns a report to a rescuer.
func (h *RescueHandler) AssignReport(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	var req AssignRescueRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	report, err := h.rescueUC.AssignReport(c.Request().Context(), actor, id, mustParseUUID(req.AssigneeID))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Report assigned", report)
}

// UpdateStatus moves a report to a new status.
func (h *RescueHandler) UpdateStatus(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	var req RescueStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	report, err := h.rescueUC.UpdateStatus(c.Request().Context(), actor, id, entity.RescueStatus(req.Status), req.Note)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Report updated", report)
}

// AddNote appends a note to a report.
func (h *RescueHandler) AddNote(c echo.Context) error {
	actor, id, ok, err := actorAndID(c)
	if !ok {
		return err
	}

	var req NoteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	report, err := h.rescueUC.AddNote(c.Request().Context(), actor, id, req.Text)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}
