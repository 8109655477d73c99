package handler

import (
	"log/slog"
	"net/http"

	"petwelfare/internal/delivery/api/response"
	"petwelfare/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a device
type RegisterDeviceRequest struct {
	FCMToken string `json:"fcmToken" validate:"required"`
	DeviceID string `json:"deviceId" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android web IOS Android Web"`
}

// UpdateFCMTokenRequest represents the request body for updating FCM token
type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcmToken" validate:"required"`
}

// RegisterDevice handles device registration
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	var req RegisterDeviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	deviceInfo := &usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), actor.UserID, deviceInfo)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// GetUserDevices handles retrieving all user devices
func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// UpdateFCMToken handles updating FCM token for a device
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	deviceID, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	var req UpdateFCMTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return respond(err)
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), actor.UserID, deviceID, req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "FCM token updated successfully", nil)
}

// DeactivateDevice handles deactivating a device
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	deviceID, err := uuidParam(c, "id")
	if err != nil {
		return respond(err)
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), actor.UserID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusOK, "Device deactivated successfully", nil)
}
