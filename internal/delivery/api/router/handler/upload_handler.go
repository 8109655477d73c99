package handler

import (
	"log/slog"
	"net/http"

	"petwelfare/internal/delivery/api/response"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	UploadUC usecase.UploadUsecase
	Logger   *slog.Logger
}

// UploadHandler accepts multipart file uploads.
type UploadHandler struct {
	uploadUC usecase.UploadUsecase
	logger   *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler.
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		uploadUC: params.UploadUC,
		logger:   params.Logger,
	}
}

// Upload stores the multipart "file" field under the :module folder.
func (h *UploadHandler) Upload(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return respond(err)
	}

	header, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "A file must be sent in the \"file\" field")
	}

	src, err := header.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Uploaded file cannot be read")
	}
	defer src.Close()

	stored, err := h.uploadUC.Upload(c.Request().Context(), actor, c.Param("module"), usecase.UploadInput{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Body:        src,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessMessage(c, http.StatusCreated, "File uploaded", stored)
}
