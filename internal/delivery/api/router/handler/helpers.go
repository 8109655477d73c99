package handler

import (
	"strconv"
	"time"

	"petwelfare/internal/delivery/api/middleware"
	"petwelfare/internal/delivery/api/response"
	"petwelfare/internal/delivery/api/validator"
	"petwelfare/internal/domain/entity"
	domainerrors "petwelfare/internal/domain/errors"
	"petwelfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// errResponded signals that a helper already wrote the response.
type errResponded struct{ err error }

func (e errResponded) Error() string {
	if e.err == nil {
		return "response written"
	}

	return e.err.Error()
}

func (e errResponded) Unwrap() error { return e.err }

// respond turns a helper failure into the handler's return value.
func respond(err error) error {
	if r, ok := err.(errResponded); ok {
		return r.err
	}

	return err
}

func currentActor(c echo.Context) (*usecase.Actor, error) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return nil, errResponded{response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message())}
	}

	return actor, nil
}

// actorAndID resolves the caller and the :id parameter. When ok is false the
// response has been written and err is the handler's return value.
func actorAndID(c echo.Context) (*usecase.Actor, uuid.UUID, bool, error) {
	actor, err := currentActor(c)
	if err != nil {
		return nil, uuid.Nil, false, respond(err)
	}

	id, err := uuidParam(c, "id")
	if err != nil {
		return nil, uuid.Nil, false, respond(err)
	}

	return actor, id, true, nil
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errResponded{response.BadRequest(c, domainerrors.ErrInvalidID.ErrorCode(), "Invalid "+name)}
	}

	return id, nil
}

// mustParseUUID parses a value already checked by the "uuid" validation tag.
func mustParseUUID(raw string) uuid.UUID {
	id, _ := uuid.Parse(raw)

	return id
}

func optionalUUIDQuery(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.QueryParam(name))

	return id, err == nil
}

// bindAndValidate binds the request into req and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errResponded{response.BadRequest(c, "INVALID_INPUT", "Malformed request body")}
	}

	if err := c.Validate(req); err != nil {
		return errResponded{response.BadRequestWithDetails(c,
			domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(), validator.FieldErrors(err))}
	}

	return nil
}

func pageQuery(c echo.Context) entity.PageRequest {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	return entity.PageRequest{Page: page, Limit: limit}.Normalize()
}

func boolQuery(c echo.Context, name string) *bool {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}

	return &v
}

func floatQuery(c echo.Context, name string) float64 {
	v, _ := strconv.ParseFloat(c.QueryParam(name), 64)

	return v
}

// dateQuery parses a yyyy-mm-dd query parameter; empty or malformed values are nil.
func dateQuery(c echo.Context, name string) *time.Time {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}

	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil
	}

	return &t
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}

	return *v
}
