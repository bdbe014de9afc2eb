package record

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/totegamma/rowguard/core"
)

const defaultListLimit = 100

// Handler handles record objects
type Handler struct {
	service core.RecordService
}

// NewHandler is for wire.go
func NewHandler(service core.RecordService) Handler {
	return Handler{service: service}
}

// Get is for Handling HTTP Get Method
func (h Handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Record.Handler.Get")
	defer span.End()

	id := c.Param("id")

	record, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.As(err, &core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "error": "record not found"})
		}
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": record})
}

// List is for Handling HTTP Get Method
func (h Handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Record.Handler.List")
	defer span.End()

	limit := defaultListLimit
	if param := c.QueryParam("limit"); param != "" {
		parsed, err := strconv.Atoi(param)
		if err != nil || parsed < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "invalid limit"})
		}
		limit = parsed
	}

	records, err := h.service.List(ctx, limit)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": records})
}

// Post is for Handling HTTP Post Method
func (h Handler) Post(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Record.Handler.Post")
	defer span.End()

	var request map[string]any
	err := c.Bind(&request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error", "error": "invalid request body"})
	}

	created, err := h.service.Create(ctx, request)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": created})
}

// Delete is for Handling HTTP Delete Method
func (h Handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Record.Handler.Delete")
	defer span.End()

	id := c.Param("id")

	err := h.service.Delete(ctx, id)
	if err != nil {
		if errors.As(err, &core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"status": "error", "error": "record not found"})
		}
		if errors.As(err, &core.ErrorPermissionDenied{}) {
			return c.JSON(http.StatusForbidden, echo.Map{"status": "error", "error": "you are not authorized to perform this action"})
		}
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
