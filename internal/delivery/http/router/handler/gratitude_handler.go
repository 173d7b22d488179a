package handler

import (
	"log/slog"
	"net/http"

	"regain/internal/delivery/http/middleware"
	"regain/internal/delivery/http/response"
	"regain/internal/domain/entity"
	"regain/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GratitudeHandler holds dependencies for gratitude-related handlers.
type GratitudeHandler struct {
	uc     usecase.GratitudeUsecase
	logger *slog.Logger
}

// NewGratitudeHandler is the constructor for GratitudeHandler, injected by Fx.
func NewGratitudeHandler(uc usecase.GratitudeUsecase, logger *slog.Logger) *GratitudeHandler {
	return &GratitudeHandler{
		uc:     uc,
		logger: logger,
	}
}

// AddEntry handles the gratitude entry creation request.
func (h *GratitudeHandler) AddEntry(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.AddGratitudeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid gratitude input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	entry, err := h.uc.AddEntry(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, entry, "Gratitude entry created successfully")
}

// ListEntries returns today's entries by default, or recent history with
// ?mode=history.
func (h *GratitudeHandler) ListEntries(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var (
		entries []*entity.GratitudeEntry
		err     error
	)
	if c.QueryParam("mode") == "history" {
		entries, err = h.uc.ListHistory(c.Request().Context(), userID)
	} else {
		entries, err = h.uc.ListToday(c.Request().Context(), userID)
	}
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "Gratitude entries retrieved successfully")
}

// ToggleChecked flips the checked flag of the entry named in the body.
func (h *GratitudeHandler) ToggleChecked(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.ToggleGratitudeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid toggle input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	entry, err := h.uc.ToggleChecked(c.Request().Context(), userID, input.EntryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entry, "Gratitude entry updated successfully")
}

// DeleteEntry removes the entry named by the id query parameter.
func (h *GratitudeHandler) DeleteEntry(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	entryID, err := uuid.Parse(c.QueryParam("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid entry ID")
	}

	if err := h.uc.DeleteEntry(c.Request().Context(), userID, entryID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Entry deleted"}, "Gratitude entry deleted successfully")
}
