package handler

import (
	"log/slog"
	"net/http"

	"regain/internal/delivery/http/middleware"
	"regain/internal/delivery/http/response"
	"regain/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// JournalHandler holds dependencies for journal-related handlers.
type JournalHandler struct {
	uc     usecase.JournalUsecase
	logger *slog.Logger
}

// NewJournalHandler is the constructor for JournalHandler, injected by Fx.
func NewJournalHandler(uc usecase.JournalUsecase, logger *slog.Logger) *JournalHandler {
	return &JournalHandler{
		uc:     uc,
		logger: logger,
	}
}

// AddEntry handles the journal entry creation request.
func (h *JournalHandler) AddEntry(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.AddJournalInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid journal input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	entry, err := h.uc.AddEntry(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, entry, "Journal entry created successfully")
}

// ListEntries returns all of the user's journal entries, newest first.
func (h *JournalHandler) ListEntries(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	entries, err := h.uc.ListEntries(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "Journal entries retrieved successfully")
}
