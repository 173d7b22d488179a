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

// MeditationHandler holds dependencies for meditation-related handlers.
type MeditationHandler struct {
	uc     usecase.MeditationUsecase
	logger *slog.Logger
}

// NewMeditationHandler is the constructor for MeditationHandler, injected by Fx.
func NewMeditationHandler(uc usecase.MeditationUsecase, logger *slog.Logger) *MeditationHandler {
	return &MeditationHandler{
		uc:     uc,
		logger: logger,
	}
}

// LogSession records a completed meditation session.
func (h *MeditationHandler) LogSession(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.LogMeditationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meditation input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	session, err := h.uc.LogSession(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, session, "Meditation session logged successfully")
}

// ListRecent returns the user's most recent meditation sessions.
func (h *MeditationHandler) ListRecent(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	sessions, err := h.uc.ListRecent(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessions, "Meditation sessions retrieved successfully")
}
