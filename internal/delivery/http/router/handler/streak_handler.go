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

// StreakHandler holds dependencies for streak-related handlers.
type StreakHandler struct {
	uc     usecase.StreakUsecase
	logger *slog.Logger
}

// NewStreakHandler is the constructor for StreakHandler, injected by Fx.
func NewStreakHandler(uc usecase.StreakUsecase, logger *slog.Logger) *StreakHandler {
	return &StreakHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetStatus returns the authenticated user's current streak.
func (h *StreakHandler) GetStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	status, err := h.uc.GetStatus(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "Streak retrieved successfully")
}

// Reset ends the current streak and starts a new one.
func (h *StreakHandler) Reset(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	status, err := h.uc.Reset(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "Streak reset successfully")
}
