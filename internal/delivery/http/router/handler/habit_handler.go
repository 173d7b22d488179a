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

// HabitHandler holds dependencies for habit-related handlers.
type HabitHandler struct {
	uc     usecase.HabitUsecase
	logger *slog.Logger
}

// NewHabitHandler is the constructor for HabitHandler, injected by Fx.
func NewHabitHandler(uc usecase.HabitUsecase, logger *slog.Logger) *HabitHandler {
	return &HabitHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateHabit handles the habit creation request.
func (h *HabitHandler) CreateHabit(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.CreateHabitInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid habit input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	habit, err := h.uc.CreateHabit(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, habit, "Habit created successfully")
}

// ListHabits returns all of the user's habits with monthly progress.
func (h *HabitHandler) ListHabits(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	habits, err := h.uc.ListHabits(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, habits, "Habits retrieved successfully")
}

// ToggleDay flips a habit's completion for a day.
func (h *HabitHandler) ToggleDay(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.ToggleHabitInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid toggle input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	habit, err := h.uc.ToggleDay(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, habit, "Habit updated successfully")
}
