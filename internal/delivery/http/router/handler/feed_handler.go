package handler

import (
	"log/slog"
	"net/http"

	"regain/internal/delivery/http/response"
	"regain/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FeedHandler holds dependencies for the community feed handler.
type FeedHandler struct {
	uc     usecase.FeedUsecase
	logger *slog.Logger
}

// NewFeedHandler is the constructor for FeedHandler, injected by Fx.
func NewFeedHandler(uc usecase.FeedUsecase, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetFeed returns the current top community posts.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	posts, err := h.uc.GetFeed(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, posts, "Feed retrieved successfully")
}
