// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"regain/internal/delivery/http/middleware"
	"regain/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers wired into the router, injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	StreakHandler     *handler.StreakHandler
	HabitHandler      *handler.HabitHandler
	GratitudeHandler  *handler.GratitudeHandler
	JournalHandler    *handler.JournalHandler
	MeditationHandler *handler.MeditationHandler
	FeedHandler       *handler.FeedHandler
	DeviceHandler     *handler.DeviceHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	streakHandler     *handler.StreakHandler
	habitHandler      *handler.HabitHandler
	gratitudeHandler  *handler.GratitudeHandler
	journalHandler    *handler.JournalHandler
	meditationHandler *handler.MeditationHandler
	feedHandler       *handler.FeedHandler
	deviceHandler     *handler.DeviceHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		streakHandler:     params.StreakHandler,
		habitHandler:      params.HabitHandler,
		gratitudeHandler:  params.GratitudeHandler,
		journalHandler:    params.JournalHandler,
		meditationHandler: params.MeditationHandler,
		feedHandler:       params.FeedHandler,
		deviceHandler:     params.DeviceHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.RegisterUser)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Session management requires a valid access token.
	sessionGroup := e.Group("/auth/sessions")
	sessionGroup.Use(r.authMiddleware.Authenticate)
	{
		sessionGroup.GET("", r.userHandler.GetSessions)
		sessionGroup.DELETE("/:id", r.userHandler.RevokeSession)
		sessionGroup.DELETE("", r.userHandler.RevokeAllSessions)
	}

	// All tracker routes require authentication.
	apiGroup := e.Group("/api")
	apiGroup.Use(r.authMiddleware.Authenticate)
	{
		apiGroup.GET("/streak", r.streakHandler.GetStatus)
		apiGroup.POST("/streak", r.streakHandler.Reset)

		apiGroup.GET("/habits", r.habitHandler.ListHabits)
		apiGroup.POST("/habits", r.habitHandler.CreateHabit)
		apiGroup.PUT("/habits", r.habitHandler.ToggleDay)

		apiGroup.GET("/gratitude", r.gratitudeHandler.ListEntries)
		apiGroup.POST("/gratitude", r.gratitudeHandler.AddEntry)
		apiGroup.PUT("/gratitude", r.gratitudeHandler.ToggleChecked)
		apiGroup.DELETE("/gratitude", r.gratitudeHandler.DeleteEntry)

		apiGroup.GET("/journal", r.journalHandler.ListEntries)
		apiGroup.POST("/journal", r.journalHandler.AddEntry)

		apiGroup.GET("/meditation", r.meditationHandler.ListRecent)
		apiGroup.POST("/meditation", r.meditationHandler.LogSession)

		apiGroup.GET("/feed", r.feedHandler.GetFeed)

		apiGroup.GET("/devices", r.deviceHandler.GetUserDevices)
		apiGroup.POST("/devices", r.deviceHandler.RegisterDevice)
		apiGroup.DELETE("/devices/:id", r.deviceHandler.DeactivateDevice)
	}
}
