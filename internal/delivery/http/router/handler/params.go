package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// parseIDParam parses a UUID path parameter.
func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}
