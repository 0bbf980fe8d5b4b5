package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Handler struct{ version string }

func NewHandler(version string) *Handler { return &Handler{version: version} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "ok",
		"message": "BuffrLend API is running",
		"time":    time.Now().UTC().Format(time.RFC3339Nano),
		"version": h.version,
	})
}
