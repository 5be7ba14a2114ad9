package handlers

import (
	_ "embed"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed landing.html
var landing string

// RootHandler responds a landing page with a usage hint.
func RootHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.HTML(http.StatusOK, landing)
	}
}

type HealthStatus struct {
	Status string `json:"status"`
}

func HealthHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthStatus{Status: "ok"})
	}
}

// FaviconHandler responds nothing, to silence 404s from browsers.
func FaviconHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}
}
