// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	ServiceName    = "Advanced Email & Phone Validation API"
	ServiceVersion = "1.0.0"
)

var ValidationEndpoints = []string{"/api/validate/email", "/api/validate/phone"}

// RootHandler godoc
// @Summary      Service descriptor
// @Tags         info
// @Produce      json
// @Success      200 {object} ServiceInfoResponse
// @Router       / [get]
func RootHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, ServiceInfoResponse{
		Message:   ServiceName,
		Version:   ServiceVersion,
		Endpoints: ValidationEndpoints,
		Status:    "active",
	})
}

// HealthHandler godoc
// @Summary      Liveness check
// @Tags         info
// @Produce      json
// @Success      200 {object} HealthResponse
// @Router       /api/health [get]
func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Message: "API is running",
	})
}
