// SPDX-License-Identifier: GPL-3.0-only

package routes

import (
	"contactcheck-server/commons"
	"contactcheck-server/handlers"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, h *handlers.ValidationHandler) {
	commons.Logger.Debug("Registering routes")
	e.GET("/", handlers.RootHandler)

	api := e.Group("/api")
	api.GET("/health", handlers.HealthHandler)
	api.POST("/validate/email", h.ValidateEmailHandler)
	api.POST("/validate/phone", h.ValidatePhoneHandler)
	commons.Logger.Info("Routes registered successfully")
}
