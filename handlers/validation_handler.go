// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"context"
	"net/http"

	"contactcheck-server/models"

	"github.com/labstack/echo/v4"
)

type EmailEngine interface {
	Validate(ctx context.Context, raw string) *models.EmailValidationResult
}

type PhoneEngine interface {
	Validate(raw string) *models.PhoneValidationResult
}

// ValidationHandler adapts the validation engines to HTTP.
type ValidationHandler struct {
	Email EmailEngine
	Phone PhoneEngine
}

func NewValidationHandler(email EmailEngine, phone PhoneEngine) *ValidationHandler {
	return &ValidationHandler{Email: email, Phone: phone}
}

func internalValidationError() *echo.HTTPError {
	return &echo.HTTPError{
		Code:    http.StatusInternalServerError,
		Message: "Internal validation error",
	}
}

// ValidateEmailHandler godoc
// @Summary      Validate an email address
// @Description  Checks RFC format, domain existence (DNS), MX records, disposable domains and known providers.
// @Tags         validation
// @Accept       json
// @Produce      json
// @Param        emailValidationRequest  body  EmailValidationRequest  true  "Email validation request payload"
// @Success      200 {object} models.EmailValidationResult "Validation verdict"
// @Failure      400 {object} echo.HTTPError     "Bad request, missing email field"
// @Failure      500 {object} echo.HTTPError     "Internal validation error"
// @Router       /api/validate/email [post]
func (h *ValidationHandler) ValidateEmailHandler(c echo.Context) error {
	logger := c.Logger()

	var req EmailValidationRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid email validation request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}
	if req.Email == nil {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "email field is required",
		}
	}

	ctx := c.Request().Context()
	result, err := guard(logger, "Email", func() *models.EmailValidationResult {
		return h.Email.Validate(ctx, *req.Email)
	})
	if err != nil {
		return err
	}

	logger.Debugf("Email validation finished: domain=%s valid=%t score=%.2f", result.Domain(), result.Valid, result.ConfidenceScore)
	return c.JSON(http.StatusOK, result)
}

// ValidatePhoneHandler godoc
// @Summary      Validate a phone number
// @Description  Parses the number, checks it against its numbering plan and returns E.164 form, region, line type, carrier and timezones.
// @Tags         validation
// @Accept       json
// @Produce      json
// @Param        phoneValidationRequest  body  PhoneValidationRequest  true  "Phone validation request payload"
// @Success      200 {object} models.PhoneValidationResult "Validation verdict"
// @Failure      400 {object} echo.HTTPError     "Bad request, missing phone field"
// @Failure      500 {object} echo.HTTPError     "Internal validation error"
// @Router       /api/validate/phone [post]
func (h *ValidationHandler) ValidatePhoneHandler(c echo.Context) error {
	logger := c.Logger()

	var req PhoneValidationRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid phone validation request payload:", err)
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid request payload, please ensure it is well-formed and has content-type application/json header",
		}
	}
	if req.Phone == nil {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "phone field is required",
		}
	}

	result, err := guard(logger, "Phone", func() *models.PhoneValidationResult {
		return h.Phone.Validate(*req.Phone)
	})
	if err != nil {
		return err
	}

	logger.Debugf("Phone validation finished: valid=%t score=%.2f", result.Valid, result.ConfidenceScore)
	return c.JSON(http.StatusOK, result)
}

// guard turns a panic or a missing result inside an engine into a generic
// 500 so no partial result is ever written.
func guard[T any](logger echo.Logger, kind string, validate func() *T) (result *T, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("%s validation error: %v", kind, r)
			result, err = nil, internalValidationError()
		}
	}()

	result = validate()
	if result == nil {
		logger.Errorf("%s validation error: engine returned no result", kind)
		return nil, internalValidationError()
	}
	return result, nil
}
