// SPDX-License-Identifier: GPL-3.0-only

package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contactcheck-server/handlers"
	"contactcheck-server/validators"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRoutes(t *testing.T) {
	e := echo.New()
	phone := validators.NewPhoneValidator(validators.LibPhoneNumberPlan{}, validators.PhoneConfig{})
	email := validators.NewEmailValidator(nil, nil, nil)
	RegisterRoutes(e, handlers.NewValidationHandler(email, phone))

	registered := map[string]bool{}
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"GET /",
		"GET /api/health",
		"POST /api/validate/email",
		"POST /api/validate/phone",
	} {
		assert.True(t, registered[want], want)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/validate/phone", strings.NewReader(`{"phone":"+14155552671"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"international_format":"+14155552671"`)

	req = httptest.NewRequest(http.MethodGet, "/api/validate/email", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
