// SPDX-License-Identifier: GPL-3.0-only

package handlers

// swagger:model EmailValidationRequest
type EmailValidationRequest struct {
	// Email address to validate
	// required: true
	Email *string `json:"email" example:"user@example.com"`
}

// swagger:model PhoneValidationRequest
type PhoneValidationRequest struct {
	// Phone number to validate, with or without country calling code
	// required: true
	Phone *string `json:"phone" example:"+14155552671"`
}

// swagger:model ServiceInfoResponse
type ServiceInfoResponse struct {
	// Service name
	Message string `json:"message" example:"Advanced Email & Phone Validation API"`
	// Service version
	Version string `json:"version" example:"1.0.0"`
	// Validation endpoints
	Endpoints []string `json:"endpoints"`
	Status    string   `json:"status" example:"active"`
}

// swagger:model HealthResponse
type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message" example:"API is running"`
}
