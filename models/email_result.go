// SPDX-License-Identifier: GPL-3.0-only

package models

// Check names recorded in EmailValidationResult.Details["checks_performed"].
const (
	CheckFormat     = "format"
	CheckDNS        = "dns"
	CheckMX         = "mx"
	CheckDisposable = "disposable"
	CheckProvider   = "provider"
)

// Keys of EmailValidationResult.Details.
const (
	DetailDomain          = "domain"
	DetailChecks          = "checks_performed"
	DetailNormalizedEmail = "normalized_email"
	DetailValidationError = "validation_error"
)

// EmailValidationResult is the verdict for a single email address.
type EmailValidationResult struct {
	// True only when the format is valid, the domain resolves, MX records exist
	// and the domain is not disposable
	Valid        bool `json:"valid" example:"true"`
	Disposable   bool `json:"disposable" example:"false"`
	DomainExists bool `json:"domain_exists" example:"true"`
	MXFound      bool `json:"mx_found" example:"true"`
	// Canonical provider name when the domain is a well-known mailbox provider
	Provider *string `json:"provider" example:"Gmail"`
	// Reserved for typo suggestions, always null
	Suggestion *string `json:"suggestion"`
	// Heuristic score in [0, 1]
	ConfidenceScore float64        `json:"confidence_score" example:"1"`
	Details         map[string]any `json:"details"`
}

// ChecksPerformed returns the ordered list of checks that ran.
func (r *EmailValidationResult) ChecksPerformed() []string {
	checks, _ := r.Details[DetailChecks].([]string)
	return checks
}

// Domain returns the domain the checks ran against.
func (r *EmailValidationResult) Domain() string {
	domain, _ := r.Details[DetailDomain].(string)
	return domain
}
