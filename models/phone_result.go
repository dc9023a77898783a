// SPDX-License-Identifier: GPL-3.0-only

package models

// Line types reported in PhoneValidationResult.LineType.
const (
	LineTypeMobile           = "mobile"
	LineTypeLandline         = "landline"
	LineTypeLandlineOrMobile = "landline_or_mobile"
	LineTypeTollFree         = "toll_free"
	LineTypePremiumRate      = "premium_rate"
	LineTypeSharedCost       = "shared_cost"
	LineTypeVoIP             = "voip"
	LineTypePersonal         = "personal"
	LineTypePager            = "pager"
	LineTypeUAN              = "uan"
	LineTypeVoicemail        = "voicemail"
	LineTypeUnknown          = "unknown"
)

// PhoneValidationResult is the verdict for a single phone number. Optional fields
// are only set for valid numbers, and carrier/timezones may be missing even then.
type PhoneValidationResult struct {
	Valid bool `json:"valid" example:"true"`
	// E.164 form
	InternationalFormat *string `json:"international_format" example:"+14155552671"`
	// Human-readable region description
	Country *string `json:"country" example:"California"`
	// ISO 3166-1 alpha-2 region
	CountryCode *string `json:"country_code" example:"US"`
	// Same value as LineType
	Type     *string  `json:"type" example:"landline_or_mobile"`
	Carrier  *string  `json:"carrier" example:"Vodafone"`
	LineType *string  `json:"line_type" example:"landline_or_mobile"`
	Timezone []string `json:"timezone" example:"America/Los_Angeles"`
	// 0.0 for invalid numbers, otherwise one of 0.70, 0.85 or 1.00
	ConfidenceScore float64 `json:"confidence_score" example:"0.85"`
}

// InvalidPhoneResult is the result returned for anything that is not a valid number.
func InvalidPhoneResult() *PhoneValidationResult {
	return &PhoneValidationResult{}
}
