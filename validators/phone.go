// SPDX-License-Identifier: GPL-3.0-only

package validators

import (
	"strings"

	"contactcheck-server/commons/mccmnc"
	"contactcheck-server/models"

	"github.com/nyaruka/phonenumbers"
)

const unknownTimezone = "Etc/Unknown"

var DefaultFallbackRegions = []string{"US", "IT"}

// Confidence points, in hundredths.
const (
	phonePointsValid   = 70
	phonePointsCarrier = 15
	phonePointsCountry = 15
)

var lineTypes = map[phonenumbers.PhoneNumberType]string{
	phonenumbers.MOBILE:               models.LineTypeMobile,
	phonenumbers.FIXED_LINE:           models.LineTypeLandline,
	phonenumbers.FIXED_LINE_OR_MOBILE: models.LineTypeLandlineOrMobile,
	phonenumbers.TOLL_FREE:            models.LineTypeTollFree,
	phonenumbers.PREMIUM_RATE:         models.LineTypePremiumRate,
	phonenumbers.SHARED_COST:          models.LineTypeSharedCost,
	phonenumbers.VOIP:                 models.LineTypeVoIP,
	phonenumbers.PERSONAL_NUMBER:      models.LineTypePersonal,
	phonenumbers.PAGER:                models.LineTypePager,
	phonenumbers.UAN:                  models.LineTypeUAN,
	phonenumbers.VOICEMAIL:            models.LineTypeVoicemail,
	phonenumbers.UNKNOWN:              models.LineTypeUnknown,
}

func LineTypeName(t phonenumbers.PhoneNumberType) string {
	if name, ok := lineTypes[t]; ok {
		return name
	}
	return models.LineTypeUnknown
}

type PhoneConfig struct {
	// Regions assumed, in order, when raw has no country calling code.
	FallbackRegions []string
	// Language for carrier and region descriptions.
	Locale string
	// Consulted when the numbering plan has no carrier for a number.
	Carriers *mccmnc.LookupIndex
	Logger   Logger
}

type PhoneValidator struct {
	plan         NumberingPlan
	parseRegions []string
	locale       string
	carriers     *mccmnc.LookupIndex
	logger       Logger
}

func NewPhoneValidator(plan NumberingPlan, cfg PhoneConfig) *PhoneValidator {
	if plan == nil {
		plan = LibPhoneNumberPlan{}
	}
	fallback := cfg.FallbackRegions
	if len(fallback) == 0 {
		fallback = DefaultFallbackRegions
	}

	// The empty region only succeeds for numbers written with a leading '+'.
	regions := []string{""}
	for _, r := range fallback {
		if r = strings.ToUpper(strings.TrimSpace(r)); r != "" {
			regions = append(regions, r)
		}
	}

	locale := cfg.Locale
	if locale == "" {
		locale = "en"
	}

	return &PhoneValidator{
		plan:         plan,
		parseRegions: regions,
		locale:       locale,
		carriers:     cfg.Carriers,
		logger:       loggerOrNop(cfg.Logger),
	}
}

// Validate parses and enriches raw. Unparsable or implausible numbers yield an
// invalid result with every optional field empty.
func (v *PhoneValidator) Validate(raw string) *models.PhoneValidationResult {
	num, err := v.parse(raw)
	if err != nil {
		v.logger.Debugf("Failed to parse phone number '%s': %v", raw, err)
		return models.InvalidPhoneResult()
	}
	if !v.plan.IsValid(num) {
		v.logger.Debugf("Phone number '%s' is not valid for its numbering plan", raw)
		return models.InvalidPhoneResult()
	}

	e164 := v.plan.FormatE164(num)
	lineType := LineTypeName(v.plan.NumberType(num))

	country, err := v.plan.Describe(num, v.locale)
	if err != nil {
		v.logger.Debugf("No region description for %s: %v", e164, err)
	}
	carrier := v.carrierFor(num, e164)
	timezones := v.timezonesFor(num, e164)

	result := &models.PhoneValidationResult{
		Valid:               true,
		InternationalFormat: strPtr(e164),
		Type:                strPtr(lineType),
		LineType:            strPtr(lineType),
		Timezone:            timezones,
		ConfidenceScore:     phoneConfidence(true, carrier != "", country != ""),
	}
	if country != "" {
		result.Country = strPtr(country)
	}
	if region := v.plan.RegionCode(num); region != "" && region != "ZZ" {
		result.CountryCode = strPtr(region)
	}
	if carrier != "" {
		result.Carrier = strPtr(carrier)
	}
	return result
}

func (v *PhoneValidator) parse(raw string) (*phonenumbers.PhoneNumber, error) {
	var lastErr error
	for _, region := range v.parseRegions {
		num, err := v.plan.Parse(raw, region)
		if err == nil {
			return num, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// carrierFor only answers for mobile-capable ranges, where carrier data
// describes the original allocation.
func (v *PhoneValidator) carrierFor(num *phonenumbers.PhoneNumber, e164 string) string {
	switch v.plan.NumberType(num) {
	case phonenumbers.MOBILE, phonenumbers.FIXED_LINE_OR_MOBILE, phonenumbers.PAGER:
	default:
		return ""
	}

	name, err := v.plan.Carrier(num, v.locale)
	if err != nil {
		v.logger.Debugf("Carrier lookup failed for %s: %v", e164, err)
	}
	if name != "" {
		return name
	}
	if entry, ok := v.carriers.LookupLongestPrefix(e164); ok {
		return entry.Network
	}
	return ""
}

func (v *PhoneValidator) timezonesFor(num *phonenumbers.PhoneNumber, e164 string) []string {
	zones, err := v.plan.Timezones(num)
	if err != nil {
		v.logger.Debugf("Timezone lookup failed for %s: %v", e164, err)
		return nil
	}
	var known []string
	for _, z := range zones {
		if z != "" && z != unknownTimezone {
			known = append(known, z)
		}
	}
	return known
}

func phoneConfidence(valid, hasCarrier, hasCountry bool) float64 {
	points := 0
	if valid {
		points += phonePointsValid
	}
	if hasCarrier {
		points += phonePointsCarrier
	}
	if hasCountry {
		points += phonePointsCountry
	}
	return float64(points) / 100
}
