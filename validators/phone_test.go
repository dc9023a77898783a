// SPDX-License-Identifier: GPL-3.0-only

package validators

import (
	"errors"
	"testing"

	"contactcheck-server/commons/mccmnc"
	"contactcheck-server/models"

	"github.com/nyaruka/phonenumbers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertInvalidPhone(t *testing.T, result *models.PhoneValidationResult) {
	t.Helper()
	assert.False(t, result.Valid)
	assert.Nil(t, result.InternationalFormat)
	assert.Nil(t, result.Country)
	assert.Nil(t, result.CountryCode)
	assert.Nil(t, result.Type)
	assert.Nil(t, result.LineType)
	assert.Nil(t, result.Carrier)
	assert.Nil(t, result.Timezone)
	assert.Equal(t, 0.0, result.ConfidenceScore)
}

func TestPhoneValidatorUSNumber(t *testing.T) {
	v := NewPhoneValidator(LibPhoneNumberPlan{}, PhoneConfig{})

	result := v.Validate("+14155552671")

	require.True(t, result.Valid)
	require.NotNil(t, result.InternationalFormat)
	assert.Equal(t, "+14155552671", *result.InternationalFormat)
	require.NotNil(t, result.CountryCode)
	assert.Equal(t, "US", *result.CountryCode)
	require.NotNil(t, result.LineType)
	assert.Contains(t, []string{models.LineTypeMobile, models.LineTypeLandlineOrMobile}, *result.LineType)
	assert.Equal(t, result.LineType, result.Type)
	assert.NotNil(t, result.Country)
	assert.Contains(t, []float64{0.70, 0.85, 1.00}, result.ConfidenceScore)
}

func TestPhoneValidatorNonGeographicNumber(t *testing.T) {
	v := NewPhoneValidator(LibPhoneNumberPlan{}, PhoneConfig{})

	result := v.Validate("+800 1234 5678")

	require.True(t, result.Valid)
	require.NotNil(t, result.CountryCode)
	assert.Equal(t, "001", *result.CountryCode)
	require.NotNil(t, result.LineType)
	assert.Equal(t, models.LineTypeTollFree, *result.LineType)
	require.NotNil(t, result.Country)
	assert.Equal(t, "World", *result.Country)
	assert.Nil(t, result.Carrier)
	assert.InDelta(t, 0.85, result.ConfidenceScore, 1e-9)
}

func TestPhoneValidatorUnparsable(t *testing.T) {
	plan := &fakePlan{}
	v := NewPhoneValidator(plan, PhoneConfig{})

	assertInvalidPhone(t, v.Validate("not-a-number"))
	assert.Equal(t, []string{"", "US", "IT"}, plan.parseRegions)
}

func TestPhoneValidatorFallbackOrder(t *testing.T) {
	t.Run("national number uses first fallback", func(t *testing.T) {
		plan := &fakePlan{}
		result := NewPhoneValidator(plan, PhoneConfig{}).Validate("(415) 555-2671")

		require.True(t, result.Valid)
		assert.Equal(t, "+14155552671", *result.InternationalFormat)
		assert.Equal(t, []string{"", "US"}, plan.parseRegions)
	})

	t.Run("second fallback after first fails", func(t *testing.T) {
		plan := &fakePlan{rejectRegions: map[string]bool{"": true, "US": true}}
		NewPhoneValidator(plan, PhoneConfig{}).Validate("06 6982 0000")
		assert.Equal(t, []string{"", "US", "IT"}, plan.parseRegions)
	})

	t.Run("explicit country code stops at first attempt", func(t *testing.T) {
		plan := &fakePlan{}
		NewPhoneValidator(plan, PhoneConfig{}).Validate("+14155552671")
		assert.Equal(t, []string{""}, plan.parseRegions)
	})

	t.Run("configured regions", func(t *testing.T) {
		plan := &fakePlan{}
		NewPhoneValidator(plan, PhoneConfig{FallbackRegions: []string{" gb", "", "de"}}).Validate("abc")
		assert.Equal(t, []string{"", "GB", "DE"}, plan.parseRegions)
	})
}

func TestPhoneValidatorImplausibleNumber(t *testing.T) {
	plan := &fakePlan{carrier: "Should Not Appear", description: "Nowhere"}
	v := NewPhoneValidator(plan, PhoneConfig{})

	// NANP area codes never start with 0.
	assertInvalidPhone(t, v.Validate("+10995550100"))
}

func TestPhoneValidatorEnrichmentScores(t *testing.T) {
	mobile := numberType(phonenumbers.MOBILE)

	tests := []struct {
		name    string
		plan    *fakePlan
		score   float64
		country bool
		carrier bool
	}{
		{"all metadata", &fakePlan{numberType: mobile, carrier: "Verizon", description: "San Francisco, CA"}, 1.00, true, true},
		{"no carrier", &fakePlan{numberType: mobile, description: "San Francisco, CA"}, 0.85, true, false},
		{"no description", &fakePlan{numberType: mobile, carrier: "Verizon"}, 0.85, false, true},
		{"nothing", &fakePlan{numberType: mobile}, 0.70, false, false},
		{"lookup errors", &fakePlan{numberType: mobile, carrierErr: errors.New("boom"), descErr: errors.New("boom")}, 0.70, false, false},
		{"carrier ignored for landlines", &fakePlan{numberType: numberType(phonenumbers.FIXED_LINE), carrier: "Verizon", description: "California"}, 0.85, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewPhoneValidator(tt.plan, PhoneConfig{}).Validate("+14155552671")

			require.True(t, result.Valid)
			assert.Equal(t, tt.score, result.ConfidenceScore)
			assert.Equal(t, tt.country, result.Country != nil)
			assert.Equal(t, tt.carrier, result.Carrier != nil)
			assert.Equal(t, "US", *result.CountryCode)
		})
	}
}

func TestPhoneValidatorLineTypes(t *testing.T) {
	for typ, name := range lineTypes {
		plan := &fakePlan{numberType: numberType(typ)}
		result := NewPhoneValidator(plan, PhoneConfig{}).Validate("+14155552671")
		require.True(t, result.Valid)
		assert.Equal(t, name, *result.LineType)
		assert.Equal(t, name, *result.Type)
	}
	assert.Equal(t, models.LineTypeUnknown, LineTypeName(phonenumbers.PhoneNumberType(99)))
}

func TestPhoneValidatorCarrierIndexFallback(t *testing.T) {
	idx := mccmnc.BuildIndex([]mccmnc.Entry{
		{Prefix: 1, Network: "North America"},
		{Prefix: 1415, Network: "Bay Area Mobile", MCCMNC: 310999},
	})

	plan := &fakePlan{numberType: numberType(phonenumbers.MOBILE), description: "San Francisco, CA"}
	result := NewPhoneValidator(plan, PhoneConfig{Carriers: idx}).Validate("+14155552671")

	require.NotNil(t, result.Carrier)
	assert.Equal(t, "Bay Area Mobile", *result.Carrier)
	assert.Equal(t, 1.0, result.ConfidenceScore)

	plan.carrier = "Verizon"
	result = NewPhoneValidator(plan, PhoneConfig{Carriers: idx}).Validate("+14155552671")
	assert.Equal(t, "Verizon", *result.Carrier)
}

func TestPhoneValidatorTimezones(t *testing.T) {
	tests := []struct {
		name  string
		plan  *fakePlan
		zones []string
	}{
		{"known", &fakePlan{timezones: []string{"America/Los_Angeles"}}, []string{"America/Los_Angeles"}},
		{"unknown only", &fakePlan{timezones: []string{"Etc/Unknown"}}, nil},
		{"error", &fakePlan{tzErr: errors.New("no data")}, nil},
		{"none", &fakePlan{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewPhoneValidator(tt.plan, PhoneConfig{}).Validate("+14155552671")
			require.True(t, result.Valid)
			assert.Equal(t, tt.zones, result.Timezone)
		})
	}
}

func TestPhoneValidatorExampleNumbers(t *testing.T) {
	v := NewPhoneValidator(LibPhoneNumberPlan{}, PhoneConfig{})

	for _, region := range []string{"US", "GB", "IT", "DE", "FR", "JP", "BR", "IN", "AU", "NG"} {
		for _, typ := range []phonenumbers.PhoneNumberType{phonenumbers.FIXED_LINE, phonenumbers.MOBILE} {
			example := phonenumbers.GetExampleNumberForType(region, typ)
			if example == nil {
				continue
			}
			e164 := phonenumbers.Format(example, phonenumbers.E164)

			t.Run(e164, func(t *testing.T) {
				first := v.Validate(e164)
				require.True(t, first.Valid)
				assert.Equal(t, e164, *first.InternationalFormat)
				assert.Equal(t, region, *first.CountryCode)
				assert.Contains(t, []float64{0.70, 0.85, 1.00}, first.ConfidenceScore)

				second := v.Validate(*first.InternationalFormat)
				require.True(t, second.Valid)
				assert.Equal(t, *first.InternationalFormat, *second.InternationalFormat)
			})
		}
	}
}
