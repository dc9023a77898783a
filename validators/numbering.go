// SPDX-License-Identifier: GPL-3.0-only

package validators

import (
	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// NumberingPlan is the phone metadata capability the phone validator depends on.
type NumberingPlan interface {
	Parse(raw, region string) (*phonenumbers.PhoneNumber, error)
	IsValid(num *phonenumbers.PhoneNumber) bool
	FormatE164(num *phonenumbers.PhoneNumber) string
	RegionCode(num *phonenumbers.PhoneNumber) string
	Describe(num *phonenumbers.PhoneNumber, locale string) (string, error)
	NumberType(num *phonenumbers.PhoneNumber) phonenumbers.PhoneNumberType
	Carrier(num *phonenumbers.PhoneNumber, locale string) (string, error)
	Timezones(num *phonenumbers.PhoneNumber) ([]string, error)
}

// LibPhoneNumberPlan answers NumberingPlan queries from the metadata bundled
// with github.com/nyaruka/phonenumbers.
type LibPhoneNumberPlan struct{}

func (LibPhoneNumberPlan) Parse(raw, region string) (*phonenumbers.PhoneNumber, error) {
	return phonenumbers.Parse(raw, region)
}

func (LibPhoneNumberPlan) IsValid(num *phonenumbers.PhoneNumber) bool {
	return phonenumbers.IsValidNumber(num)
}

func (LibPhoneNumberPlan) FormatE164(num *phonenumbers.PhoneNumber) string {
	return phonenumbers.Format(num, phonenumbers.E164)
}

func (LibPhoneNumberPlan) RegionCode(num *phonenumbers.PhoneNumber) string {
	return phonenumbers.GetRegionCodeForNumber(num)
}

// Describe returns the geocoded area for the number, or the region's display
// name when no finer description exists.
func (LibPhoneNumberPlan) Describe(num *phonenumbers.PhoneNumber, locale string) (string, error) {
	desc, err := phonenumbers.GetGeocodingForNumber(num, locale)
	if err == nil && desc != "" {
		return desc, nil
	}
	if name := regionDisplayName(phonenumbers.GetRegionCodeForNumber(num), locale); name != "" {
		return name, nil
	}
	return "", err
}

func (LibPhoneNumberPlan) NumberType(num *phonenumbers.PhoneNumber) phonenumbers.PhoneNumberType {
	return phonenumbers.GetNumberType(num)
}

func (LibPhoneNumberPlan) Carrier(num *phonenumbers.PhoneNumber, locale string) (string, error) {
	return phonenumbers.GetCarrierForNumber(num, locale)
}

func (LibPhoneNumberPlan) Timezones(num *phonenumbers.PhoneNumber) ([]string, error) {
	return phonenumbers.GetTimezonesForNumber(num)
}

// "ZZ" is unknown and "001" covers non-geographic numbering.
func regionDisplayName(regionCode, locale string) string {
	if regionCode == "" || regionCode == "ZZ" || regionCode == "001" {
		return ""
	}
	region, err := language.ParseRegion(regionCode)
	if err != nil {
		return ""
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	namer := display.Regions(tag)
	if namer == nil {
		namer = display.Regions(language.English)
	}
	return namer.Name(region)
}
