// SPDX-License-Identifier: GPL-3.0-only

package validators

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"contactcheck-server/models"
	"contactcheck-server/refdata"
	"contactcheck-server/resolver"
)

// Domains like "x7k2q9w1ab.com" are usually generated by throwaway services.
var generatedDomainPattern = regexp.MustCompile(`^[a-z0-9]{10,}\.com$`)

const minPlausibleDomainLength = 4

// Confidence points, in tenths.
const (
	emailPointsFormat        = 4
	emailPointsDomainExists  = 2
	emailPointsMXFound       = 2
	emailPointsNotDisposable = 1
	emailPointsProvider      = 1
)

type EmailValidator struct {
	resolver resolver.Resolver
	tables   *refdata.Tables
	logger   Logger
}

func NewEmailValidator(r resolver.Resolver, tables *refdata.Tables, logger Logger) *EmailValidator {
	if tables == nil {
		tables = refdata.Default()
	}
	return &EmailValidator{
		resolver: r,
		tables:   tables,
		logger:   loggerOrNop(logger),
	}
}

// Validate runs every check against raw. Failures, including DNS errors, are
// reported in the result and never returned.
func (v *EmailValidator) Validate(ctx context.Context, raw string) *models.EmailValidationResult {
	details := map[string]any{}
	checks := []string{models.CheckFormat}

	var domain string
	formatValid := false
	parsed, err := ParseAddress(raw)
	if err == nil {
		formatValid = true
		domain = parsed.Domain
		details[models.DetailNormalizedEmail] = parsed.Normalized
	} else {
		if at := strings.LastIndexByte(raw, '@'); at >= 0 {
			domain = raw[at+1:]
		}
		details[models.DetailValidationError] = err.Error()
	}

	var (
		domainExists bool
		mxFound      bool
		disposable   bool
		provider     *string
	)

	if domain != "" {
		checks = append(checks, models.CheckDNS)
		domainExists = v.domainExists(ctx, domain)
	}
	if domainExists {
		checks = append(checks, models.CheckMX)
		mxFound = v.hasMX(ctx, domain)
	}
	if domain != "" {
		checks = append(checks, models.CheckDisposable, models.CheckProvider)
		disposable = v.isDisposable(domain)
		if name, ok := v.tables.Provider(domain); ok {
			provider = strPtr(name)
		}
	}

	details[models.DetailDomain] = domain
	details[models.DetailChecks] = checks

	return &models.EmailValidationResult{
		Valid:           formatValid && domainExists && mxFound && !disposable,
		Disposable:      disposable,
		DomainExists:    domainExists,
		MXFound:         mxFound,
		Provider:        provider,
		Suggestion:      nil,
		ConfidenceScore: emailConfidence(formatValid, domainExists, mxFound, disposable, provider != nil),
		Details:         details,
	}
}

func (v *EmailValidator) domainExists(ctx context.Context, domain string) bool {
	if v.resolver == nil {
		return false
	}
	_, err := v.resolver.LookupA(ctx, domain)
	if err == nil {
		return true
	}
	v.logLookupFailure("A", domain, err)

	_, err = v.resolver.LookupAAAA(ctx, domain)
	if err == nil {
		return true
	}
	v.logLookupFailure("AAAA", domain, err)
	return false
}

func (v *EmailValidator) hasMX(ctx context.Context, domain string) bool {
	if v.resolver == nil {
		return false
	}
	records, err := v.resolver.LookupMX(ctx, domain)
	if err != nil {
		v.logLookupFailure("MX", domain, err)
		return false
	}
	return len(records) > 0
}

func (v *EmailValidator) logLookupFailure(qtype, domain string, err error) {
	if errors.Is(err, resolver.ErrNXDomain) || errors.Is(err, resolver.ErrNoRecords) {
		v.logger.Debugf("No %s records for %s", qtype, domain)
		return
	}
	v.logger.Debugf("%s lookup for %s failed: %v", qtype, domain, err)
}

// isDisposable stops at the first matching signal.
func (v *EmailValidator) isDisposable(domain string) bool {
	switch {
	case v.tables.IsDisposableDomain(domain):
		return true
	case len(domain) < minPlausibleDomainLength:
		return true
	case v.tables.HasSuspiciousTLD(domain):
		return true
	case generatedDomainPattern.MatchString(domain):
		return true
	}
	return false
}

func emailConfidence(formatValid, domainExists, mxFound, disposable, hasProvider bool) float64 {
	points := 0
	if formatValid {
		points += emailPointsFormat
	}
	if domainExists {
		points += emailPointsDomainExists
	}
	if mxFound {
		points += emailPointsMXFound
	}
	if !disposable {
		points += emailPointsNotDisposable
	}
	if hasProvider {
		points += emailPointsProvider
	}
	return float64(points) / 10
}
