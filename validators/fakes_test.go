// SPDX-License-Identifier: GPL-3.0-only

package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"contactcheck-server/resolver"

	"github.com/nyaruka/phonenumbers"
)

// fakeResolver answers from static tables. Domains in failing return a
// resolver error instead of NXDOMAIN.
type fakeResolver struct {
	a       map[string][]string
	aaaa    map[string][]string
	mx      map[string][]resolver.MXRecord
	failing map[string]bool

	mu    sync.Mutex
	calls []string
}

func (f *fakeResolver) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeResolver) lookup(qtype, domain string, table map[string][]string) ([]string, error) {
	f.record(qtype + " " + domain)
	if f.failing[strings.ToLower(domain)] {
		return nil, errors.New("i/o timeout")
	}
	if addrs := table[strings.ToLower(domain)]; len(addrs) > 0 {
		return addrs, nil
	}
	return nil, fmt.Errorf("%w: %s", resolver.ErrNXDomain, domain)
}

func (f *fakeResolver) LookupA(_ context.Context, domain string) ([]string, error) {
	return f.lookup("A", domain, f.a)
}

func (f *fakeResolver) LookupAAAA(_ context.Context, domain string) ([]string, error) {
	return f.lookup("AAAA", domain, f.aaaa)
}

func (f *fakeResolver) LookupMX(_ context.Context, domain string) ([]resolver.MXRecord, error) {
	f.record("MX " + domain)
	if f.failing[strings.ToLower(domain)] {
		return nil, errors.New("i/o timeout")
	}
	if records := f.mx[strings.ToLower(domain)]; len(records) > 0 {
		return records, nil
	}
	return nil, fmt.Errorf("%w: MX %s", resolver.ErrNoRecords, domain)
}

func (f *fakeResolver) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// mailDomain registers a domain with an A and an MX record.
func (f *fakeResolver) mailDomain(domain string) *fakeResolver {
	if f.a == nil {
		f.a = map[string][]string{}
	}
	if f.mx == nil {
		f.mx = map[string][]resolver.MXRecord{}
	}
	f.a[domain] = []string{"192.0.2.10"}
	f.mx[domain] = []resolver.MXRecord{{Host: "mx." + domain, Pref: 10}}
	return f
}

// fakePlan uses the real parser and validity rules but serves enrichment
// lookups from fixed values.
type fakePlan struct {
	LibPhoneNumberPlan

	carrier     string
	carrierErr  error
	description string
	descErr     error
	timezones   []string
	tzErr       error
	numberType  *phonenumbers.PhoneNumberType

	rejectRegions map[string]bool
	parseRegions  []string
}

func (p *fakePlan) Parse(raw, region string) (*phonenumbers.PhoneNumber, error) {
	p.parseRegions = append(p.parseRegions, region)
	if p.rejectRegions[region] {
		return nil, fmt.Errorf("cannot parse %q for region %q", raw, region)
	}
	return p.LibPhoneNumberPlan.Parse(raw, region)
}

func (p *fakePlan) NumberType(num *phonenumbers.PhoneNumber) phonenumbers.PhoneNumberType {
	if p.numberType != nil {
		return *p.numberType
	}
	return p.LibPhoneNumberPlan.NumberType(num)
}

func (p *fakePlan) Describe(*phonenumbers.PhoneNumber, string) (string, error) {
	return p.description, p.descErr
}

func (p *fakePlan) Carrier(*phonenumbers.PhoneNumber, string) (string, error) {
	return p.carrier, p.carrierErr
}

func (p *fakePlan) Timezones(*phonenumbers.PhoneNumber) ([]string, error) {
	return p.timezones, p.tzErr
}

func numberType(t phonenumbers.PhoneNumberType) *phonenumbers.PhoneNumberType {
	return &t
}
