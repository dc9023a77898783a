// SPDX-License-Identifier: GPL-3.0-only

// Package refdata holds the read-only lookup tables used by the email validator.
// Tables are built once at startup and shared by every request.
package refdata

import (
	"sort"
	"strings"
)

var defaultDisposableDomains = []string{
	"10minutemail.com",
	"guerrillamail.com",
	"mailinator.com",
	"tempmail.org",
	"temp-mail.org",
	"throwaway.email",
	"maildrop.cc",
	"yopmail.com",
	"mailnesia.com",
	"mintemail.com",
	"mohmal.com",
	"dispostable.com",
}

var defaultProviders = map[string]string{
	"gmail.com":      "Gmail",
	"googlemail.com": "Gmail",
	"outlook.com":    "Outlook",
	"hotmail.com":    "Hotmail",
	"live.com":       "Microsoft Live",
	"yahoo.com":      "Yahoo",
	"yahoo.it":       "Yahoo Italy",
	"yahoo.co.uk":    "Yahoo UK",
	"protonmail.com": "ProtonMail",
	"icloud.com":     "iCloud",
	"me.com":         "iCloud",
	"mac.com":        "iCloud",
	"libero.it":      "Libero",
	"tiscali.it":     "Tiscali",
	"alice.it":       "Alice",
	"virgilio.it":    "Virgilio",
	"tin.it":         "TIN",
}

var defaultSuspiciousTLDs = []string{
	".tk", ".ml", ".ga", ".cf", ".top", ".click", ".download", ".win",
}

// Tables is immutable after construction.
type Tables struct {
	disposable     map[string]struct{}
	providers      map[string]string
	suspiciousTLDs []string
}

// Default returns the built-in tables.
func Default() *Tables {
	return New(defaultDisposableDomains, defaultProviders, defaultSuspiciousTLDs)
}

// New copies its inputs, lower-casing domains and normalising TLDs to a leading dot.
func New(disposable []string, providers map[string]string, suspiciousTLDs []string) *Tables {
	t := &Tables{
		disposable: make(map[string]struct{}, len(disposable)),
		providers:  make(map[string]string, len(providers)),
	}
	for _, d := range disposable {
		if d = normalizeDomain(d); d != "" {
			t.disposable[d] = struct{}{}
		}
	}
	for d, name := range providers {
		if d = normalizeDomain(d); d != "" && name != "" {
			t.providers[d] = name
		}
	}
	seen := make(map[string]bool, len(suspiciousTLDs))
	for _, tld := range suspiciousTLDs {
		tld = normalizeDomain(tld)
		if tld == "" {
			continue
		}
		if !strings.HasPrefix(tld, ".") {
			tld = "." + tld
		}
		if !seen[tld] {
			seen[tld] = true
			t.suspiciousTLDs = append(t.suspiciousTLDs, tld)
		}
	}
	sort.Strings(t.suspiciousTLDs)
	return t
}

func normalizeDomain(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (t *Tables) IsDisposableDomain(domain string) bool {
	_, ok := t.disposable[strings.ToLower(domain)]
	return ok
}

// Provider returns the human-readable provider name for a domain, if known.
func (t *Tables) Provider(domain string) (string, bool) {
	name, ok := t.providers[strings.ToLower(domain)]
	return name, ok
}

func (t *Tables) HasSuspiciousTLD(domain string) bool {
	domain = strings.ToLower(domain)
	for _, tld := range t.suspiciousTLDs {
		if strings.HasSuffix(domain, tld) {
			return true
		}
	}
	return false
}

func (t *Tables) DisposableCount() int { return len(t.disposable) }

func (t *Tables) ProviderCount() int { return len(t.providers) }

func (t *Tables) SuspiciousTLDs() []string {
	return append([]string(nil), t.suspiciousTLDs...)
}
