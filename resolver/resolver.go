// SPDX-License-Identifier: GPL-3.0-only

// Package resolver performs the DNS lookups needed to judge whether an email
// domain can receive mail.
package resolver

import (
	"context"
	"errors"
)

var (
	ErrNXDomain      = errors.New("domain does not exist")
	ErrNoRecords     = errors.New("no records of the requested type")
	ErrNoNameservers = errors.New("no nameservers configured")
	ErrEmptyDomain   = errors.New("domain is empty")
)

type MXRecord struct {
	Host string
	Pref uint16
}

// Resolver is the DNS capability the email validator depends on.
type Resolver interface {
	LookupA(ctx context.Context, domain string) ([]string, error)
	LookupAAAA(ctx context.Context, domain string) ([]string, error)
	LookupMX(ctx context.Context, domain string) ([]MXRecord, error)
}
