// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"contactcheck-server/refdata"
	"contactcheck-server/resolver"
	"contactcheck-server/validators"
)

type Config struct {
	Email      string
	Phone      string
	DNSServers string
	DNSTimeout time.Duration
	Regions    string
	RefData    string
}

func run(cfg Config) (any, error) {
	switch {
	case cfg.Email != "" && cfg.Phone != "":
		return nil, fmt.Errorf("use either -email or -phone, not both")
	case cfg.Email != "":
		tables, err := refdata.Load(cfg.RefData)
		if err != nil {
			return nil, err
		}
		opts := []resolver.Option{resolver.WithTimeout(cfg.DNSTimeout)}
		if cfg.DNSServers != "" {
			opts = append(opts, resolver.WithServers(strings.Split(cfg.DNSServers, ",")))
		}
		v := validators.NewEmailValidator(resolver.New(opts...), tables, nil)
		return v.Validate(context.Background(), cfg.Email), nil
	case cfg.Phone != "":
		var regions []string
		if cfg.Regions != "" {
			regions = strings.Split(cfg.Regions, ",")
		}
		v := validators.NewPhoneValidator(validators.LibPhoneNumberPlan{}, validators.PhoneConfig{
			FallbackRegions: regions,
		})
		return v.Validate(cfg.Phone), nil
	default:
		return nil, fmt.Errorf("one of -email or -phone is required")
	}
}

func main() {
	cfg := Config{}
	flag.StringVar(&cfg.Email, "email", "", "Email address to validate")
	flag.StringVar(&cfg.Phone, "phone", "", "Phone number to validate")
	flag.StringVar(&cfg.DNSServers, "dns", "", "Comma separated DNS servers (default: system resolvers)")
	flag.DurationVar(&cfg.DNSTimeout, "dns-timeout", 2*time.Second, "Per-lookup DNS timeout")
	flag.StringVar(&cfg.Regions, "regions", "US,IT", "Comma separated fallback regions for numbers without a country code")
	flag.StringVar(&cfg.RefData, "refdata", "", "Optional YAML file extending the reference tables")
	flag.Parse()

	result, err := run(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode result: %v\n", err)
		os.Exit(1)
	}
}

// go run ./cmd/validatecli.go -email user@example.com
