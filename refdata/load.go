// SPDX-License-Identifier: GPL-3.0-only

package refdata

import (
	"errors"
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrEmptyReferenceFile = errors.New("reference data file contains no entries")

// File is the on-disk shape of a reference data extension.
//
//	disposable_domains: [tempinbox.example]
//	providers:
//	  fastmail.com: Fastmail
//	suspicious_tlds: [.xyz]
type File struct {
	DisposableDomains []string          `yaml:"disposable_domains"`
	Providers         map[string]string `yaml:"providers"`
	SuspiciousTLDs    []string          `yaml:"suspicious_tlds"`
}

// Load returns the built-in tables, extended with the YAML file at path when set.
func Load(path string) (*Tables, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference data %s: %w", path, err)
	}
	return Parse(data)
}

// Parse merges a YAML document into the built-in tables.
func Parse(data []byte) (*Tables, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse reference data: %w", err)
	}
	if len(f.DisposableDomains) == 0 && len(f.Providers) == 0 && len(f.SuspiciousTLDs) == 0 {
		return nil, ErrEmptyReferenceFile
	}

	disposable := append(append([]string(nil), defaultDisposableDomains...), f.DisposableDomains...)

	providers := maps.Clone(defaultProviders)
	maps.Copy(providers, f.Providers)

	tlds := append(append([]string(nil), defaultSuspiciousTLDs...), f.SuspiciousTLDs...)

	return New(disposable, providers, tlds), nil
}
