// SPDX-License-Identifier: GPL-3.0-only

package mccmnc

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

func LoadJSON(filePath string) ([]Entry, error) {
	var raw RawData

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid carrier data in %s: %w", filePath, err)
	}

	return raw.Lookup, nil
}

func BuildIndex(entries []Entry) *LookupIndex {
	idx := &LookupIndex{
		ByPrefix: make(map[string][]Entry),
	}

	for _, e := range entries {
		if e.Prefix <= 0 {
			continue
		}
		prefix := strconv.Itoa(e.Prefix)
		idx.ByPrefix[prefix] = append(idx.ByPrefix[prefix], e)
		if len(prefix) > idx.maxPrefixLen {
			idx.maxPrefixLen = len(prefix)
		}
	}

	return idx
}

func (idx *LookupIndex) LookupByPrefix(prefix string) []Entry {
	return idx.ByPrefix[prefix]
}

// LookupLongestPrefix finds the entry whose prefix is the longest match for an
// E.164 number. The leading '+' is optional.
func (idx *LookupIndex) LookupLongestPrefix(e164 string) (Entry, bool) {
	if idx == nil {
		return Entry{}, false
	}
	digits := strings.TrimPrefix(e164, "+")
	n := min(len(digits), idx.maxPrefixLen)
	for ; n > 0; n-- {
		if entries := idx.LookupByPrefix(digits[:n]); len(entries) > 0 {
			return entries[0], true
		}
	}
	return Entry{}, false
}

func (idx *LookupIndex) Len() int {
	if idx == nil {
		return 0
	}
	total := 0
	for _, entries := range idx.ByPrefix {
		total += len(entries)
	}
	return total
}
