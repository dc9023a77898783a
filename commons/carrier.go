// SPDX-License-Identifier: GPL-3.0-only

package commons

import (
	"os"
	"path/filepath"
	"strings"

	"contactcheck-server/commons/mccmnc"
)

// LoadCarrierIndex reads the prefix → network table at path and merges an optional
// "<name>_overwrite.json" file next to it. An empty path yields a nil index.
func LoadCarrierIndex(path string) (*mccmnc.LookupIndex, error) {
	if path == "" {
		return nil, nil
	}

	entries, err := mccmnc.LoadJSON(path)
	if err != nil {
		return nil, err
	}

	entryMap := make(map[int]mccmnc.Entry)
	for _, entry := range entries {
		entryMap[entry.Prefix] = entry
	}

	overwritePath := overwritePathFor(path)
	if _, err := os.Stat(overwritePath); err == nil {
		overwriteEntries, err := mccmnc.LoadJSON(overwritePath)
		if err != nil {
			Logger.Warnf("Failed to load carrier overwrite data: %v", err)
		} else {
			for _, entry := range overwriteEntries {
				entryMap[entry.Prefix] = entry
			}
			Logger.Infof("Loaded %d carrier overwrite entries", len(overwriteEntries))
		}
	}

	mergedEntries := make([]mccmnc.Entry, 0, len(entryMap))
	for _, entry := range entryMap {
		mergedEntries = append(mergedEntries, entry)
	}

	idx := mccmnc.BuildIndex(mergedEntries)
	Logger.Infof("Loaded %d total carrier entries", idx.Len())
	return idx, nil
}

func overwritePathFor(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_overwrite" + ext
}
