package registry

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"salsite/internal/shared/ui"
)

// Map is the in-memory artifact map built from a bucket listing:
// topic version -> CSC -> topic page names, in listing order.
type Map map[string]map[string][]string

// Add appends a leaf to the (version, csc) list, creating the
// intermediate map as needed.
func (m Map) Add(version, csc, leaf string) {
	sub, ok := m[version]
	if !ok {
		sub = make(map[string][]string)
		m[version] = sub
	}
	sub[csc] = append(sub[csc], leaf)
}

// Versions returns the top-level keys in sorted order.
func (m Map) Versions() []string {
	versions := make([]string, 0, len(m))
	for v := range m {
		versions = append(versions, v)
	}
	sort.Strings(versions)
	return versions
}

// CSCs returns the sub-keys under a version in sorted order.
func (m Map) CSCs(version string) []string {
	cscs := make([]string, 0, len(m[version]))
	for c := range m[version] {
		cscs = append(cscs, c)
	}
	sort.Strings(cscs)
	return cscs
}

// Build buckets object keys into a Map. Keys containing any of the
// excluded substrings are static assets (stylesheets, images, the index
// pages themselves) and are dropped. Keys that do not split into exactly
// version/csc/page are skipped with a warning rather than aborting the
// run.
func Build(keys []string, excludes []string, verbose int) Map {
	m := make(Map)
	for _, key := range keys {
		if excluded(key, excludes) {
			continue
		}
		parts := strings.Split(key, "/")
		if verbose > 3 {
			fmt.Println(parts)
		}
		if len(parts) != 3 {
			fmt.Fprintln(os.Stderr, ui.Warnf("Skipping key with unexpected layout: %q", key))
			continue
		}
		m.Add(parts[0], parts[1], parts[2])
		if verbose > 2 {
			fmt.Println(m)
		}
	}
	return m
}

func excluded(key string, excludes []string) bool {
	for _, exclude := range excludes {
		if strings.Contains(key, exclude) {
			return true
		}
	}
	return false
}
