// Package analytics derives the read-only views of the dashboard from the
// collections. Every function is pure: inputs are never modified and results
// are recomputed on each call.
package analytics

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// All is the filter value meaning "no restriction", as sent by the listing
// screens. An empty filter means the same.
const All = "all"

func matchesExact(filter, value string) bool {
	return filter == "" || strings.EqualFold(filter, All) || filter == value
}

// containsFold is a case-insensitive substring test. An empty needle matches.
func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func anyContainsFold(needle string, fields ...string) bool {
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if containsFold(f, needle) {
			return true
		}
	}
	return false
}

// newCollator orders names the way a Portuguese reader expects ("Área" next to
// "Areia", not after "Z"). Collators are not safe for concurrent use.
func newCollator() *collate.Collator {
	return collate.New(language.EuropeanPortuguese, collate.IgnoreCase)
}

func distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := []string{}
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
