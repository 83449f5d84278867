// filter.go: key filter matcher (spec §4.6)
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package quickleaf

import "strings"

// FilterKind selects the predicate shape applied by Filter.Match.
type FilterKind int

const (
	// FilterNone matches every key.
	FilterNone FilterKind = iota
	// FilterStartsWith matches keys beginning with Prefix.
	FilterStartsWith
	// FilterEndsWith matches keys ending with Suffix.
	FilterEndsWith
	// FilterStartsAndEndsWith matches keys satisfying both Prefix and
	// Suffix, with no overlap allowed between them.
	FilterStartsAndEndsWith
)

// Filter is a pure predicate over keys, used by List (spec §4.6). The zero
// value is NoFilter.
type Filter struct {
	Kind   FilterKind
	Prefix string
	Suffix string
}

// NoFilter matches every key.
var NoFilter = Filter{Kind: FilterNone}

// StartsWith builds a Filter matching keys with the given prefix.
func StartsWith(prefix string) Filter {
	return Filter{Kind: FilterStartsWith, Prefix: prefix}
}

// EndsWith builds a Filter matching keys with the given suffix.
func EndsWith(suffix string) Filter {
	return Filter{Kind: FilterEndsWith, Suffix: suffix}
}

// StartsAndEndsWith builds a Filter requiring both a prefix and a suffix.
func StartsAndEndsWith(prefix, suffix string) Filter {
	return Filter{Kind: FilterStartsAndEndsWith, Prefix: prefix, Suffix: suffix}
}

// Match reports whether key satisfies f. Matching is byte-wise, not
// Unicode-normalized.
func (f Filter) Match(key string) bool {
	switch f.Kind {
	case FilterNone:
		return true
	case FilterStartsWith:
		return strings.HasPrefix(key, f.Prefix)
	case FilterEndsWith:
		return strings.HasSuffix(key, f.Suffix)
	case FilterStartsAndEndsWith:
		if len(f.Prefix)+len(f.Suffix) > len(key) {
			return false
		}
		return strings.HasPrefix(key, f.Prefix) && strings.HasSuffix(key, f.Suffix)
	default:
		return false
	}
}
