// list.go: filtered, ordered, paginated enumeration (spec §4.2)
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package quickleaf

import "sort"

// List enumerates entries per opts. Any entry found to be logically
// expired during the scan is swept (emitting Remove) and omitted from the
// result, matching the sweep-while-scan contract of spec §4.2.
func (c *cacheEngine) List(opts ListOptions) ([]Pair, error) {
	nowMs := c.config.Clock.Now()

	keys := c.store.Keys()
	matched := make([]string, 0, len(keys))
	for _, key := range keys {
		if _, ok := c.expireIfNeeded(key, nowMs); !ok {
			continue
		}
		if opts.Filter.Match(key) {
			matched = append(matched, key)
		}
	}

	sort.Strings(matched)
	if opts.Order == Descending {
		reverseStrings(matched)
	}

	if opts.StartAfter != "" {
		idx := len(matched)
		for i, key := range matched {
			if pastStartAfter(key, opts.StartAfter, opts.Order) {
				idx = i
				break
			}
		}
		matched = matched[idx:]
	}

	if opts.Limit > 0 && len(matched) > opts.Limit {
		matched = matched[:opts.Limit]
	}

	pairs := make([]Pair, 0, len(matched))
	for _, key := range matched {
		e, ok := c.store.Get(key)
		if !ok {
			continue
		}
		pairs = append(pairs, Pair{Key: key, Value: e.value})
	}
	return pairs, nil
}

// pastStartAfter reports whether key is strictly past startAfter under
// the comparator implied by order: strictly greater for Ascending,
// strictly less for Descending.
func pastStartAfter(key, startAfter string, order Order) bool {
	if order == Descending {
		return key < startAfter
	}
	return key > startAfter
}

func reverseStrings(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
