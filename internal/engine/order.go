// internal/engine/order.go
package engine

import (
	"sort"
	"strconv"
	"strings"
)

// Order sorts hits by ascending distance in place. Ties keep their incoming
// order, which is read order when hits are indexed 0..N-1. topN > 0 truncates.
func Order(hits []Scored, topN int) []Scored {
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	if topN > 0 && topN < len(hits) {
		hits = hits[:topN]
	}
	return hits
}

// ParseLimit reads a result-count answer. Non-integers and negative values
// report ok=false; callers treat those, and 0, as "keep all".
func ParseLimit(s string) (n int, ok bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}
