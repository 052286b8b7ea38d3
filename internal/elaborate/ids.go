// Package elaborate coordinates rule elaborators (spec.md §5) on top of
// check.Driver: it supplies collision-free synthesized step identifiers and
// exposes a single entry point a caller runs instead of reaching into the
// driver directly.
package elaborate

import (
	"fmt"

	"github.com/segmentio/ksuid"
)

// IDGenerator hands out step identifiers for synthesized commands,
// guaranteeing each is unique against every id seen so far in the run. Most
// synthesized ids (e.g. "<step>.t1") never collide; the ksuid suffix only
// fires when two elaborations independently want the same shape, such as a
// trans step nested inside another trans step's reconstruction.
type IDGenerator struct {
	seen map[string]struct{}
}

// NewIDGenerator seeds the generator with every id already present in the
// proof being elaborated, so synthesized ids can never shadow a real step.
func NewIDGenerator(existing []string) *IDGenerator {
	seen := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		seen[id] = struct{}{}
	}
	return &IDGenerator{seen: seen}
}

// Fresh returns base unchanged if it has not been seen yet (neither seeded
// nor handed out before); otherwise it appends a short ksuid-derived suffix
// and retries until the result is unused.
func (g *IDGenerator) Fresh(base string) string {
	if _, used := g.seen[base]; !used {
		g.seen[base] = struct{}{}
		return base
	}
	for {
		candidate := fmt.Sprintf("%s.%s", base, ksuid.New().String()[:8])
		if _, used := g.seen[candidate]; !used {
			g.seen[candidate] = struct{}{}
			return candidate
		}
	}
}
