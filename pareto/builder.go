package pareto

import (
	"sort"

	"github.com/rechor-go/journeyrouter/packed"
)

const defaultCapacity = 3

// Builder accumulates packed.Criteria tuples while maintaining the
// invariant that no two retained tuples are comparable under
// DominatesOrEqual. It is the mutable working set the router keeps one of
// per trip and per station while scanning connections.
type Builder struct {
	tuples []packed.Criteria
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{tuples: make([]packed.Criteria, 0, defaultCapacity)}
}

// IsEmpty reports whether the builder currently holds no tuples.
func (b *Builder) IsEmpty() bool {
	return len(b.tuples) == 0
}

// Clear removes every tuple from the builder.
func (b *Builder) Clear() {
	b.tuples = b.tuples[:0]
}

// ForEach calls fn once per retained tuple, in no particular order.
func (b *Builder) ForEach(fn func(packed.Criteria)) {
	for _, t := range b.tuples {
		fn(t)
	}
}

// Add inserts t, discarding it if some retained tuple already dominates
// or equals it, and otherwise discarding every retained tuple that t
// dominates or equals. Retained tuples are kept in ascending numeric
// order.
func (b *Builder) Add(t packed.Criteria) {
	for _, existing := range b.tuples {
		if existing.DominatesOrEqual(t) {
			return
		}
	}
	kept := b.tuples[:0]
	for _, existing := range b.tuples {
		if !t.DominatesOrEqual(existing) {
			kept = append(kept, existing)
		}
	}
	pos := sort.Search(len(kept), func(i int) bool { return kept[i] > t })
	kept = append(kept, 0)
	copy(kept[pos+1:], kept[pos:])
	kept[pos] = t
	b.tuples = kept
}

// AddCriteria packs (arrMins, changes, payload) and adds the result.
func (b *Builder) AddCriteria(arrMins, changes int, payload uint32) {
	b.Add(packed.Pack(arrMins, changes, payload))
}

// AddAll merges every tuple of other into b, applying the same dominance
// rule as Add to each one independently. Applying AddAll twice with the
// same other leaves b unchanged after the first call.
func (b *Builder) AddAll(other *Builder) {
	for _, t := range other.tuples {
		b.Add(t)
	}
}

// Build returns the immutable frontier containing exactly the tuples
// currently retained by b. Later mutation of b does not affect the
// returned Frontier.
func (b *Builder) Build() Frontier {
	if len(b.tuples) == 0 {
		return Empty
	}
	out := make([]packed.Criteria, len(b.tuples))
	copy(out, b.tuples)
	return Frontier{tuples: out}
}

// FullyDominates reports whether, for every tuple u retained by other,
// some tuple in b dominates or equals u once u is given departure time
// depMins. It is used by the router to prune a candidate front that
// cannot improve on what a station already knows.
func (b *Builder) FullyDominates(other *Builder, depMins int) bool {
	for _, u := range other.tuples {
		withDep := u.WithDep(depMins)
		dominated := false
		for _, v := range b.tuples {
			if v.DominatesOrEqual(withDep) {
				dominated = true
				break
			}
		}
		if !dominated {
			return false
		}
	}
	return true
}
