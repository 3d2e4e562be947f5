package pareto

import (
	"fmt"

	"github.com/rechor-go/journeyrouter/packed"
)

// Frontier is an immutable, non-dominated set of packed.Criteria values.
type Frontier struct {
	tuples []packed.Criteria
}

// Empty is the frontier with no entries.
var Empty = Frontier{}

// Size returns the number of tuples in the frontier.
func (f Frontier) Size() int {
	return len(f.tuples)
}

// ForEach calls fn once per tuple, in no particular order.
func (f Frontier) ForEach(fn func(packed.Criteria)) {
	for _, t := range f.tuples {
		fn(t)
	}
}

// Get returns the tuple whose arrival and change count exactly match
// arrMins and changes. It panics if no such tuple exists; callers that
// expect a miss should check membership via ForEach first.
func (f Frontier) Get(arrMins, changes int) packed.Criteria {
	for _, t := range f.tuples {
		if t.Arr() == arrMins && t.Changes() == changes {
			return t
		}
	}
	panic(fmt.Sprintf("pareto: no tuple with arrival %d and %d changes", arrMins, changes))
}
