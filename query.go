package journeyrouter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rechor-go/journeyrouter/timetable"
)

// QueryError reports a Query that names an out-of-range station or a date
// with no matching timetable subdirectory — bad input a caller is expected
// to report back to a user, not a programmer bug.
type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

// Query is a validated request for journeys between two stations on a
// given date. MaxChanges, when non-zero, overrides the configured
// Query.MaxChanges cap for this call only.
type Query struct {
	DepStationID int
	ArrStationID int
	Date         time.Time
	MaxChanges   int
}

// Validate checks that both station ids are in range for store and that
// store's timetable directory has a subdirectory for Date.
func (q Query) Validate(store *timetable.Store) error {
	stations := store.Stations()
	if q.DepStationID < 0 || q.DepStationID >= stations.Size() {
		return &QueryError{Msg: fmt.Sprintf("no such departure station: %d", q.DepStationID)}
	}
	if q.ArrStationID < 0 || q.ArrStationID >= stations.Size() {
		return &QueryError{Msg: fmt.Sprintf("no such arrival station: %d", q.ArrStationID)}
	}
	if q.DepStationID == q.ArrStationID {
		return &QueryError{Msg: "departure and arrival station must differ"}
	}
	if q.MaxChanges < 0 {
		return &QueryError{Msg: "max changes must be non-negative"}
	}
	if _, err := os.Stat(filepath.Join(store.Dir(), q.Date.Format("2006-01-02"))); err != nil {
		return &QueryError{Msg: fmt.Sprintf("no timetable for date %s", q.Date.Format("2006-01-02"))}
	}
	return nil
}
