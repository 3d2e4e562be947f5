package router

import (
	"time"

	"github.com/rechor-go/journeyrouter/pareto"
	"github.com/rechor-go/journeyrouter/timetable"
)

// Profile holds, for a fixed date and arrival station, the Pareto-optimal
// frontier of every station: the best (arrival time, change count,
// departure time) combinations reachable from that station toward the
// destination.
type Profile struct {
	TimeTable    timetable.TimeTable
	Date         time.Time
	ArrStationID int

	stationFront []pareto.Frontier
}

// ForStation returns the frontier of stationID. Every station has an
// entry; stations never reached by the scan have the empty frontier.
func (p Profile) ForStation(stationID int) pareto.Frontier {
	return p.stationFront[stationID]
}

// Connections returns the connection table for the profile's date.
func (p Profile) Connections() timetable.Connections {
	return p.TimeTable.ConnectionsFor(p.Date)
}

// Trips returns the trip table for the profile's date.
func (p Profile) Trips() timetable.Trips {
	return p.TimeTable.TripsFor(p.Date)
}
