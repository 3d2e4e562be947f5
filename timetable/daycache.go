package timetable

import "time"

// dayCache memoizes the Trips/Connections view for the single most
// recently requested date. It assumes single-threaded request serving,
// matching the rest of the router; no locking is performed.
type dayCache struct {
	loadTrips       func(time.Time) Trips
	loadConnections func(time.Time) Connections

	hasDate     bool
	date        time.Time
	trips       Trips
	connections Connections
}

func newDayCache(loadTrips func(time.Time) Trips, loadConnections func(time.Time) Connections) dayCache {
	return dayCache{loadTrips: loadTrips, loadConnections: loadConnections}
}

func (c *dayCache) tripsFor(date time.Time) Trips {
	c.ensure(date)
	return c.trips
}

func (c *dayCache) connectionsFor(date time.Time) Connections {
	c.ensure(date)
	return c.connections
}

func (c *dayCache) ensure(date time.Time) {
	if c.hasDate && c.date.Equal(date) {
		return
	}
	c.trips = c.loadTrips(date)
	c.connections = c.loadConnections(date)
	c.date = date
	c.hasDate = true
}
