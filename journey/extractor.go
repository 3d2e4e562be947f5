package journey

import (
	"sort"
	"time"

	"github.com/rechor-go/journeyrouter/packed"
	"github.com/rechor-go/journeyrouter/router"
	"github.com/rechor-go/journeyrouter/timetable"
)

// Extract rebuilds every journey on depStationID's Pareto frontier within
// profile, sorted by (departure time, arrival time).
func Extract(profile router.Profile, depStationID int) []Journey {
	front := profile.ForStation(depStationID)

	var journeys []Journey
	front.ForEach(func(t packed.Criteria) {
		journeys = append(journeys, NewJourney(extractLegs(profile, depStationID, t)))
	})

	sort.Slice(journeys, func(i, j int) bool {
		di, dj := journeys[i].DepTime(), journeys[j].DepTime()
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return journeys[i].ArrTime().Before(journeys[j].ArrTime())
	})
	return journeys
}

// extractLegs walks forward from depStationID through the connections
// named by initial's payload chain, rebuilding the concrete legs of the
// single journey initial represents.
func extractLegs(profile router.Profile, depStationID int, initial packed.Criteria) []Leg {
	tt := profile.TimeTable
	connections := profile.Connections()

	var legs []Leg
	currentStopID := depStationID
	arrMins := initial.Arr()
	currentArrMins := 0

	firstConnID, _ := packed.Split24_8(initial.Payload())
	connDepStopID := connections.DepStopID(int(firstConnID))

	if tt.StationID(connDepStopID) != currentStopID {
		legs = addFootLeg(legs, profile, tt, connections.DepMins(int(firstConnID)), false, currentStopID, connDepStopID)
	}

	for remainingChanges := initial.Changes(); remainingChanges >= 0; remainingChanges-- {
		front := profile.ForStation(tt.StationID(currentStopID))
		current := front.Get(arrMins, remainingChanges)

		connID32, numStops32 := packed.Split24_8(current.Payload())
		connID := int(connID32)
		connDepStopID = connections.DepStopID(connID)

		if n := len(legs); n > 0 {
			if _, ok := legs[n-1].(Transport); ok {
				legs = addFootLeg(legs, profile, tt, currentArrMins, true, currentStopID, connDepStopID)
			}
		}

		var leg Transport
		leg, connID = addTransportLeg(profile, tt, connID, int(numStops32))
		legs = append(legs, leg)

		currentStopID = connections.ArrStopID(connID)
		currentArrMins = connections.ArrMins(connID)
	}

	if tt.StationID(currentStopID) != profile.ArrStationID {
		legs = addFootLeg(legs, profile, tt, currentArrMins, true, currentStopID, profile.ArrStationID)
	}

	return legs
}

// addTransportLeg builds the Transport leg starting at connID and walking
// forward through numStops intermediate connections via
// Connections.NextConnectionID, returning the final connection id reached
// (the one whose arrival stop and time close the leg).
func addTransportLeg(profile router.Profile, tt timetable.TimeTable, connID, numStops int) (Transport, int) {
	connections := profile.Connections()
	trips := profile.Trips()
	routes := tt.Routes()

	tripID := connections.TripID(connID)
	depStopID := connections.DepStopID(connID)
	initialDepMins := connections.DepMins(connID)

	var intermediates []IntermediateStop
	for i := 0; i < numStops; i++ {
		arr := dateTimeFromMins(connections.ArrMins(connID), profile.Date)
		connID = connections.NextConnectionID(connID)
		intermediates = append(intermediates, newIntermediateStop(
			stopFromStopID(tt, connections.DepStopID(connID)),
			arr,
			dateTimeFromMins(connections.DepMins(connID), profile.Date),
		))
	}

	arrStopID := connections.ArrStopID(connID)
	routeID := trips.RouteID(tripID)

	leg := NewTransport(
		stopFromStopID(tt, depStopID),
		dateTimeFromMins(initialDepMins, profile.Date),
		stopFromStopID(tt, arrStopID),
		dateTimeFromMins(connections.ArrMins(connID), profile.Date),
		intermediates,
		routes.Vehicle(routeID),
		routes.Name(routeID),
		trips.Destination(tripID),
	)
	return leg, connID
}

// addFootLeg appends a Foot leg walking from depStopID to arrStopID if the
// transfer table names a walk between their stations, scanning the same
// arrival-sorted range the router consults.
func addFootLeg(legs []Leg, profile router.Profile, tt timetable.TimeTable, mins int, isDepMins bool, depStopID, arrStopID int) []Leg {
	depStationID := tt.StationID(depStopID)
	arrStationID := tt.StationID(arrStopID)

	transfers := tt.Transfers()
	r := transfers.ArrivingAt(arrStationID)
	for i := r.Start(); i < r.End(); i++ {
		if transfers.DepStationID(int(i)) != depStationID {
			continue
		}
		walk := transfers.Minutes(int(i))

		var depMins, arrMins int
		if isDepMins {
			depMins, arrMins = mins, mins+walk
		} else {
			depMins, arrMins = mins-walk, mins
		}

		return append(legs, NewFoot(
			stopFromStopID(tt, depStopID),
			dateTimeFromMins(depMins, profile.Date),
			stopFromStopID(tt, arrStopID),
			dateTimeFromMins(arrMins, profile.Date),
		))
	}
	return legs
}

func stopFromStopID(tt timetable.TimeTable, stopID int) Stop {
	stationID := tt.StationID(stopID)
	stations := tt.Stations()
	return NewStop(stations.Name(stationID), tt.PlatformName(stopID), stations.Longitude(stationID), stations.Latitude(stationID))
}

func dateTimeFromMins(mins int, date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, mins, 0, 0, date.Location())
}
