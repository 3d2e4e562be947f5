package router

import (
	"time"

	"github.com/rechor-go/journeyrouter/packed"
	"github.com/rechor-go/journeyrouter/pareto"
	"github.com/rechor-go/journeyrouter/timetable"
)

// BuildProfile runs the backward connection scan for date and arrStationID
// and returns the resulting Profile.
//
// Connections must already be sorted by strictly decreasing departure
// time; BuildProfile relies on that ordering and does not verify it.
func BuildProfile(tt timetable.TimeTable, date time.Time, arrStationID int) Profile {
	connections := tt.ConnectionsFor(date)
	trips := tt.TripsFor(date)
	stations := tt.Stations()

	stationBuilders := make([]*pareto.Builder, stations.Size())
	tripBuilders := make([]*pareto.Builder, trips.Size())

	for connID := 0; connID < connections.Size(); connID++ {
		front := pareto.NewBuilder()

		depStopID := connections.DepStopID(connID)
		arrStopID := connections.ArrStopID(connID)
		tripID := connections.TripID(connID)
		depTime := connections.DepMins(connID)
		arrTime := connections.ArrMins(connID)

		addDirectWalkToDestination(tt, arrStationID, connID, arrStopID, arrTime, front)
		addContinuationsOfSameTrip(tripBuilders, tripID, front)
		addTransfersAtArrival(tt, stationBuilders, connID, arrStopID, arrTime, front)

		if front.IsEmpty() {
			continue
		}

		if tripBuilders[tripID] == nil {
			tripBuilders[tripID] = pareto.NewBuilder()
		}
		tripBuilders[tripID].AddAll(front)

		depStationID := tt.StationID(depStopID)
		if b := stationBuilders[depStationID]; b != nil && b.FullyDominates(front, depTime) {
			continue
		}

		propagateToBoardingStations(tt, connections, stationBuilders, connID, depStopID, depTime, front)
	}

	stationFront := make([]pareto.Frontier, stations.Size())
	for i, b := range stationBuilders {
		if b != nil {
			stationFront[i] = b.Build()
		} else {
			stationFront[i] = pareto.Empty
		}
	}

	return Profile{TimeTable: tt, Date: date, ArrStationID: arrStationID, stationFront: stationFront}
}

// addDirectWalkToDestination adds, to front, the option of riding
// connection connID then walking straight from its arrival stop to the
// global destination.
func addDirectWalkToDestination(tt timetable.TimeTable, arrStationID, connID, arrStopID, arrTime int, front *pareto.Builder) {
	transfers := tt.Transfers()
	connArrStation := tt.StationID(arrStopID)
	r := transfers.ArrivingAt(arrStationID)
	for i := r.Start(); i < r.End(); i++ {
		if transfers.DepStationID(int(i)) == connArrStation {
			front.AddCriteria(arrTime+transfers.Minutes(int(i)), 0, uint32(connID))
		}
	}
}

// addContinuationsOfSameTrip folds in whatever the trip serving connID
// could already achieve by staying aboard past a later stop.
func addContinuationsOfSameTrip(tripBuilders []*pareto.Builder, tripID int, front *pareto.Builder) {
	if b := tripBuilders[tripID]; b != nil {
		front.AddAll(b)
	}
}

// addTransfersAtArrival adds, for every boarding already known to be
// reachable from connID's arrival stop with a late enough departure, the
// option of boarding connID to reach it with one more change.
func addTransfersAtArrival(tt timetable.TimeTable, stationBuilders []*pareto.Builder, connID, arrStopID, arrTime int, front *pareto.Builder) {
	b := stationBuilders[tt.StationID(arrStopID)]
	if b == nil {
		return
	}
	b.ForEach(func(t packed.Criteria) {
		if t.Dep() >= arrTime {
			front.AddCriteria(t.Arr(), t.Changes()+1, uint32(connID))
		}
	})
}

// propagateToBoardingStations, once front has survived pruning, writes it
// into every station from which a traveler could walk to connID's
// departure stop in time to board. This is the only point at which a
// payload takes its final (connectionId, intermediateStopCount) form.
func propagateToBoardingStations(tt timetable.TimeTable, connections timetable.Connections, stationBuilders []*pareto.Builder, connID, depStopID, depTime int, front *pareto.Builder) {
	transfers := tt.Transfers()
	depStationID := tt.StationID(depStopID)
	r := transfers.ArrivingAt(depStationID)

	for i := r.Start(); i < r.End(); i++ {
		walk := transfers.Minutes(int(i))
		adjustedDep := depTime - walk

		stationFront := pareto.NewBuilder()
		front.ForEach(func(t packed.Criteria) {
			boardConn := int(t.Payload())
			offset := connections.TripPos(boardConn) - connections.TripPos(connID)
			payload := packed.Join24_8(uint32(connID), uint32(offset))
			stationFront.Add(t.WithDep(adjustedDep).WithPayload(payload))
		})

		transferStationID := transfers.DepStationID(int(i))
		if stationBuilders[transferStationID] == nil {
			stationBuilders[transferStationID] = pareto.NewBuilder()
		}
		stationBuilders[transferStationID].AddAll(stationFront)
	}
}
