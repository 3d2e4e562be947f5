package journey

import (
	"time"

	"github.com/rechor-go/journeyrouter/timetable"
)

// IntermediateStop is a stop a Transport leg passes through without the
// traveler boarding or alighting.
type IntermediateStop struct {
	Stop    Stop
	ArrTime time.Time
	DepTime time.Time
}

func newIntermediateStop(stop Stop, arr, dep time.Time) IntermediateStop {
	if dep.Before(arr) {
		panic("journey: intermediate stop departure time precedes arrival time")
	}
	return IntermediateStop{Stop: stop, ArrTime: arr, DepTime: dep}
}

// Leg is one segment of a Journey: either riding a vehicle (Transport) or
// walking (Foot).
type Leg interface {
	DepStop() Stop
	DepTime() time.Time
	ArrStop() Stop
	ArrTime() time.Time
	IntermediateStops() []IntermediateStop
	Duration() time.Duration

	// isLeg restricts Leg to the implementations in this package.
	isLeg()
}

// Transport is a leg spent aboard a single vehicle run, possibly passing
// through intermediate stops.
type Transport struct {
	depStop           Stop
	depTime           time.Time
	arrStop           Stop
	arrTime           time.Time
	intermediateStops []IntermediateStop
	vehicle           timetable.Vehicle
	route             string
	destination       string
}

// NewTransport builds a Transport leg, panicking if arrTime precedes
// depTime.
func NewTransport(depStop Stop, depTime time.Time, arrStop Stop, arrTime time.Time, intermediateStops []IntermediateStop, vehicle timetable.Vehicle, route, destination string) Transport {
	if arrTime.Before(depTime) {
		panic("journey: transport leg arrival time precedes departure time")
	}
	stops := make([]IntermediateStop, len(intermediateStops))
	copy(stops, intermediateStops)
	return Transport{
		depStop:           depStop,
		depTime:           depTime,
		arrStop:           arrStop,
		arrTime:           arrTime,
		intermediateStops: stops,
		vehicle:           vehicle,
		route:             route,
		destination:       destination,
	}
}

func (t Transport) DepStop() Stop                        { return t.depStop }
func (t Transport) DepTime() time.Time                   { return t.depTime }
func (t Transport) ArrStop() Stop                        { return t.arrStop }
func (t Transport) ArrTime() time.Time                   { return t.arrTime }
func (t Transport) IntermediateStops() []IntermediateStop { return t.intermediateStops }
func (t Transport) Duration() time.Duration               { return t.arrTime.Sub(t.depTime) }
func (t Transport) Vehicle() timetable.Vehicle             { return t.vehicle }
func (t Transport) Route() string                          { return t.route }
func (t Transport) Destination() string                    { return t.destination }
func (Transport) isLeg()                                   {}

// Foot is a walking leg, either between two stations or a same-station
// transfer.
type Foot struct {
	depStop Stop
	depTime time.Time
	arrStop Stop
	arrTime time.Time
}

// NewFoot builds a Foot leg, panicking if arrTime precedes depTime.
func NewFoot(depStop Stop, depTime time.Time, arrStop Stop, arrTime time.Time) Foot {
	if arrTime.Before(depTime) {
		panic("journey: foot leg arrival time precedes departure time")
	}
	return Foot{depStop: depStop, depTime: depTime, arrStop: arrStop, arrTime: arrTime}
}

func (f Foot) DepStop() Stop                        { return f.depStop }
func (f Foot) DepTime() time.Time                   { return f.depTime }
func (f Foot) ArrStop() Stop                        { return f.arrStop }
func (f Foot) ArrTime() time.Time                   { return f.arrTime }
func (f Foot) IntermediateStops() []IntermediateStop { return nil }
func (f Foot) Duration() time.Duration               { return f.arrTime.Sub(f.depTime) }
func (Foot) isLeg()                                  {}

// IsTransfer reports whether this foot leg stays within the same station.
func (f Foot) IsTransfer() bool {
	return f.depStop.Name == f.arrStop.Name
}
