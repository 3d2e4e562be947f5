package journey

import "time"

// Journey is a non-empty, continuous sequence of alternating Transport and
// Foot legs.
type Journey struct {
	legs []Leg
}

// NewJourney builds a Journey, panicking if legs is empty, fails to
// alternate transport/foot, or is not continuous in time and place.
func NewJourney(legs []Leg) Journey {
	if len(legs) == 0 {
		panic("journey: a journey must contain at least one leg")
	}
	cp := make([]Leg, len(legs))
	copy(cp, legs)

	for i := 1; i < len(cp); i++ {
		prev, cur := cp[i-1], cp[i]

		_, prevTransport := prev.(Transport)
		_, curTransport := cur.(Transport)
		if prevTransport == curTransport {
			panic("journey: walking and transport legs must alternate")
		}
		if cur.DepTime().Before(prev.ArrTime()) {
			panic("journey: a leg cannot start before the previous one ends")
		}
		if prev.ArrStop() != cur.DepStop() {
			panic("journey: the departure stop of a leg must be the arrival stop of the previous one")
		}
	}

	return Journey{legs: cp}
}

// Legs returns the journey's legs in travel order.
func (j Journey) Legs() []Leg { return j.legs }

// DepStop returns the journey's first departure stop.
func (j Journey) DepStop() Stop { return j.legs[0].DepStop() }

// ArrStop returns the journey's last arrival stop.
func (j Journey) ArrStop() Stop { return j.legs[len(j.legs)-1].ArrStop() }

// DepTime returns the journey's first departure time.
func (j Journey) DepTime() time.Time { return j.legs[0].DepTime() }

// ArrTime returns the journey's last arrival time.
func (j Journey) ArrTime() time.Time { return j.legs[len(j.legs)-1].ArrTime() }

// Duration returns the elapsed time between DepTime and ArrTime.
func (j Journey) Duration() time.Duration { return j.ArrTime().Sub(j.DepTime()) }

// Changes returns the number of transport legs minus one, i.e. the number
// of vehicle changes (a transfer between two transport legs counts once
// regardless of whether it requires walking).
func (j Journey) Changes() int {
	transportLegs := 0
	for _, l := range j.legs {
		if _, ok := l.(Transport); ok {
			transportLegs++
		}
	}
	if transportLegs == 0 {
		return 0
	}
	return transportLegs - 1
}
