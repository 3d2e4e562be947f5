package formatter

import (
	"encoding/json"
	"time"

	"github.com/rechor-go/journeyrouter/journey"
)

type stopDTO struct {
	Name         string  `json:"name"`
	PlatformName string  `json:"platformName,omitempty"`
	Longitude    float64 `json:"longitude"`
	Latitude     float64 `json:"latitude"`
}

type intermediateStopDTO struct {
	Stop    stopDTO   `json:"stop"`
	ArrTime time.Time `json:"arrTime"`
	DepTime time.Time `json:"depTime"`
}

type legDTO struct {
	Kind              string                 `json:"kind"` // "transport" or "foot"
	DepStop           stopDTO                `json:"depStop"`
	DepTime           time.Time              `json:"depTime"`
	ArrStop           stopDTO                `json:"arrStop"`
	ArrTime           time.Time              `json:"arrTime"`
	IntermediateStops []intermediateStopDTO  `json:"intermediateStops,omitempty"`
	Vehicle           string                 `json:"vehicle,omitempty"`
	Route             string                 `json:"route,omitempty"`
	Destination       string                 `json:"destination,omitempty"`
	IsTransfer        bool                   `json:"isTransfer,omitempty"`
}

type journeyDTO struct {
	DepTime  time.Time `json:"depTime"`
	ArrTime  time.Time `json:"arrTime"`
	Changes  int       `json:"changes"`
	Duration string    `json:"duration"`
	Legs     []legDTO  `json:"legs"`
}

func stopToDTO(s journey.Stop) stopDTO {
	return stopDTO{
		Name:         s.Name,
		PlatformName: s.PlatformName,
		Longitude:    s.Longitude,
		Latitude:     s.Latitude,
	}
}

func legToDTO(l journey.Leg) legDTO {
	dto := legDTO{
		DepStop: stopToDTO(l.DepStop()),
		DepTime: l.DepTime(),
		ArrStop: stopToDTO(l.ArrStop()),
		ArrTime: l.ArrTime(),
	}
	for _, is := range l.IntermediateStops() {
		dto.IntermediateStops = append(dto.IntermediateStops, intermediateStopDTO{
			Stop:    stopToDTO(is.Stop),
			ArrTime: is.ArrTime,
			DepTime: is.DepTime,
		})
	}
	switch v := l.(type) {
	case journey.Transport:
		dto.Kind = "transport"
		dto.Vehicle = v.Vehicle().String()
		dto.Route = v.Route()
		dto.Destination = v.Destination()
	case journey.Foot:
		dto.Kind = "foot"
		dto.IsTransfer = v.IsTransfer()
	}
	return dto
}

func journeyToDTO(j journey.Journey) journeyDTO {
	dto := journeyDTO{
		DepTime:  j.DepTime(),
		ArrTime:  j.ArrTime(),
		Changes:  j.Changes(),
		Duration: j.Duration().String(),
	}
	for _, l := range j.Legs() {
		dto.Legs = append(dto.Legs, legToDTO(l))
	}
	return dto
}

// BuildJSON serializes a list of journeys to JSON.
func BuildJSON(journeys []journey.Journey) []byte {
	dtos := make([]journeyDTO, len(journeys))
	for i, j := range journeys {
		dtos[i] = journeyToDTO(j)
	}
	b, _ := json.Marshal(dtos)
	return b
}
