package journey

import "fmt"

// Stop identifies a point a traveler boards, alights, or passes through:
// a station name, an optional platform name, and geographic coordinates.
type Stop struct {
	Name         string
	PlatformName string
	Longitude    float64
	Latitude     float64
}

// NewStop builds a Stop, panicking if the coordinates are out of range.
func NewStop(name, platformName string, longitude, latitude float64) Stop {
	if longitude <= -180 || longitude >= 180 {
		panic(fmt.Sprintf("journey: longitude %g out of range (-180,180)", longitude))
	}
	if latitude <= -90 || latitude >= 90 {
		panic(fmt.Sprintf("journey: latitude %g out of range (-90,90)", latitude))
	}
	return Stop{Name: name, PlatformName: platformName, Longitude: longitude, Latitude: latitude}
}
