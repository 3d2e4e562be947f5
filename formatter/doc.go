// Package formatter renders a list of journeys for an external caller.
//
// Serialization is deliberately thin: BuildJSON is a wrapper around
// encoding/json over a DTO view of journey.Journey, not a hand-rolled
// encoder.
package formatter
