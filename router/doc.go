// Package router implements a backward connection scan: given a date and
// an arrival station, it builds a Profile holding the Pareto-optimal
// (arrival time, change count) frontier for every station, along with the
// boarding information the journey package needs to reconstruct concrete
// legs.
package router
