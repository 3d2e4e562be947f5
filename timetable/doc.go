// Package timetable provides read-only, memory-mapped access to a static
// public-transport timetable: stations, station aliases, platforms,
// routes, trips, transfers, and per-date connections. Every accessor is
// O(1) field-offset arithmetic over a mapped byte buffer; no entity is
// copied into Go-level structs at load time.
package timetable
