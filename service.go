// Package journeyrouter wires together timetable loading, routing and
// journey extraction behind a single Service facade, and provides the
// Query type and validation the cmd/journeyrouter CLI drives it with.
package journeyrouter

import (
	"fmt"
	"time"

	"github.com/rechor-go/journeyrouter/config"
	"github.com/rechor-go/journeyrouter/journey"
	"github.com/rechor-go/journeyrouter/router"
	"github.com/rechor-go/journeyrouter/timetable"
)

// Service wires configuration, the timetable store, routing and
// extraction together. A Service is not safe for concurrent use: the
// Store it holds caches at most one date's trips and connections at a
// time, so two goroutines querying different dates would race on that
// cache. Callers needing concurrent queries against different dates
// should open one Service per goroutine.
type Service struct {
	store      *timetable.Store
	maxChanges int
	defaultDate time.Time
}

// Open loads configuration from configPath and opens the timetable
// directory it names.
func Open(configPath string) (*Service, error) {
	if err := config.Load(configPath); err != nil {
		return nil, fmt.Errorf("journeyrouter: loading config: %w", err)
	}

	store, err := timetable.Open(config.Config.Timetable.Directory)
	if err != nil {
		return nil, fmt.Errorf("journeyrouter: opening timetable: %w", err)
	}

	var defaultDate time.Time
	if s := config.Config.Timetable.DefaultDate; s != "" {
		defaultDate, err = time.Parse("2006-01-02", s)
		if err != nil {
			store.Close()
			return nil, fmt.Errorf("journeyrouter: parsing timetable.defaultDate: %w", err)
		}
	}

	return &Service{
		store:       store,
		maxChanges:  config.Config.Query.MaxChanges,
		defaultDate: defaultDate,
	}, nil
}

// Close releases the Service's underlying timetable store.
func (s *Service) Close() error { return s.store.Close() }

// DefaultDate returns the date a Query should use when the caller
// supplied none, per the configured timetable.defaultDate.
func (s *Service) DefaultDate() time.Time { return s.defaultDate }

// Journeys validates q, builds a profile for (q.Date, q.ArrStationID) and
// extracts every journey from q.DepStationID, dropping any with more
// changes than the effective max-changes cap.
func (s *Service) Journeys(q Query) ([]journey.Journey, error) {
	if err := q.Validate(s.store); err != nil {
		return nil, err
	}

	profile := router.BuildProfile(s.store, q.Date, q.ArrStationID)
	journeys := journey.Extract(profile, q.DepStationID)

	maxChanges := s.maxChanges
	if q.MaxChanges > 0 {
		maxChanges = q.MaxChanges
	}
	if maxChanges <= 0 {
		return journeys, nil
	}

	filtered := journeys[:0]
	for _, j := range journeys {
		if j.Changes() <= maxChanges {
			filtered = append(filtered, j)
		}
	}
	return filtered, nil
}
