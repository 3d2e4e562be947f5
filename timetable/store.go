package timetable

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sys/unix"
)

// TimeTable is the full read-only surface over a timetable: the fixed
// tables plus per-date trips and connections, and stop-id resolution
// shared by the router and extractor.
type TimeTable interface {
	Stations() Stations
	StationAliases() StationAliases
	Platforms() Platforms
	Routes() Routes
	Transfers() Transfers
	TripsFor(date time.Time) Trips
	ConnectionsFor(date time.Time) Connections

	// IsStationID reports whether stopID names a station rather than a platform.
	IsStationID(stopID int) bool
	// IsPlatformID reports whether stopID names a platform rather than a station.
	IsPlatformID(stopID int) bool
	// StationID resolves stopID (station or platform) to its owning station id.
	StationID(stopID int) int
	// PlatformName returns the platform name for stopID, or "" if stopID names a station.
	PlatformName(stopID int) string
}

// Store is a memory-mapped TimeTable. The fixed tables are mapped once at
// Open; per-date trips and connections are mapped lazily and held by a
// single-entry day cache, matching the single-threaded request model the
// rest of the router assumes.
type Store struct {
	dir         string
	stringTable []string

	stations  BufferedStations
	aliases   BufferedStationAliases
	platforms BufferedPlatforms
	routes    BufferedRoutes
	transfers BufferedTransfers

	mapped [][]byte

	cache dayCache
}

// Open memory-maps the fixed tables under dir and returns a ready Store.
// Per-date files are mapped on first use of TripsFor/ConnectionsFor.
func Open(dir string) (*Store, error) {
	stringTable, err := readStringTable(filepath.Join(dir, "strings.txt"))
	if err != nil {
		return nil, fmt.Errorf("timetable: reading string table: %w", err)
	}

	s := &Store{dir: dir, stringTable: stringTable}

	stationsBuf, err := s.mapFile("stations.bin")
	if err != nil {
		return nil, err
	}
	s.stations = NewBufferedStations(stringTable, stationsBuf)

	aliasesBuf, err := s.mapFile("station-aliases.bin")
	if err != nil {
		return nil, err
	}
	s.aliases = NewBufferedStationAliases(stringTable, aliasesBuf)

	platformsBuf, err := s.mapFile("platforms.bin")
	if err != nil {
		return nil, err
	}
	s.platforms = NewBufferedPlatforms(stringTable, platformsBuf)

	routesBuf, err := s.mapFile("routes.bin")
	if err != nil {
		return nil, err
	}
	s.routes = NewBufferedRoutes(stringTable, routesBuf)

	transfersBuf, err := s.mapFile("transfers.bin")
	if err != nil {
		return nil, err
	}
	s.transfers = NewBufferedTransfers(transfersBuf)

	s.cache = newDayCache(s.loadTrips, s.loadConnections)

	return s, nil
}

// Close unmaps every file this Store has ever mapped, including
// per-date files mapped on demand.
func (s *Store) Close() error {
	var firstErr error
	for _, b := range s.mapped {
		if len(b) == 0 {
			continue
		}
		if err := unix.Munmap(b); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.mapped = nil
	return firstErr
}

// Dir returns the timetable directory this Store was opened from.
func (s *Store) Dir() string { return s.dir }

func (s *Store) Stations() Stations               { return s.stations }
func (s *Store) StationAliases() StationAliases   { return s.aliases }
func (s *Store) Platforms() Platforms             { return s.platforms }
func (s *Store) Routes() Routes                   { return s.routes }
func (s *Store) Transfers() Transfers             { return s.transfers }

func (s *Store) TripsFor(date time.Time) Trips {
	return s.cache.tripsFor(date)
}

func (s *Store) ConnectionsFor(date time.Time) Connections {
	return s.cache.connectionsFor(date)
}

func (s *Store) IsStationID(stopID int) bool {
	return stopID < s.stations.Size()
}

func (s *Store) IsPlatformID(stopID int) bool {
	return stopID >= s.stations.Size()
}

func (s *Store) StationID(stopID int) int {
	if s.IsStationID(stopID) {
		return stopID
	}
	return s.platforms.StationID(stopID - s.stations.Size())
}

func (s *Store) PlatformName(stopID int) string {
	if !s.IsPlatformID(stopID) {
		return ""
	}
	return s.platforms.Name(stopID - s.stations.Size())
}

func (s *Store) loadTrips(date time.Time) Trips {
	buf, err := s.mapDateFile(date, "trips.bin")
	if err != nil {
		panic(fmt.Errorf("timetable: mapping trips for %s: %w", date.Format("2006-01-02"), err))
	}
	return NewBufferedTrips(s.stringTable, buf)
}

func (s *Store) loadConnections(date time.Time) Connections {
	connBuf, err := s.mapDateFile(date, "connections.bin")
	if err != nil {
		panic(fmt.Errorf("timetable: mapping connections for %s: %w", date.Format("2006-01-02"), err))
	}
	succBuf, err := s.mapDateFile(date, "connections-succ.bin")
	if err != nil {
		panic(fmt.Errorf("timetable: mapping connection successors for %s: %w", date.Format("2006-01-02"), err))
	}
	return NewBufferedConnections(connBuf, succBuf)
}

func (s *Store) mapDateFile(date time.Time, name string) ([]byte, error) {
	return s.mapFile(filepath.Join(date.Format("2006-01-02"), name))
}

func (s *Store) mapFile(relPath string) ([]byte, error) {
	path := filepath.Join(s.dir, relPath)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() == 0 {
		return nil, nil
	}

	buf, err := unix.Mmap(int(f.Fd()), 0, int(info.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	s.mapped = append(s.mapped, buf)
	return buf, nil
}

func readStringTable(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, latin1ToUTF8(scanner.Bytes()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// latin1ToUTF8 decodes a line of ISO-8859-1 bytes (the encoding the
// timetable's string table is stored in) into a Go string.
func latin1ToUTF8(b []byte) string {
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return string(runes)
}
