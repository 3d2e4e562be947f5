package journey

import (
	"testing"
	"time"

	"github.com/rechor-go/journeyrouter/packed"
	"github.com/rechor-go/journeyrouter/router"
	"github.com/rechor-go/journeyrouter/timetable"
)

type fixture struct {
	stations    timetable.Stations
	aliases     timetable.StationAliases
	platforms   timetable.Platforms
	routes      timetable.Routes
	transfers   timetable.Transfers
	trips       timetable.Trips
	connections timetable.Connections
}

func (f fixture) Stations() timetable.Stations             { return f.stations }
func (f fixture) StationAliases() timetable.StationAliases { return f.aliases }
func (f fixture) Platforms() timetable.Platforms           { return f.platforms }
func (f fixture) Routes() timetable.Routes                 { return f.routes }
func (f fixture) Transfers() timetable.Transfers           { return f.transfers }
func (f fixture) TripsFor(time.Time) timetable.Trips       { return f.trips }
func (f fixture) ConnectionsFor(time.Time) timetable.Connections {
	return f.connections
}
func (f fixture) IsStationID(stopID int) bool  { return stopID < f.stations.Size() }
func (f fixture) IsPlatformID(stopID int) bool { return stopID >= f.stations.Size() }
func (f fixture) StationID(stopID int) int {
	if f.IsStationID(stopID) {
		return stopID
	}
	return f.platforms.StationID(stopID - f.stations.Size())
}
func (f fixture) PlatformName(stopID int) string {
	if !f.IsPlatformID(stopID) {
		return ""
	}
	return f.platforms.Name(stopID - f.stations.Size())
}

func putU16(buf []byte, off int, v uint16) {
	buf[off] = byte(v >> 8)
	buf[off+1] = byte(v)
}

func putS32(buf []byte, off int, v int32) {
	buf[off] = byte(v >> 24)
	buf[off+1] = byte(v >> 16)
	buf[off+2] = byte(v >> 8)
	buf[off+3] = byte(v)
}

func stationsBuf(names []uint16) []byte {
	buf := make([]byte, 10*len(names))
	for i, n := range names {
		putU16(buf, i*10, n)
	}
	return buf
}

type transferRow struct{ dep, arr, minutes int }

func transfersBuf(rows []transferRow) []byte {
	buf := make([]byte, 5*len(rows))
	for i, r := range rows {
		off := i * 5
		putU16(buf, off, uint16(r.dep))
		putU16(buf, off+2, uint16(r.arr))
		buf[off+4] = byte(r.minutes)
	}
	return buf
}

type connRow struct{ depStop, depMins, arrStop, arrMins, tripID, tripPos int }

func connectionsBuf(rows []connRow) ([]byte, []byte) {
	buf := make([]byte, 12*len(rows))
	succ := make([]byte, 4*len(rows))
	for i, r := range rows {
		off := i * 12
		putU16(buf, off, uint16(r.depStop))
		putU16(buf, off+2, uint16(r.depMins))
		putU16(buf, off+4, uint16(r.arrStop))
		putU16(buf, off+6, uint16(r.arrMins))
		putS32(buf, off+8, int32(packed.Join24_8(uint32(r.tripID), uint32(r.tripPos))))
	}
	for i := range rows {
		putS32(succ, i*4, int32(i))
	}
	return buf, succ
}

func tripsBuf(routeIDs []int) []byte {
	buf := make([]byte, 4*len(routeIDs))
	for i, r := range routeIDs {
		putU16(buf, i*4, uint16(r))
	}
	return buf
}

func routesBuf(rows [][2]int) []byte {
	buf := make([]byte, 3*len(rows))
	for i, r := range rows {
		putU16(buf, i*3, uint16(r[0]))
		buf[i*3+2] = byte(r[1])
	}
	return buf
}

// strings: 0=A,1=B,2=C,3=L1,4=Destination
var testStrings = []string{"A", "B", "C", "L1", "Destination"}

func newFixture(transferRows []transferRow, connRows []connRow, tripRouteIDs []int, routeRows [][2]int, stationNames []uint16) fixture {
	connBuf, succBuf := connectionsBuf(connRows)
	return fixture{
		stations:    timetable.NewBufferedStations(testStrings, stationsBuf(stationNames)),
		aliases:     timetable.NewBufferedStationAliases(testStrings, nil),
		platforms:   timetable.NewBufferedPlatforms(testStrings, nil),
		routes:      timetable.NewBufferedRoutes(testStrings, routesBuf(routeRows)),
		transfers:   timetable.NewBufferedTransfers(transfersBuf(transferRows)),
		trips:       timetable.NewBufferedTrips(testStrings, tripsBuf(tripRouteIDs)),
		connections: timetable.NewBufferedConnections(connBuf, succBuf),
	}
}

// S5: a single transport leg, A -> B, no transfers.
func TestExtractSingleLeg(t *testing.T) {
	const stationA, stationB = 0, 1

	tt := newFixture(
		[]transferRow{
			{dep: stationA, arr: stationA, minutes: 0},
			{dep: stationB, arr: stationB, minutes: 0},
		},
		[]connRow{
			{depStop: stationA, depMins: 600, arrStop: stationB, arrMins: 612, tripID: 0, tripPos: 0},
		},
		[]int{0},
		[][2]int{{3, int(timetable.Train)}},
		[]uint16{0, 1},
	)

	date := time.Date(2026, time.March, 18, 0, 0, 0, 0, time.UTC)
	profile := router.BuildProfile(tt, date, stationB)
	journeys := Extract(profile, stationA)

	if len(journeys) != 1 {
		t.Fatalf("got %d journeys, want 1", len(journeys))
	}
	j := journeys[0]
	if len(j.Legs()) != 1 {
		t.Fatalf("got %d legs, want 1", len(j.Legs()))
	}
	leg, ok := j.Legs()[0].(Transport)
	if !ok {
		t.Fatalf("leg is %T, want Transport", j.Legs()[0])
	}
	if leg.DepStop().Name != "A" || leg.ArrStop().Name != "B" {
		t.Errorf("leg stops = (%s,%s), want (A,B)", leg.DepStop().Name, leg.ArrStop().Name)
	}
	if !leg.DepTime().Equal(dateTimeFromMins(600, date)) || !leg.ArrTime().Equal(dateTimeFromMins(612, date)) {
		t.Errorf("leg times = (%s,%s), want (10:00,10:12)", leg.DepTime(), leg.ArrTime())
	}
	if j.Changes() != 0 {
		t.Errorf("Changes() = %d, want 0", j.Changes())
	}
}

// S6: two transport legs joined by a foot transfer at B.
func TestExtractTwoLegsWithTransfer(t *testing.T) {
	const stationA, stationB, stationC = 0, 1, 2

	tt := newFixture(
		[]transferRow{
			{dep: stationA, arr: stationA, minutes: 0},
			{dep: stationB, arr: stationB, minutes: 0},
			{dep: stationC, arr: stationC, minutes: 0},
		},
		[]connRow{
			{depStop: stationB, depMins: 620, arrStop: stationC, arrMins: 630, tripID: 1, tripPos: 0},
			{depStop: stationA, depMins: 600, arrStop: stationB, arrMins: 610, tripID: 0, tripPos: 0},
		},
		[]int{0, 0},
		[][2]int{{3, int(timetable.Train)}},
		[]uint16{0, 1, 2},
	)

	date := time.Date(2026, time.March, 18, 0, 0, 0, 0, time.UTC)
	profile := router.BuildProfile(tt, date, stationC)
	journeys := Extract(profile, stationA)

	if len(journeys) != 1 {
		t.Fatalf("got %d journeys, want 1", len(journeys))
	}
	j := journeys[0]
	// A zero-duration self-transfer at B is mandatory: Journey forbids two
	// consecutive Transport legs, so the connecting Foot leg is what makes
	// this journey internally continuous.
	if len(j.Legs()) != 3 {
		t.Fatalf("got %d legs, want 3: %+v", len(j.Legs()), j.Legs())
	}
	first, ok := j.Legs()[0].(Transport)
	if !ok {
		t.Fatalf("leg 0 is %T, want Transport", j.Legs()[0])
	}
	transfer, ok := j.Legs()[1].(Foot)
	if !ok {
		t.Fatalf("leg 1 is %T, want Foot", j.Legs()[1])
	}
	second, ok := j.Legs()[2].(Transport)
	if !ok {
		t.Fatalf("leg 2 is %T, want Transport", j.Legs()[2])
	}
	if first.ArrStop().Name != "B" || second.DepStop().Name != "B" {
		t.Errorf("legs do not join at B: %s / %s", first.ArrStop().Name, second.DepStop().Name)
	}
	if !transfer.IsTransfer() {
		t.Errorf("connecting foot leg should be a same-station transfer")
	}
	if j.Changes() != 1 {
		t.Errorf("Changes() = %d, want 1", j.Changes())
	}
	if !j.ArrTime().Equal(dateTimeFromMins(630, date)) {
		t.Errorf("ArrTime() = %s, want 10:30", j.ArrTime())
	}
}
