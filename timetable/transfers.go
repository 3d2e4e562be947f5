package timetable

import "github.com/rechor-go/journeyrouter/packed"

const (
	transferDepStationField = 0
	transferArrStationField = 1
	transferMinutesField    = 2
)

var transfersStructure = NewStructure(U16, U16, U8)

// Transfers is a read-only view over the transfer table: walking edges
// between stations, globally sorted by arrival station so that all
// transfers into a station form one contiguous range.
type Transfers interface {
	DepStationID(index int) int
	ArrivingAt(stationID int) packed.Range
	MinutesBetween(depStationID, arrStationID int) (int, bool)
	Minutes(index int) int
	Size() int
}

// BufferedTransfers implements Transfers over a memory-mapped buffer,
// precomputing a per-station index of incoming transfer ranges.
type BufferedTransfers struct {
	buf        StructuredBuffer
	arrivingAt []packed.Range
}

// NewBufferedTransfers wraps buf, which must be sorted by arrival station.
func NewBufferedTransfers(buf []byte) BufferedTransfers {
	sb := NewStructuredBuffer(transfersStructure, buf)

	maxStation := -1
	for i := 0; i < sb.Size(); i++ {
		if arr := sb.GetU16(transferArrStationField, i); arr > maxStation {
			maxStation = arr
		}
	}

	arrivingAt := make([]packed.Range, maxStation+1)
	current := -1
	start := 0
	for i := 0; i < sb.Size(); i++ {
		arr := sb.GetU16(transferArrStationField, i)
		if arr != current {
			if current != -1 {
				arrivingAt[current] = packed.PackRange(uint32(start), uint32(i))
			}
			current = arr
			start = i
		}
	}
	if current != -1 {
		arrivingAt[current] = packed.PackRange(uint32(start), uint32(sb.Size()))
	}

	return BufferedTransfers{buf: sb, arrivingAt: arrivingAt}
}

func (t BufferedTransfers) Size() int {
	return t.buf.Size()
}

func (t BufferedTransfers) DepStationID(index int) int {
	return t.buf.GetU16(transferDepStationField, index)
}

// ArrivingAt returns the range of transfer records arriving at stationID,
// or the empty range if none exist.
func (t BufferedTransfers) ArrivingAt(stationID int) packed.Range {
	if stationID < 0 || stationID >= len(t.arrivingAt) {
		return packed.Range(0)
	}
	return t.arrivingAt[stationID]
}

func (t BufferedTransfers) Minutes(index int) int {
	return t.buf.GetU8(transferMinutesField, index)
}

// MinutesBetween scans the transfers arriving at arrStationID for one
// departing from depStationID, returning its walk duration and whether
// one was found.
func (t BufferedTransfers) MinutesBetween(depStationID, arrStationID int) (int, bool) {
	r := t.ArrivingAt(arrStationID)
	for i := r.Start(); i < r.End(); i++ {
		if t.DepStationID(int(i)) == depStationID {
			return t.Minutes(int(i)), true
		}
	}
	return 0, false
}
