package timetable

import "testing"

func TestBufferedTransfersArrivingAt(t *testing.T) {
	// Globally sorted by arrival station: two transfers arrive at station 1,
	// one arrives at station 3, none arrive at station 2.
	rows := [][3]int{
		{5, 1, 3},
		{6, 1, 4},
		{7, 3, 2},
	}
	buf := make([]byte, transfersStructure.TotalSize()*len(rows))
	for i, r := range rows {
		off := i * transfersStructure.TotalSize()
		putU16(buf, off, uint16(r[0]))
		putU16(buf, off+2, uint16(r[1]))
		putU8(buf, off+4, uint8(r[2]))
	}

	tr := NewBufferedTransfers(buf)
	if tr.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", tr.Size())
	}

	r1 := tr.ArrivingAt(1)
	if r1.Start() != 0 || r1.End() != 2 {
		t.Errorf("ArrivingAt(1) = [%d,%d), want [0,2)", r1.Start(), r1.End())
	}

	r2 := tr.ArrivingAt(2)
	if !r2.IsEmpty() {
		t.Errorf("ArrivingAt(2) should be empty, got [%d,%d)", r2.Start(), r2.End())
	}

	r3 := tr.ArrivingAt(3)
	if r3.Start() != 2 || r3.End() != 3 {
		t.Errorf("ArrivingAt(3) = [%d,%d), want [2,3)", r3.Start(), r3.End())
	}

	mins, ok := tr.MinutesBetween(5, 1)
	if !ok || mins != 3 {
		t.Errorf("MinutesBetween(5,1) = (%d,%v), want (3,true)", mins, ok)
	}
	if _, ok := tr.MinutesBetween(99, 1); ok {
		t.Errorf("MinutesBetween(99,1) should report no transfer")
	}
}

func TestBufferedTransfersArrivingAtUnknownStation(t *testing.T) {
	tr := NewBufferedTransfers(nil)
	r := tr.ArrivingAt(42)
	if !r.IsEmpty() {
		t.Errorf("expected empty range for a station outside the index, got [%d,%d)", r.Start(), r.End())
	}
}
