package packed

import "testing"

func TestPackCriteriaBasic(t *testing.T) {
	c := Pack(420, 23, 238723028)
	if c.Payload() != 238723028 {
		t.Errorf("Payload() = %d, want 238723028", c.Payload())
	}
	if c.Changes() != 23 {
		t.Errorf("Changes() = %d, want 23", c.Changes())
	}
	if c.Arr() != 420 {
		t.Errorf("Arr() = %d, want 420", c.Arr())
	}
	if c.HasDep() {
		t.Errorf("expected no departure time")
	}
}

func TestWithDep(t *testing.T) {
	c := Pack(420, 23, 238723028).WithDep(480)
	if !c.HasDep() {
		t.Fatalf("expected departure time to be present")
	}
	if c.Dep() != 480 {
		t.Errorf("Dep() = %d, want 480", c.Dep())
	}
	if c.Arr() != 420 || c.Changes() != 23 {
		t.Errorf("WithDep must not disturb arrival/changes")
	}
}

func TestWithoutDep(t *testing.T) {
	c := Pack(0, 0, 0).WithDep(10)
	if !c.HasDep() {
		t.Fatalf("setup: expected departure present")
	}
	c = c.WithoutDep()
	if c.HasDep() {
		t.Errorf("expected departure time cleared")
	}
}

func TestWithAdditionalChange(t *testing.T) {
	c := Pack(0, 5, 0)
	c = c.WithAdditionalChange()
	if c.Changes() != 6 {
		t.Errorf("Changes() = %d, want 6", c.Changes())
	}
}

func TestWithAdditionalChangePanicsAtMax(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic at MaxChanges")
		}
	}()
	Pack(0, MaxChanges, 0).WithAdditionalChange()
}

func TestWithPayload(t *testing.T) {
	c := Pack(0, 0, 1).WithPayload(99)
	if c.Payload() != 99 {
		t.Errorf("Payload() = %d, want 99", c.Payload())
	}
}

func TestDominatesOrEqualWithoutDep(t *testing.T) {
	better := Pack(480, 1, 0)
	worse := Pack(490, 2, 0)
	if !better.DominatesOrEqual(worse) {
		t.Errorf("expected better to dominate worse")
	}
	if worse.DominatesOrEqual(better) {
		t.Errorf("expected worse not to dominate better")
	}
	if !better.DominatesOrEqual(better) {
		t.Errorf("expected reflexivity")
	}
}

func TestDominatesOrEqualWithDep(t *testing.T) {
	better := Pack(480, 1, 0).WithDep(600)
	worse := Pack(480, 1, 0).WithDep(590)
	if !better.DominatesOrEqual(worse) {
		t.Errorf("expected later departure to dominate earlier one, all else equal")
	}
	if worse.DominatesOrEqual(better) {
		t.Errorf("expected earlier departure not to dominate later one")
	}
}

func TestDominatesOrEqualPanicsOnMismatchedDepPresence(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic comparing mismatched departure presence")
		}
	}()
	a := Pack(0, 0, 0)
	b := Pack(0, 0, 0).WithDep(10)
	a.DominatesOrEqual(b)
}

func TestRoundTripAcrossRange(t *testing.T) {
	for _, arr := range []int{MinArrival, -1, 0, 1, 1000, MaxArrival} {
		for _, ch := range []int{0, 1, 64, MaxChanges} {
			c := Pack(arr, ch, 0xABCD1234)
			if c.Arr() != arr {
				t.Errorf("Arr() = %d, want %d", c.Arr(), arr)
			}
			if c.Changes() != ch {
				t.Errorf("Changes() = %d, want %d", c.Changes(), ch)
			}
			if c.Payload() != 0xABCD1234 {
				t.Errorf("Payload() = %#x, want 0xABCD1234", c.Payload())
			}
			if c.HasDep() {
				t.Errorf("expected no departure time")
			}
		}
	}
}
