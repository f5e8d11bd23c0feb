package pointer

import "testing"

func TestTouchTracker_DefaultsToOutside(t *testing.T) {
	tr := &touchTracker{}
	a := NewMockElement("a")
	b := NewMockElement("b")

	if tr.isIn(a) {
		t.Error("untouched target must start outside")
	}
	if tr.lastTouched() != nil {
		t.Errorf("lastTouched = %v, want nil before any touch", tr.lastTouched())
	}

	tr.touch(a)
	if !tr.isIn(a) {
		t.Error("isIn(a) = false after touch(a)")
	}
	if tr.isIn(b) {
		t.Error("touching a must not leak into b's state")
	}
	if tr.lastTouched() != Element(a) {
		t.Errorf("lastTouched = %v, want %v", tr.lastTouched(), a)
	}
}

func TestTouchTracker_SetIn(t *testing.T) {
	tr := &touchTracker{}
	a := NewMockElement("a")

	if got := tr.setIn(a, true); !got {
		t.Error("setIn(a, true) = false, want true")
	}
	if !tr.isIn(a) {
		t.Error("isIn(a) = false after setIn(a, true)")
	}
	if got := tr.setIn(a, false); got {
		t.Error("setIn(a, false) = true, want false")
	}
	if tr.lastTouched() != nil {
		t.Error("setIn must not record a last touched element")
	}
}

func TestTouchTracker_ResetKeepsLastTouched(t *testing.T) {
	tr := &touchTracker{}
	a := NewMockElement("a")
	b := NewMockElement("b")

	tr.touch(a)
	tr.touch(b)
	tr.reset()

	if tr.isIn(a) || tr.isIn(b) {
		t.Error("reset must clear every containment flag")
	}
	if tr.lastTouched() != Element(b) {
		t.Errorf("lastTouched = %v after reset, want %v", tr.lastTouched(), b)
	}
}

func TestTouchTracker_OneEntryPerTarget(t *testing.T) {
	tr := &touchTracker{}
	a := NewMockElement("a")

	tr.isIn(a)
	tr.touch(a)
	tr.setIn(a, false)
	tr.touch(a)

	if len(tr.entries) != 1 {
		t.Errorf("entries = %d, want exactly one per target", len(tr.entries))
	}
}

func TestTouchTracker_SnapshotReads(t *testing.T) {
	tr := &touchTracker{}
	a := NewMockElement("a")
	b := NewMockElement("b")
	tr.touch(a)

	first := NewEvent(KindTouchMove, a)
	tr.begin(first)
	tr.touch(b)
	tr.setIn(a, false)

	// Reads within the same raw notification observe its arrival state.
	if !tr.wasIn(a) {
		t.Error("wasIn(a) = false, want the pre-notification value")
	}
	if tr.wasIn(b) {
		t.Error("wasIn(b) = true, want the pre-notification value")
	}
	if tr.lastBefore() != Element(a) {
		t.Errorf("lastBefore = %v, want %v", tr.lastBefore(), a)
	}

	// Live reads see the writes immediately.
	if tr.isIn(a) || !tr.isIn(b) {
		t.Error("live flags must reflect writes within the notification")
	}

	// A new raw notification re-snapshots.
	second := NewEvent(KindTouchMove, a)
	tr.begin(second)
	if tr.wasIn(a) || !tr.wasIn(b) {
		t.Error("next notification must observe the written state")
	}
	if tr.lastBefore() != Element(b) {
		t.Errorf("lastBefore = %v for next notification, want %v", tr.lastBefore(), b)
	}
}

func TestTouchTracker_SnapshotMissPinsArrivalState(t *testing.T) {
	tr := &touchTracker{}
	a := NewMockElement("a")

	// No entry for a exists when the snapshot is pinned.
	n := NewEvent(KindTouchMove, a)
	tr.begin(n)

	// An earlier wrapper in the same dispatch touches a; a later wrapper
	// must still observe the arrival state: outside.
	tr.touch(a)
	if tr.wasIn(a) {
		t.Error("wasIn(a) = true after a same-notification touch, want the arrival value false")
	}
	// And the miss is pinned, not re-derived from the live flag.
	tr.setIn(a, true)
	if tr.wasIn(a) {
		t.Error("wasIn(a) = true on re-read, want the pinned arrival value false")
	}
	if !tr.isIn(a) {
		t.Error("isIn(a) = false, want the live flag to keep the write")
	}
}

func TestTouchTracker_BeginIsIdempotentPerNotification(t *testing.T) {
	tr := &touchTracker{}
	a := NewMockElement("a")

	n := NewEvent(KindTouchMove, a)
	tr.begin(n)
	tr.touch(a)
	tr.begin(n) // same notification: snapshot must not be retaken

	if tr.wasIn(a) {
		t.Error("begin on the same notification must keep the original snapshot")
	}
}
