package pointer

// containmentEntry tracks whether the active touch point is currently
// considered inside one bound target.
type containmentEntry struct {
	target Element
	inside bool
}

// touchTracker maintains per-target containment flags plus the last touched
// element for a single touch session. It is constructed lazily by the Binder
// the first time a touch-capable host needs it and lives for the rest of the
// process; entries are created on demand and never removed, only reset.
//
// Dispatch is single-threaded (notifications run to completion in arrival
// order), so the tracker needs no locking. Several synthesis wrappers may
// observe the same raw notification; begin/wasIn/lastBefore give them a
// consistent read of the state as of that notification's arrival, so which
// transitions fire does not depend on handler registration order. Writes
// (touch, setIn, reset) take effect immediately for subsequent
// notifications.
type touchTracker struct {
	entries []containmentEntry
	last    Element

	snapNote Notification
	snapIn   map[Element]bool
	snapLast Element
}

// isIn returns the live containment flag for target, creating an entry with
// a false flag if none exists yet. The entry set is small (bounded by the
// number of bound targets), so a linear scan is fine.
func (t *touchTracker) isIn(target Element) bool {
	for i := range t.entries {
		if t.entries[i].target == target {
			return t.entries[i].inside
		}
	}
	t.entries = append(t.entries, containmentEntry{target: target})
	return false
}

// setIn updates the containment flag for target, creating the entry if
// absent, and returns the new value.
func (t *touchTracker) setIn(target Element, inside bool) bool {
	for i := range t.entries {
		if t.entries[i].target == target {
			t.entries[i].inside = inside
			return inside
		}
	}
	t.entries = append(t.entries, containmentEntry{target: target, inside: inside})
	return inside
}

// touch marks target as containing the touch point and records it as the
// last touched element.
func (t *touchTracker) touch(target Element) {
	t.setIn(target, true)
	t.last = target
}

// reset clears every containment flag. The last touched element is kept:
// it only changes through an explicit touch.
func (t *touchTracker) reset() {
	for i := range t.entries {
		t.entries[i].inside = false
	}
}

// lastTouched returns the most recently touched element, or nil if nothing
// has been touched yet.
func (t *touchTracker) lastTouched() Element {
	return t.last
}

// begin pins the read snapshot to the given raw notification. The first
// wrapper that sees a notification captures the current flags; wrappers
// arriving later in the same dispatch read that capture instead of each
// other's writes.
func (t *touchTracker) begin(n Notification) {
	if t.snapNote == n {
		return
	}
	t.snapNote = n
	t.snapLast = t.last
	if t.snapIn == nil {
		t.snapIn = make(map[Element]bool)
	} else {
		clear(t.snapIn)
	}
	for _, e := range t.entries {
		t.snapIn[e.target] = e.inside
	}
}

// wasIn returns the containment flag for target as of the current raw
// notification's arrival, creating the (live) entry if absent. A target
// with no entry when the snapshot was pinned was necessarily outside at
// arrival, even if an earlier wrapper in the same dispatch has since
// written a live flag for it.
func (t *touchTracker) wasIn(target Element) bool {
	if v, ok := t.snapIn[target]; ok {
		return v
	}
	t.isIn(target)
	if t.snapIn == nil {
		t.snapIn = make(map[Element]bool)
	}
	t.snapIn[target] = false
	return false
}

// lastBefore returns the last touched element as of the current raw
// notification's arrival.
func (t *touchTracker) lastBefore() Element {
	return t.snapLast
}
