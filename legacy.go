package pointer

// slotKey identifies one (scope, name) handler slot on a legacy host.
type slotKey struct {
	scope Element
	name  string
}

// slotEntry is one registration aggregated into a slot.
type slotEntry struct {
	fn      Handler
	removed bool
}

// slotRegistry is the callback-list fallback for hosts that hold at most
// one raw handler per (scope, name) pair. The slot is set to a dispatcher
// that runs the live entries in registration order; when the last entry is
// detached the slot is cleared.
type slotRegistry struct {
	slots map[slotKey][]*slotEntry
}

func newSlotRegistry() *slotRegistry {
	return &slotRegistry{slots: make(map[slotKey][]*slotEntry)}
}

// add aggregates fn into the host's (scope, name) slot and returns its
// removal function.
func (r *slotRegistry) add(host SlotHost, scope Element, name string, fn Handler) func() {
	key := slotKey{scope: scope, name: name}
	entry := &slotEntry{fn: fn}

	if len(r.slots[key]) == 0 {
		host.SetHandler(scope, name, func(n Notification) {
			// Snapshot so a detach during dispatch cannot shift entries
			// under the loop. Entries detached before this notification
			// was processed are skipped via the removed flag.
			live := append([]*slotEntry(nil), r.slots[key]...)
			for _, e := range live {
				if !e.removed {
					e.fn(n)
				}
			}
		})
	}
	r.slots[key] = append(r.slots[key], entry)

	return func() {
		entry.removed = true
		r.drop(key, entry)
		if len(r.slots[key]) == 0 {
			host.SetHandler(scope, name, nil)
		}
	}
}

func (r *slotRegistry) drop(key slotKey, entry *slotEntry) {
	entries := r.slots[key]
	for i, e := range entries {
		if e == entry {
			r.slots[key] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}
