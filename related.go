package pointer

// relatedStrategy identifies how provenance data gets attached to a
// notification.
type relatedStrategy uint8

const (
	// strategyUnprobed means no attachment has happened yet.
	strategyUnprobed relatedStrategy = iota
	// strategyStandard writes the standard related field.
	strategyStandard
	// strategyProp writes the legacy named property.
	strategyProp
	// strategySidecar stores the reference in the writer itself.
	strategySidecar
)

// relatedWriter attaches a provenance element to notifications, abstracting
// over hosts that differ in how (or whether) a notification can carry one.
// The first attachment probes the strategies in order and the winner is
// cached for the rest of the process; later attachments never re-probe.
//
// The sidecar holds only the most recent pair: dispatch is synchronous and
// single-threaded, so the reference is only ever read back during the same
// dispatch that wrote it.
type relatedWriter struct {
	strategy    relatedStrategy
	sidecarNote Notification
	sidecarEl   Element
}

// attach records el as the provenance element of n. prop is the legacy
// property name to use when the standard field is unavailable. Never fails:
// the sidecar strategy always succeeds.
func (w *relatedWriter) attach(n Notification, el Element, prop string) {
	switch w.strategy {
	case strategyUnprobed:
		if rc, ok := n.(RelatedCarrier); ok {
			rc.SetRelated(el)
			if rc.Related() == el {
				w.strategy = strategyStandard
				return
			}
		}
		if pc, ok := n.(PropCarrier); ok {
			pc.SetProp(prop, el)
			if v, found := pc.Prop(prop); found {
				if got, isEl := v.(Element); isEl && got == el {
					w.strategy = strategyProp
					return
				}
			}
		}
		w.strategy = strategySidecar
		w.sidecarNote, w.sidecarEl = n, el

	case strategyStandard:
		if rc, ok := n.(RelatedCarrier); ok {
			rc.SetRelated(el)
			return
		}
		// This notification cannot carry the field at all.
		w.sidecarNote, w.sidecarEl = n, el

	case strategyProp:
		if pc, ok := n.(PropCarrier); ok {
			pc.SetProp(prop, el)
			return
		}
		w.sidecarNote, w.sidecarEl = n, el

	default:
		w.sidecarNote, w.sidecarEl = n, el
	}
}

// related extracts the provenance element from n, checking the standard
// field, then the legacy named property, then the sidecar slot.
// Returns (nil, false) when no reference is obtainable.
func (w *relatedWriter) related(n Notification, prop string) (Element, bool) {
	if rc, ok := n.(RelatedCarrier); ok {
		if el := rc.Related(); el != nil {
			return el, true
		}
	}
	if pc, ok := n.(PropCarrier); ok {
		if v, found := pc.Prop(prop); found {
			if el, isEl := v.(Element); isEl && el != nil {
				return el, true
			}
		}
	}
	if w.sidecarNote != nil && w.sidecarNote == n && w.sidecarEl != nil {
		return w.sidecarEl, true
	}
	return nil, false
}
