package pointer

import "testing"

// --- Test notification types ---

// bareNote carries no provenance mechanism at all.
type bareNote struct {
	kind   Kind
	target Element
}

func (n *bareNote) Kind() Kind       { return n.kind }
func (n *bareNote) Target() Element  { return n.target }
func (n *bareNote) Touches() []Touch { return nil }

// propNote accepts named properties but has no standard related field.
type propNote struct {
	bareNote
	props map[string]any
}

func (n *propNote) Prop(name string) (any, bool) {
	v, ok := n.props[name]
	return v, ok
}

func (n *propNote) SetProp(name string, v any) {
	if n.props == nil {
		n.props = make(map[string]any)
	}
	n.props[name] = v
}

// sealedNote exposes a standard related field but silently drops writes to
// it, like hosts where the field is read-only.
type sealedNote struct {
	propNote
}

func (n *sealedNote) Related() Element  { return nil }
func (n *sealedNote) SetRelated(Element) {}

// --- relatedWriter tests ---

func TestRelatedWriter_StandardStrategy(t *testing.T) {
	w := &relatedWriter{}
	el := NewMockElement("el")
	n := NewEvent(KindOver, nil)

	w.attach(n, el, propFromElement)

	if w.strategy != strategyStandard {
		t.Fatalf("strategy = %d, want standard", w.strategy)
	}
	if n.Related() != Element(el) {
		t.Errorf("Related() = %v, want %v", n.Related(), el)
	}
	got, ok := w.related(n, propFromElement)
	if !ok || got != Element(el) {
		t.Errorf("related() = (%v, %v), want (%v, true)", got, ok, el)
	}
}

func TestRelatedWriter_PropStrategy(t *testing.T) {
	w := &relatedWriter{}
	el := NewMockElement("el")
	n := &propNote{}

	w.attach(n, el, propToElement)

	if w.strategy != strategyProp {
		t.Fatalf("strategy = %d, want prop", w.strategy)
	}
	got, ok := w.related(n, propToElement)
	if !ok || got != Element(el) {
		t.Errorf("related() = (%v, %v), want (%v, true)", got, ok, el)
	}
}

func TestRelatedWriter_SealedFieldFallsThroughToProp(t *testing.T) {
	w := &relatedWriter{}
	el := NewMockElement("el")
	n := &sealedNote{}

	w.attach(n, el, propFromElement)

	if w.strategy != strategyProp {
		t.Fatalf("strategy = %d, want prop after standard write fails to round-trip", w.strategy)
	}
	got, ok := w.related(n, propFromElement)
	if !ok || got != Element(el) {
		t.Errorf("related() = (%v, %v), want (%v, true)", got, ok, el)
	}
}

func TestRelatedWriter_SidecarStrategy(t *testing.T) {
	w := &relatedWriter{}
	el := NewMockElement("el")
	n := &bareNote{}

	w.attach(n, el, propFromElement)

	if w.strategy != strategySidecar {
		t.Fatalf("strategy = %d, want sidecar", w.strategy)
	}
	got, ok := w.related(n, propFromElement)
	if !ok || got != Element(el) {
		t.Errorf("related() = (%v, %v), want (%v, true)", got, ok, el)
	}

	// The sidecar belongs to exactly that notification.
	other := &bareNote{}
	if _, ok := w.related(other, propFromElement); ok {
		t.Error("related() found a reference for a notification never attached")
	}
}

func TestRelatedWriter_StrategyIsSticky(t *testing.T) {
	w := &relatedWriter{}
	el := NewMockElement("el")

	w.attach(NewEvent(KindOver, nil), el, propFromElement)
	if w.strategy != strategyStandard {
		t.Fatalf("strategy = %d, want standard after first probe", w.strategy)
	}

	// A notification the primary strategy fails on must not trigger a
	// re-probe: the cached decision is sticky.
	w.attach(&sealedNote{}, el, propFromElement)
	if w.strategy != strategyStandard {
		t.Errorf("strategy = %d after sealed attach, want standard kept", w.strategy)
	}

	// And the strategy still works for regular notifications.
	n := NewEvent(KindOver, nil)
	w.attach(n, el, propFromElement)
	if n.Related() != Element(el) {
		t.Errorf("Related() = %v, want %v", n.Related(), el)
	}
}

func TestRelatedWriter_SidecarCoversIncapableNotifications(t *testing.T) {
	w := &relatedWriter{}
	el := NewMockElement("el")

	w.attach(NewEvent(KindOver, nil), el, propFromElement)

	// A notification that cannot carry the field at all still gets the
	// reference through the sidecar.
	n := &bareNote{}
	w.attach(n, el, propFromElement)
	got, ok := w.related(n, propFromElement)
	if !ok || got != Element(el) {
		t.Errorf("related() = (%v, %v), want (%v, true)", got, ok, el)
	}
}
