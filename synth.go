package pointer

import "github.com/kestrel-ui/go-pointer/internal/debug"

// bindScope selects which element a synthesis rule's raw listener attaches to.
type bindScope uint8

const (
	// scopeTarget binds the raw listener at the bound target itself.
	scopeTarget bindScope = iota
	// scopeDocument binds the raw listener at document scope so the rule
	// observes the whole gesture, wherever the host reports it.
	scopeDocument
)

// synthRule describes how one logical kind is synthesized from a raw touch
// stream: which phase it rides on, where the raw listener binds, and a
// builder producing the guarded raw handler.
type synthRule struct {
	phase Kind
	scope bindScope
	build func(b *Binder, target Element, h Handler) Handler
}

// synthRules is the static synthesis table. Built once, never mutated.
//
// Touch hardware only delivers start/move/end; over, out, enter and leave
// are inferred from whether the continuously hit-tested element equals the
// bound target and whether the per-target containment flag changed. Enter
// and leave additionally require the ancestor-containment check so grazing
// one of the target's descendants does not count as a transition.
var synthRules = map[Kind]synthRule{
	KindPress:   {phase: KindTouchStart, scope: scopeTarget, build: buildPress},
	KindRelease: {phase: KindTouchEnd, scope: scopeDocument, build: buildRelease},
	KindMove:    {phase: KindTouchMove, scope: scopeDocument, build: buildMove},
	KindOver:    {phase: KindTouchMove, scope: scopeDocument, build: buildOver},
	KindOut:     {phase: KindTouchMove, scope: scopeDocument, build: buildOut},
	KindEnter:   {phase: KindTouchMove, scope: scopeDocument, build: buildEnter},
	KindLeave:   {phase: KindTouchMove, scope: scopeDocument, build: buildLeave},
}

// synthesize derives a logical notification from a raw touch notification,
// carrying the touch points forward so the position stays resolvable.
func synthesize(raw Notification, kind Kind, target Element) *Event {
	return NewEvent(kind, target, raw.Touches()...)
}

// buildPress fires on every touch start reported at the target and marks
// the target as touched.
func buildPress(b *Binder, target Element, h Handler) Handler {
	return func(raw Notification) {
		tr := b.touchState()
		tr.begin(raw)
		tr.touch(target)
		h(synthesize(raw, KindPress, target))
	}
}

// buildRelease fires when the touch ends over the target, carrying the
// previously touched element as provenance, then resets the session.
func buildRelease(b *Binder, target Element, h Handler) Handler {
	return func(raw Notification) {
		if b.ResolveTarget(raw) != target {
			return
		}
		tr := b.touchState()
		tr.begin(raw)
		sn := synthesize(raw, KindRelease, target)
		b.related.attach(sn, tr.lastBefore(), propFromElement)
		debug.Log("synth: release on %v (from %v)", target, tr.lastBefore())
		h(sn)
		tr.reset()
	}
}

// buildMove fires for every touch move hit-testing to the target.
func buildMove(b *Binder, target Element, h Handler) Handler {
	return func(raw Notification) {
		if b.ResolveTarget(raw) != target {
			return
		}
		tr := b.touchState()
		tr.begin(raw)
		sn := synthesize(raw, KindMove, target)
		b.related.attach(sn, tr.lastBefore(), propFromElement)
		tr.touch(target)
		h(sn)
	}
}

func buildOver(b *Binder, target Element, h Handler) Handler {
	return overHandler(b, target, h, KindOver)
}

func buildEnter(b *Binder, target Element, h Handler) Handler {
	return overHandler(b, target, h, KindEnter)
}

// overHandler synthesizes over/enter: it fires when the hit-tested element
// becomes the target while the containment flag was down as of this raw
// notification. For enter, a move coming from inside the target (off one of
// its descendants) is not a transition and is suppressed.
func overHandler(b *Binder, target Element, h Handler, kind Kind) Handler {
	return func(raw Notification) {
		tr := b.touchState()
		tr.begin(raw)
		hit := b.ResolveTarget(raw)
		if hit != target {
			tr.setIn(target, false)
			return
		}
		if tr.wasIn(target) {
			return
		}
		from := tr.lastBefore()
		if kind == KindEnter && contains(target, from) {
			return
		}
		sn := synthesize(raw, kind, target)
		b.related.attach(sn, from, propFromElement)
		tr.touch(target)
		debug.Log("synth: %s on %v (from %v)", kind, target, from)
		h(sn)
	}
}

func buildOut(b *Binder, target Element, h Handler) Handler {
	return outHandler(b, target, h, KindOut)
}

func buildLeave(b *Binder, target Element, h Handler) Handler {
	return outHandler(b, target, h, KindLeave)
}

// outHandler synthesizes out/leave: it fires when the hit-tested element
// stops being the target while the containment flag was up as of this raw
// notification. For leave, a move onto one of the target's own descendants
// is not a transition and is suppressed.
func outHandler(b *Binder, target Element, h Handler, kind Kind) Handler {
	return func(raw Notification) {
		tr := b.touchState()
		tr.begin(raw)
		hit := b.ResolveTarget(raw)
		if hit == target {
			tr.setIn(target, true)
			return
		}
		if !tr.wasIn(target) {
			return
		}
		if kind == KindLeave && contains(target, hit) {
			return
		}
		sn := synthesize(raw, kind, target)
		b.related.attach(sn, hit, propToElement)
		if hit != nil {
			tr.touch(hit)
		}
		tr.setIn(target, false)
		debug.Log("synth: %s on %v (to %v)", kind, target, hit)
		h(sn)
	}
}
