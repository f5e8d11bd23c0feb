package pointer

import (
	"sync"

	"github.com/kestrel-ui/go-pointer/internal/debug"
)

// Binder is the dispatch orchestrator. It decides, per registration, whether
// to use touch synthesis, the enter/leave polyfill, or direct native
// registration, and owns the touch session state for its environment.
//
// One Binder per host environment; construct it once and keep it for the
// lifetime of the session.
type Binder struct {
	env Environment

	// Capability probes, memoized for process lifetime.
	touchOnce  sync.Once
	touchDev   bool
	enterOnce  sync.Once
	enterLeave bool

	// Touch session state, constructed lazily on touch-capable hosts.
	trackerOnce sync.Once
	tracker     *touchTracker

	related relatedWriter

	slots *slotRegistry // only for SlotHost environments
}

// NewBinder creates a Binder for the given host environment.
func NewBinder(env Environment) *Binder {
	if env == nil {
		panic("pointer: nil environment in NewBinder")
	}
	return &Binder{env: env}
}

// TouchDevice reports whether the host delivers raw touch streams.
// The probe runs once; the result is cached for process lifetime.
func (b *Binder) TouchDevice() bool {
	b.touchOnce.Do(func() { b.touchDev = b.env.TouchCapable() })
	return b.touchDev
}

// NativeEnterLeave reports whether the host delivers containment-aware
// enter/leave notifications natively. Probed once, cached.
func (b *Binder) NativeEnterLeave() bool {
	b.enterOnce.Do(func() { b.enterLeave = b.env.NativeEnterLeave() })
	return b.enterLeave
}

// touchState returns the touch tracker, constructing it on first use.
// Callers must only reach this on touch-capable hosts.
func (b *Binder) touchState() *touchTracker {
	b.trackerOnce.Do(func() { b.tracker = &touchTracker{} })
	return b.tracker
}

// Bind registers handler for the interaction kind named by kind on target.
// The kind name may carry a legacy "on" prefix ("onpress").
//
// Returns nil, never panics, when target is nil, the kind is not recognized,
// or handler is nil. The returned handle removes exactly this registration
// and is safe to invoke more than once.
func (b *Binder) Bind(target Element, kind string, handler Handler) Detach {
	if target == nil || handler == nil {
		debug.Log("bind: rejected (target=%v, handler set=%v)", target, handler != nil)
		return nil
	}
	k, ok := ParseKind(kind)
	if !ok {
		debug.Log("bind: rejected unknown kind %q", kind)
		return nil
	}

	if b.TouchDevice() {
		if rule, found := synthRules[k]; found {
			debug.Log("bind: %s on %v via touch synthesis", k, target)
			return b.bindSynth(target, rule, handler)
		}
	}
	if (k == KindEnter || k == KindLeave) && !b.NativeEnterLeave() {
		debug.Log("bind: %s on %v via enter/leave polyfill", k, target)
		return b.bindEnterLeave(target, k, handler)
	}
	return b.listen(target, k.Name(), handler)
}

// bindSynth rewrites the registration as a raw touch-phase listener at the
// rule's scope, wrapping handler with the rule's guard.
func (b *Binder) bindSynth(target Element, rule synthRule, h Handler) Detach {
	scope := target
	if rule.scope == scopeDocument {
		scope = b.env.Root()
	}
	return b.listen(scope, rule.phase.Name(), rule.build(b, target, h))
}

// bindEnterLeave polyfills enter/leave on hosts without native support by
// riding the host's over/out notifications filtered through the containment
// test. A notification without an obtainable provenance reference is
// unknown and never fires a transition.
func (b *Binder) bindEnterLeave(target Element, k Kind, h Handler) Detach {
	base, prop := KindOver, propFromElement
	if k == KindLeave {
		base, prop = KindOut, propToElement
	}
	return b.listen(target, base.Name(), func(n Notification) {
		inside, known := b.related.within(n, prop, target)
		if !known || inside {
			return
		}
		h(n)
	})
}

// listen attaches fn for name at scope, normalizing hosts that use the
// legacy pending-notification convention, and aggregating into the single
// slot on SlotHost environments. Returns nil when the host has no listener
// facility at all.
func (b *Binder) listen(scope Element, name string, fn Handler) Detach {
	wrapped := fn
	if pn, ok := b.env.(PendingNotifier); ok {
		wrapped = func(n Notification) {
			if n == nil {
				n = pn.PendingNotification()
			}
			fn(n)
		}
	}

	var remove func()
	switch host := b.env.(type) {
	case Registrar:
		remove = host.Listen(scope, name, wrapped)
	case SlotHost:
		remove = b.slotRegistry().add(host, scope, name, wrapped)
	default:
		debug.Log("bind: environment %T cannot register listeners", b.env)
		return nil
	}
	if remove == nil {
		return nil
	}
	var once sync.Once
	return func() { once.Do(remove) }
}

func (b *Binder) slotRegistry() *slotRegistry {
	if b.slots == nil {
		b.slots = newSlotRegistry()
	}
	return b.slots
}

// Unbind invokes a detachment handle. Safe on nil handles and on handles
// that were already invoked.
func (b *Binder) Unbind(d Detach) {
	if d != nil {
		d()
	}
}

// Compose merges several detachment handles into one that invokes each of
// them exactly once. Registrations are independent, so order does not
// matter; nil handles are skipped.
func Compose(handles ...Detach) Detach {
	var once sync.Once
	return func() {
		once.Do(func() {
			for _, d := range handles {
				if d != nil {
					d()
				}
			}
		})
	}
}

// --- Default binder ---

var (
	defaultBinderMu sync.RWMutex
	defaultBinder   *Binder
)

// DefaultBinder returns the process-wide default Binder, or nil if none has
// been set.
func DefaultBinder() *Binder {
	defaultBinderMu.RLock()
	defer defaultBinderMu.RUnlock()
	return defaultBinder
}

// SetDefaultBinder sets the process-wide default Binder used by the
// package-level Bind, Unbind and capability queries.
func SetDefaultBinder(b *Binder) {
	defaultBinderMu.Lock()
	defaultBinder = b
	defaultBinderMu.Unlock()
}

// Bind registers handler on the default Binder. Returns nil when no default
// Binder is set or the arguments are invalid.
func Bind(target Element, kind string, handler Handler) Detach {
	if b := DefaultBinder(); b != nil {
		return b.Bind(target, kind, handler)
	}
	return nil
}

// Unbind invokes a detachment handle from Bind. Safe on nil handles.
func Unbind(d Detach) {
	if d != nil {
		d()
	}
}

// IsTouchDevice reports whether the default Binder's host delivers touch
// input. False when no default Binder is set.
func IsTouchDevice() bool {
	if b := DefaultBinder(); b != nil {
		return b.TouchDevice()
	}
	return false
}

// SupportsNativeEnterLeave reports whether the default Binder's host has
// native enter/leave semantics. False when no default Binder is set.
func SupportsNativeEnterLeave() bool {
	if b := DefaultBinder(); b != nil {
		return b.NativeEnterLeave()
	}
	return false
}
