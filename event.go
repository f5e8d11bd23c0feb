package pointer

// Touch is a single active touch point in page coordinates.
// For touch-end notifications the lifted point stays in the slice so the
// release position remains resolvable.
type Touch struct {
	ID    int
	PageX float64
	PageY float64
}

// Notification is a single raw or synthesized input occurrence delivered to
// a handler. Hosts with native notification types implement this directly;
// hosts without one construct an Event.
type Notification interface {
	// Kind returns the interaction kind or raw touch phase.
	Kind() Kind

	// Target returns the element the host reported as the origin.
	// For touch streams this may be the touch-start element for the whole
	// gesture; use Binder.ResolveTarget for the element actually under the
	// touch point.
	Target() Element

	// Touches returns the active touch points, or nil for non-touch input.
	Touches() []Touch
}

// RelatedCarrier is implemented by notifications with a standard provenance
// field identifying the element a transition came from or is going to.
type RelatedCarrier interface {
	Related() Element
	SetRelated(Element)
}

// PropCarrier is implemented by notifications that accept arbitrary named
// properties. Hosts may silently drop writes to names they do not support.
type PropCarrier interface {
	Prop(name string) (any, bool)
	SetProp(name string, v any)
}

// Legacy provenance property names used by hosts that predate a standard
// related field. Over-style transitions carry where the pointer came from,
// out-style transitions carry where it is going.
const (
	propFromElement = "fromElement"
	propToElement   = "toElement"
)

// Event is the standard concrete Notification. The Binder synthesizes its
// own notifications as Events, and hosts without a native notification type
// can construct them directly.
type Event struct {
	kind    Kind
	target  Element
	touches []Touch
	related Element
	props   map[string]any
}

// Ensure Event supports all provenance strategies.
var (
	_ Notification   = (*Event)(nil)
	_ RelatedCarrier = (*Event)(nil)
	_ PropCarrier    = (*Event)(nil)
)

// NewEvent creates a notification of the given kind reported at target.
func NewEvent(kind Kind, target Element, touches ...Touch) *Event {
	return &Event{
		kind:    kind,
		target:  target,
		touches: touches,
	}
}

// Kind returns the interaction kind.
func (e *Event) Kind() Kind { return e.kind }

// Target returns the reported origin element.
func (e *Event) Target() Element { return e.target }

// Touches returns the active touch points.
func (e *Event) Touches() []Touch { return e.touches }

// Related returns the standard provenance element, or nil if unset.
func (e *Event) Related() Element { return e.related }

// SetRelated sets the standard provenance element.
func (e *Event) SetRelated(el Element) { e.related = el }

// Prop returns a named property.
func (e *Event) Prop(name string) (any, bool) {
	v, ok := e.props[name]
	return v, ok
}

// SetProp sets a named property.
func (e *Event) SetProp(name string, v any) {
	if e.props == nil {
		e.props = make(map[string]any)
	}
	e.props[name] = v
}

// Handler processes a notification.
type Handler func(Notification)

// Detach removes exactly one prior registration. Calling it more than once
// is a no-op. A nil Detach is returned by Bind for invalid arguments and is
// safe to pass to Unbind.
type Detach func()
