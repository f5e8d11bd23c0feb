package pointer

// Element is an opaque node in the host's element tree. The Binder uses it
// only for reference equality and ancestry traversal; it never mutates or
// retains ownership of one.
type Element interface {
	// Parent returns the parent element, or nil at the root.
	// Hosts may panic when traversal crosses an inaccessible boundary;
	// the Binder recovers and treats the walk as a miss.
	Parent() Element
}

// textNoder is implemented by elements that are text nodes. Some hosts
// report a text node as a notification's target; ResolveTarget substitutes
// the parent element in that case.
type textNoder interface {
	TextNode() bool
}

// Environment is the host a Binder works against: an element tree with
// point hit-testing plus input capability probes. A host additionally
// implements Registrar or SlotHost so the Binder can attach raw listeners.
type Environment interface {
	// ElementFromPoint returns the topmost element at the page coordinate,
	// or nil if no element contains it.
	ElementFromPoint(x, y float64) Element

	// Root returns the document-scope element. Listeners attached here
	// observe every notification of their name.
	Root() Element

	// TouchCapable reports whether the host delivers raw touch streams.
	TouchCapable() bool

	// NativeEnterLeave reports whether the host delivers containment-aware
	// enter/leave notifications natively.
	NativeEnterLeave() bool
}

// Registrar is implemented by hosts with a real multi-listener registry.
// Listen attaches fn for notifications named name at scope and returns a
// removal function.
type Registrar interface {
	Listen(scope Element, name string, fn Handler) (remove func())
}

// SlotHost is implemented by legacy hosts that hold at most one raw handler
// per (scope, name) pair. The Binder aggregates multiple registrations into
// the single slot; a nil fn clears it.
type SlotHost interface {
	SetHandler(scope Element, name string, fn Handler)
}

// PendingNotifier is implemented by hosts using the legacy convention of
// invoking handlers with a nil notification and exposing the current one
// out-of-band.
type PendingNotifier interface {
	PendingNotification() Notification
}
