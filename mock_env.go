package pointer

// MockElement is a rectangle-positioned element for testing.
// Identity is pointer identity; geometry is in page coordinates.
type MockElement struct {
	id         string
	parent     *MockElement
	children   []*MockElement
	x, y, w, h float64
	textNode   bool
	boundary   bool
}

var _ Element = (*MockElement)(nil)

// NewMockElement creates an element with the given id and no geometry.
func NewMockElement(id string) *MockElement {
	return &MockElement{id: id}
}

// SetRect positions the element in page coordinates.
func (m *MockElement) SetRect(x, y, w, h float64) {
	m.x, m.y, m.w, m.h = x, y, w, h
}

// AddChild appends children to this element. Later children render on top
// for hit-testing purposes.
func (m *MockElement) AddChild(children ...*MockElement) {
	for _, child := range children {
		child.parent = m
		m.children = append(m.children, child)
	}
}

// SetTextNode marks the element as a text node.
func (m *MockElement) SetTextNode(v bool) { m.textNode = v }

// SetBoundary makes Parent panic, simulating a reference that crosses an
// inaccessible document boundary.
func (m *MockElement) SetBoundary(v bool) { m.boundary = v }

// Parent returns the parent element, or nil at the root.
func (m *MockElement) Parent() Element {
	if m.boundary {
		panic("pointer: mock element boundary crossed")
	}
	if m.parent == nil {
		return nil
	}
	return m.parent
}

// TextNode reports whether the element is a text node.
func (m *MockElement) TextNode() bool { return m.textNode }

// ID returns the element's id.
func (m *MockElement) ID() string { return m.id }

// String returns the id for readable test output.
func (m *MockElement) String() string { return "<" + m.id + ">" }

func (m *MockElement) containsPoint(x, y float64) bool {
	return m.w > 0 && m.h > 0 &&
		x >= m.x && x < m.x+m.w &&
		y >= m.y && y < m.y+m.h
}

// elementAt returns the deepest element containing the point.
// Children are checked in reverse order (last child is on top).
func (m *MockElement) elementAt(x, y float64) *MockElement {
	if !m.containsPoint(x, y) {
		return nil
	}
	for i := len(m.children) - 1; i >= 0; i-- {
		if hit := m.children[i].elementAt(x, y); hit != nil {
			return hit
		}
	}
	return m
}

// MockEnvironment is a scriptable host for testing: a mock element tree, a
// listener registry, capability knobs, and touch-gesture simulation that
// reproduces the platform quirk of reporting the touch-start element as the
// target for the entire gesture.
type MockEnvironment struct {
	root             *MockElement
	touchCapable     bool
	nativeEnterLeave bool
	legacyDelivery   bool
	pending          Notification
	listeners        []*mockListener

	gestureID     int
	gestureOrigin *MockElement
	lastX, lastY  float64

	touchProbes int
	enterProbes int
}

type mockListener struct {
	scope   Element
	name    string
	fn      Handler
	removed bool
}

var (
	_ Environment     = (*MockEnvironment)(nil)
	_ Registrar       = (*MockEnvironment)(nil)
	_ PendingNotifier = (*MockEnvironment)(nil)
)

// NewMockEnvironment creates an environment over the given root element.
func NewMockEnvironment(root *MockElement) *MockEnvironment {
	return &MockEnvironment{root: root}
}

// SetTouchCapable sets whether the environment reports touch input.
func (m *MockEnvironment) SetTouchCapable(v bool) { m.touchCapable = v }

// SetNativeEnterLeave sets whether the environment reports native
// enter/leave support.
func (m *MockEnvironment) SetNativeEnterLeave(v bool) { m.nativeEnterLeave = v }

// SetLegacyDelivery makes Dispatch invoke handlers with a nil notification,
// exposing the current one through PendingNotification.
func (m *MockEnvironment) SetLegacyDelivery(v bool) { m.legacyDelivery = v }

// ElementFromPoint returns the topmost element at the page coordinate.
func (m *MockEnvironment) ElementFromPoint(x, y float64) Element {
	if hit := m.root.elementAt(x, y); hit != nil {
		return hit
	}
	return nil
}

// Root returns the document-scope element.
func (m *MockEnvironment) Root() Element { return m.root }

// TouchCapable reports the configured touch capability and counts probes.
func (m *MockEnvironment) TouchCapable() bool {
	m.touchProbes++
	return m.touchCapable
}

// NativeEnterLeave reports the configured enter/leave support and counts
// probes.
func (m *MockEnvironment) NativeEnterLeave() bool {
	m.enterProbes++
	return m.nativeEnterLeave
}

// Listen registers fn for notifications named name at scope and returns a
// removal function.
func (m *MockEnvironment) Listen(scope Element, name string, fn Handler) func() {
	l := &mockListener{scope: scope, name: name, fn: fn}
	m.listeners = append(m.listeners, l)
	return func() {
		l.removed = true
		for i, cur := range m.listeners {
			if cur == l {
				m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
				return
			}
		}
	}
}

// PendingNotification returns the notification currently being dispatched
// under legacy delivery.
func (m *MockEnvironment) PendingNotification() Notification { return m.pending }

// Dispatch delivers n to document-scope listeners and to listeners bound at
// n's reported target, in registration order.
func (m *MockEnvironment) Dispatch(n Notification) {
	live := append([]*mockListener(nil), m.listeners...)
	for _, l := range live {
		if l.removed || l.name != n.Kind().Name() {
			continue
		}
		if l.scope != Element(m.root) && l.scope != n.Target() {
			continue
		}
		if m.legacyDelivery {
			m.pending = n
			l.fn(nil)
			m.pending = nil
		} else {
			l.fn(n)
		}
	}
}

// StartTouch begins a simulated gesture at the page coordinate. The element
// under the point becomes the reported target for every notification of the
// gesture, including later moves that hit-test elsewhere.
func (m *MockEnvironment) StartTouch(x, y float64) {
	m.gestureID++
	m.gestureOrigin = m.root.elementAt(x, y)
	m.lastX, m.lastY = x, y
	m.Dispatch(NewEvent(KindTouchStart, m.originElement(), Touch{ID: m.gestureID, PageX: x, PageY: y}))
}

// MoveTouch continues the simulated gesture at the page coordinate.
func (m *MockEnvironment) MoveTouch(x, y float64) {
	m.lastX, m.lastY = x, y
	m.Dispatch(NewEvent(KindTouchMove, m.originElement(), Touch{ID: m.gestureID, PageX: x, PageY: y}))
}

// EndTouch lifts the touch at the last coordinate and ends the gesture.
func (m *MockEnvironment) EndTouch() {
	m.Dispatch(NewEvent(KindTouchEnd, m.originElement(), Touch{ID: m.gestureID, PageX: m.lastX, PageY: m.lastY}))
	m.gestureOrigin = nil
}

// EmitOver delivers a native over notification at target coming from from.
func (m *MockEnvironment) EmitOver(target, from Element) {
	ev := NewEvent(KindOver, target)
	ev.SetRelated(from)
	m.Dispatch(ev)
}

// EmitOut delivers a native out notification at target going to to.
func (m *MockEnvironment) EmitOut(target, to Element) {
	ev := NewEvent(KindOut, target)
	ev.SetRelated(to)
	m.Dispatch(ev)
}

func (m *MockEnvironment) originElement() Element {
	if m.gestureOrigin == nil {
		return nil
	}
	return m.gestureOrigin
}
