package tcellhost

import (
	"github.com/gdamore/tcell/v2"

	pointer "github.com/kestrel-ui/go-pointer"
)

// Host turns a tcell screen and a box tree into a pointer host
// environment. Feed it the screen's mouse events through HandleEvent and
// it delivers pointer notifications to listeners registered via a Binder.
//
// In its native mode the host reports mouse presses, releases, moves and
// over/out transitions with provenance attached. With touch simulation
// enabled it instead emits raw touch phases and reports the press-point
// box as the target of every notification in the gesture, the way touch
// platforms do, so the synthesis layer has something to correct.
type Host struct {
	screen tcell.Screen
	root   *Box

	touchSim  bool
	listeners []*listener

	// Native-mode state.
	hover   *Box
	buttons tcell.ButtonMask

	// Touch-simulation gesture state.
	pressed      bool
	origin       *Box
	touchID      int
	lastX, lastY int
}

type listener struct {
	scope   pointer.Element
	name    string
	fn      pointer.Handler
	removed bool
}

var (
	_ pointer.Environment = (*Host)(nil)
	_ pointer.Registrar   = (*Host)(nil)
)

// Option configures a Host.
type Option func(*Host)

// WithTouchSimulation makes the host report itself as touch-capable and
// emit raw touch phases instead of native mouse notifications.
func WithTouchSimulation() Option {
	return func(h *Host) { h.touchSim = true }
}

// NewHost creates a host over the given screen and box tree root.
func NewHost(screen tcell.Screen, root *Box, opts ...Option) *Host {
	h := &Host{screen: screen, root: root}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ElementFromPoint returns the topmost box at the cell under the page
// coordinate, or nil outside the tree.
func (h *Host) ElementFromPoint(x, y float64) pointer.Element {
	if hit := h.root.At(int(x), int(y)); hit != nil {
		return hit
	}
	return nil
}

// Root returns the document-scope box.
func (h *Host) Root() pointer.Element { return h.root }

// TouchCapable reports whether touch simulation is enabled.
func (h *Host) TouchCapable() bool { return h.touchSim }

// NativeEnterLeave reports false: terminals have no containment-aware
// transition events, so enter/leave always go through the polyfill.
func (h *Host) NativeEnterLeave() bool { return false }

// Listen registers fn for notifications named name at scope and returns
// a removal function.
func (h *Host) Listen(scope pointer.Element, name string, fn pointer.Handler) func() {
	l := &listener{scope: scope, name: name, fn: fn}
	h.listeners = append(h.listeners, l)
	return func() {
		l.removed = true
		for i, cur := range h.listeners {
			if cur == l {
				h.listeners = append(h.listeners[:i], h.listeners[i+1:]...)
				return
			}
		}
	}
}

// Draw renders the box tree and flushes the screen.
func (h *Host) Draw() {
	h.root.Draw(h.screen)
	h.screen.Show()
}

// HandleEvent translates a tcell event into pointer notifications.
// It reports whether the event was consumed; non-mouse events are not.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	mouse, ok := ev.(*tcell.EventMouse)
	if !ok {
		return false
	}
	x, y := mouse.Position()
	if h.touchSim {
		h.handleTouch(x, y, mouse.Buttons())
	} else {
		h.handleMouse(x, y, mouse.Buttons())
	}
	return true
}

// handleTouch maps button-1 drag gestures onto raw touch phases. The
// target of every notification is the box under the press point, even
// when the drag has long since left it.
func (h *Host) handleTouch(x, y int, buttons tcell.ButtonMask) {
	down := buttons&tcell.Button1 != 0
	switch {
	case down && !h.pressed:
		h.pressed = true
		h.touchID++
		h.origin = h.root.At(x, y)
		h.lastX, h.lastY = x, y
		h.dispatch(pointer.NewEvent(pointer.KindTouchStart, h.originElement(), h.touch(x, y)))
	case down:
		h.lastX, h.lastY = x, y
		h.dispatch(pointer.NewEvent(pointer.KindTouchMove, h.originElement(), h.touch(x, y)))
	case h.pressed:
		h.pressed = false
		h.dispatch(pointer.NewEvent(pointer.KindTouchEnd, h.originElement(), h.touch(h.lastX, h.lastY)))
		h.origin = nil
	}
}

// handleMouse emits native press/release/move plus over/out transitions
// with the previous and next hover box attached as provenance.
func (h *Host) handleMouse(x, y int, buttons tcell.ButtonMask) {
	hit := h.root.At(x, y)
	if hit != h.hover {
		prev := h.hover
		h.hover = hit
		if prev != nil {
			out := pointer.NewEvent(pointer.KindOut, prev)
			out.SetRelated(boxElement(hit))
			h.dispatch(out)
		}
		if hit != nil {
			over := pointer.NewEvent(pointer.KindOver, hit)
			over.SetRelated(boxElement(prev))
			h.dispatch(over)
		}
	}

	pressedNow := buttons&tcell.Button1 != 0
	pressedBefore := h.buttons&tcell.Button1 != 0
	h.buttons = buttons

	switch {
	case pressedNow && !pressedBefore:
		h.dispatch(pointer.NewEvent(pointer.KindPress, boxElement(hit)))
	case !pressedNow && pressedBefore:
		h.dispatch(pointer.NewEvent(pointer.KindRelease, boxElement(hit)))
	case hit != nil:
		h.dispatch(pointer.NewEvent(pointer.KindMove, hit))
	}
}

// dispatch delivers n to document-scope listeners and to listeners bound
// at n's reported target, in registration order.
func (h *Host) dispatch(n pointer.Notification) {
	live := append([]*listener(nil), h.listeners...)
	for _, l := range live {
		if l.removed || l.name != n.Kind().Name() {
			continue
		}
		if l.scope != pointer.Element(h.root) && l.scope != n.Target() {
			continue
		}
		l.fn(n)
	}
}

func (h *Host) touch(x, y int) pointer.Touch {
	return pointer.Touch{ID: h.touchID, PageX: float64(x), PageY: float64(y)}
}

func (h *Host) originElement() pointer.Element {
	return boxElement(h.origin)
}

// boxElement converts a possibly nil *Box into a pointer.Element without
// producing a non-nil interface around a nil pointer.
func boxElement(b *Box) pointer.Element {
	if b == nil {
		return nil
	}
	return b
}
