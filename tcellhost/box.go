// Package tcellhost adapts a tcell terminal screen into a pointer host
// environment: a rectangle tree of boxes for hit-testing, mouse events
// translated into pointer notifications, and optional touch simulation
// that reproduces the single-target reporting quirk of touch platforms.
package tcellhost

import (
	"github.com/gdamore/tcell/v2"

	pointer "github.com/kestrel-ui/go-pointer"
)

// Box is one rectangular element on the screen. Boxes nest; a child's
// rectangle is expected to lie within its parent's, and later children
// sit on top for hit-testing.
type Box struct {
	id         string
	parent     *Box
	children   []*Box
	x, y, w, h int
	label      string
	style      tcell.Style
}

var _ pointer.Element = (*Box)(nil)

// NewBox creates a box with the given id and cell-grid geometry.
func NewBox(id string, x, y, w, h int) *Box {
	return &Box{id: id, x: x, y: y, w: w, h: h, style: tcell.StyleDefault}
}

// SetLabel sets the text drawn in the box's top-left corner.
func (b *Box) SetLabel(label string) { b.label = label }

// SetStyle sets the fill style used when drawing the box.
func (b *Box) SetStyle(style tcell.Style) { b.style = style }

// Style returns the current fill style.
func (b *Box) Style() tcell.Style { return b.style }

// AddChild nests children under this box. Later children are on top.
func (b *Box) AddChild(children ...*Box) {
	for _, child := range children {
		child.parent = b
		b.children = append(b.children, child)
	}
}

// Parent returns the parent box, or nil at the root.
func (b *Box) Parent() pointer.Element {
	if b.parent == nil {
		return nil
	}
	return b.parent
}

// ID returns the box's id.
func (b *Box) ID() string { return b.id }

// String returns the id for readable log and test output.
func (b *Box) String() string { return "<" + b.id + ">" }

// Rect returns the box's cell-grid geometry.
func (b *Box) Rect() (x, y, w, h int) { return b.x, b.y, b.w, b.h }

func (b *Box) containsCell(x, y int) bool {
	return b.w > 0 && b.h > 0 &&
		x >= b.x && x < b.x+b.w &&
		y >= b.y && y < b.y+b.h
}

// At returns the deepest box containing the cell, or nil when the cell
// falls outside this box.
func (b *Box) At(x, y int) *Box {
	if !b.containsCell(x, y) {
		return nil
	}
	for i := len(b.children) - 1; i >= 0; i-- {
		if hit := b.children[i].At(x, y); hit != nil {
			return hit
		}
	}
	return b
}

// Draw fills the box and its children onto the screen, parents first so
// children paint over them.
func (b *Box) Draw(screen tcell.Screen) {
	for row := b.y; row < b.y+b.h; row++ {
		for col := b.x; col < b.x+b.w; col++ {
			screen.SetContent(col, row, ' ', nil, b.style)
		}
	}
	for i, r := range []rune(b.label) {
		col := b.x + 1 + i
		if col >= b.x+b.w-1 {
			break
		}
		screen.SetContent(col, b.y, r, nil, b.style)
	}
	for _, child := range b.children {
		child.Draw(screen)
	}
}
