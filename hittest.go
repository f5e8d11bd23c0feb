package pointer

// ResolveTarget returns the element actually under the notification's
// pointer. For touch notifications it hit-tests the first touch point's page
// coordinates, because some hosts report the touch-start element as the
// target for the entire gesture. For everything else it falls back to the
// reported target, substituting the parent element when the host reported a
// text node. Pure function of its input.
func (b *Binder) ResolveTarget(n Notification) Element {
	if n == nil {
		return nil
	}
	if touches := n.Touches(); len(touches) > 0 {
		if el := b.env.ElementFromPoint(touches[0].PageX, touches[0].PageY); el != nil {
			return el
		}
		return nil
	}
	target := n.Target()
	if target == nil {
		return nil
	}
	if tn, ok := target.(textNoder); ok && tn.TextNode() {
		if parent := target.Parent(); parent != nil {
			return parent
		}
	}
	return target
}

// ResolveTarget resolves the element under the notification's pointer using
// the default Binder. Returns nil if no default Binder is set.
func ResolveTarget(n Notification) Element {
	if b := DefaultBinder(); b != nil {
		return b.ResolveTarget(n)
	}
	return nil
}
