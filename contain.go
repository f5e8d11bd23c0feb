package pointer

// contains reports whether node is candidate or a descendant of candidate,
// walking node's ancestor chain by identity. A nil node is never contained.
// Hosts may panic when the walk crosses an inaccessible boundary (for
// example a cross-document reference); that is treated as a miss.
func contains(candidate, node Element) (contained bool) {
	if candidate == nil || node == nil {
		return false
	}
	defer func() {
		if recover() != nil {
			contained = false
		}
	}()
	for n := node; n != nil; n = n.Parent() {
		if n == candidate {
			return true
		}
	}
	return false
}

// within classifies whether the provenance element carried by n lies inside
// candidate. known is false when no reference is obtainable; callers must
// treat that as "unknown, do not fire a transition", never as false.
func (w *relatedWriter) within(n Notification, prop string, candidate Element) (inside, known bool) {
	rel, ok := w.related(n, prop)
	if !ok {
		return false, false
	}
	return contains(candidate, rel), true
}
