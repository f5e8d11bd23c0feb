// Package pointer provides unified pointer-event binding for element trees.
//
// Users bind handlers for logical interaction kinds (press, release, move,
// over, out, enter, leave) once, and the Binder routes them correctly whether
// the host delivers native pointer notifications or raw touch streams, and
// whether or not the host supports containment-aware enter/leave semantics.
package pointer
