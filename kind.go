package pointer

import "strings"

// Kind identifies a logical interaction kind or a raw touch phase.
type Kind uint8

const (
	// KindNone represents no kind (zero value).
	KindNone Kind = iota

	// Synthesized interaction kinds
	KindPress
	KindRelease
	KindMove
	KindOver
	KindOut
	KindEnter
	KindLeave

	// Raw touch phases delivered by touch-capable hosts
	KindTouchStart
	KindTouchMove
	KindTouchEnd
)

// kindNames maps kinds to their registration names.
var kindNames = map[Kind]string{
	KindPress:      "press",
	KindRelease:    "release",
	KindMove:       "move",
	KindOver:       "over",
	KindOut:        "out",
	KindEnter:      "enter",
	KindLeave:      "leave",
	KindTouchStart: "touchstart",
	KindTouchMove:  "touchmove",
	KindTouchEnd:   "touchend",
}

// kindsByName is the reverse of kindNames, built once at init.
var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

// Name returns the registration name for the kind ("press", "touchmove", ...).
// Returns "" for KindNone or an unknown kind.
func (k Kind) Name() string {
	return kindNames[k]
}

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "none"
}

// ParseKind resolves a kind from its registration name.
// Accepts the legacy "on"-prefixed form ("onpress") and is case-insensitive.
// Returns (KindNone, false) for names it does not recognize.
func ParseKind(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimPrefix(name, "on")
	k, ok := kindsByName[name]
	return k, ok
}
