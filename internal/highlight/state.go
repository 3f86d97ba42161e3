package highlight

import "time"

// DefaultInterval is the pause between two highlighted regions.
const DefaultInterval = 1500 * time.Millisecond

// State is the sequencer's complete state. Cursor is "" when nothing is
// highlighted, which is always the case while Active is false.
//
// Gen identifies the single delayed transition that may be pending. Every
// transition bumps it, so a delayed transition scheduled before the bump no
// longer matches and is ignored by Advance.
type State struct {
	Active bool
	Cursor string
	Gen    uint64
}

// HasCursor reports whether a region is highlighted.
func (s State) HasCursor() bool { return s.Cursor != "" }

// idle returns the inactive state that follows s.
func (s State) idle() State { return State{Gen: s.Gen + 1} }

// Toggle starts the sequence at the first region when inactive and stops it
// immediately when active. The returned bool reports whether a delayed
// advance tagged with the new Gen must be scheduled.
func Toggle(o Order, s State) (State, bool) {
	if s.Active {
		return s.idle(), false
	}
	if o.Len() == 0 {
		return s, false
	}
	return State{Active: true, Cursor: o.First(), Gen: s.Gen + 1}, true
}

// Advance applies the delayed transition scheduled under gen. Stale or
// unexpected transitions leave s untouched. On the last region the sequence
// ends, so the last region stays highlighted for one full interval.
func Advance(o Order, s State, gen uint64) (State, bool) {
	if !s.Active || gen != s.Gen {
		return s, false
	}
	i, ok := o.Index(s.Cursor)
	if !ok || i == o.Len()-1 {
		return s.idle(), false
	}
	return State{Active: true, Cursor: o.ids[i+1], Gen: s.Gen + 1}, true
}
