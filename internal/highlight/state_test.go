package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Parallel()

	_, err := NewOrder()
	require.ErrorIs(t, err, ErrEmptyOrder)

	_, err = NewOrder("a", "", "c")
	require.ErrorIs(t, err, ErrBlankRegion)

	_, err = NewOrder("a", "b", "a")
	require.ErrorIs(t, err, ErrDuplicateRegion)
	assert.Contains(t, err.Error(), `"a" at positions 0 and 2`)

	o, err := NewOrder("a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, 3, o.Len())
	assert.Equal(t, "a", o.First())
	assert.True(t, o.IsLast("c"))
	assert.False(t, o.IsLast("b"))
	assert.False(t, o.Contains("z"))

	ids := o.IDs()
	ids[0] = "mutated"
	assert.Equal(t, "a", o.First(), "IDs must return a copy")
}

// walk runs the pure transitions to completion and records every cursor seen.
func walk(t *testing.T, o Order) []string {
	t.Helper()
	s, schedule := Toggle(o, State{})
	seen := []string{s.Cursor}
	for schedule {
		s, schedule = Advance(o, s, s.Gen)
		seen = append(seen, s.Cursor)
	}
	require.False(t, s.Active)
	return seen
}

func TestWalkVisitsEveryRegionThenStops(t *testing.T) {
	t.Parallel()

	cases := map[string][]string{
		"single": {"a"},
		"three":  {"a", "b", "c"},
		"ten": {
			"pageTitle", "addressTitle", "addressContent", "callTitle", "callContent",
			"emailTitle", "emailContent", "faxTitle", "feedbackTitle", "feedbackSubtitle",
		},
	}
	for name, ids := range cases {
		ids := ids
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := walk(t, MustOrder(ids...))
			want := append(append([]string{}, ids...), "")
			assert.Equal(t, want, got)
		})
	}
}

func TestToggleOffIsImmediate(t *testing.T) {
	t.Parallel()

	o := MustOrder("a", "b", "c")
	on, schedule := Toggle(o, State{})
	require.True(t, schedule)
	require.Equal(t, State{Active: true, Cursor: "a", Gen: 1}, on)

	off, schedule := Toggle(o, on)
	assert.False(t, schedule)
	assert.Equal(t, State{Gen: 2}, off)

	// The advance scheduled while on must not revive the sequence.
	after, schedule := Advance(o, off, on.Gen)
	assert.False(t, schedule)
	assert.Equal(t, off, after)
}

func TestAdvanceIgnoresStaleGeneration(t *testing.T) {
	t.Parallel()

	o := MustOrder("a", "b", "c")
	s, _ := Toggle(o, State{})
	s, _ = Advance(o, s, s.Gen)
	require.Equal(t, "b", s.Cursor)

	stale, schedule := Advance(o, s, s.Gen-1)
	assert.False(t, schedule)
	assert.Equal(t, s, stale)
}

func TestToggleRestartsFromFirstRegion(t *testing.T) {
	t.Parallel()

	o := MustOrder("a", "b", "c")
	s, _ := Toggle(o, State{})
	s, _ = Advance(o, s, s.Gen)
	s, _ = Advance(o, s, s.Gen)
	require.Equal(t, "c", s.Cursor)

	s, _ = Toggle(o, s)
	require.False(t, s.Active)
	s, schedule := Toggle(o, s)
	assert.True(t, schedule)
	assert.Equal(t, "a", s.Cursor)
}

func TestAdvanceWithUnknownCursorStops(t *testing.T) {
	t.Parallel()

	o := MustOrder("a", "b")
	s := State{Active: true, Cursor: "zzz", Gen: 4}
	next, schedule := Advance(o, s, 4)
	assert.False(t, schedule)
	assert.Equal(t, State{Gen: 5}, next)
}
