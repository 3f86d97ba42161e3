// Package highlight walks a fixed list of content regions, marking one of
// them active at a time on a fixed cadence.
package highlight

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyOrder      = errors.New("highlight: content order is empty")
	ErrBlankRegion     = errors.New("highlight: blank region identifier")
	ErrDuplicateRegion = errors.New("highlight: duplicate region identifier")
)

// Order is an immutable traversal sequence of region identifiers.
type Order struct {
	ids   []string
	index map[string]int
}

// NewOrder validates ids and returns them as an Order.
func NewOrder(ids ...string) (Order, error) {
	if len(ids) == 0 {
		return Order{}, ErrEmptyOrder
	}
	o := Order{
		ids:   make([]string, len(ids)),
		index: make(map[string]int, len(ids)),
	}
	for i, id := range ids {
		if id == "" {
			return Order{}, fmt.Errorf("position %d: %w", i, ErrBlankRegion)
		}
		if prev, ok := o.index[id]; ok {
			return Order{}, fmt.Errorf("%q at positions %d and %d: %w", id, prev, i, ErrDuplicateRegion)
		}
		o.ids[i] = id
		o.index[id] = i
	}
	return o, nil
}

// MustOrder is NewOrder for fixed, known-good orders. It panics on error.
func MustOrder(ids ...string) Order {
	o, err := NewOrder(ids...)
	if err != nil {
		panic(err)
	}
	return o
}

func (o Order) Len() int { return len(o.ids) }

// First returns the first region, or "" for the zero Order.
func (o Order) First() string {
	if len(o.ids) == 0 {
		return ""
	}
	return o.ids[0]
}

// IDs returns a copy of the region identifiers in traversal order.
func (o Order) IDs() []string {
	out := make([]string, len(o.ids))
	copy(out, o.ids)
	return out
}

// Index reports the position of id in the order.
func (o Order) Index(id string) (int, bool) {
	i, ok := o.index[id]
	return i, ok
}

// Contains reports whether id is part of the order.
func (o Order) Contains(id string) bool {
	_, ok := o.index[id]
	return ok
}

// IsLast reports whether id is the final region.
func (o Order) IsLast(id string) bool {
	i, ok := o.index[id]
	return ok && i == len(o.ids)-1
}
