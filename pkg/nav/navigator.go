// Package nav tracks which tutorial is current and moves through the
// collection without ever leaving [0, length).
package nav

import (
	"fmt"

	"github.com/vanderheijden86/picbook/pkg/model"
)

// Navigator holds the current index into a collection of fixed length.
//
// Advance and Retreat clamp at the edges. Select takes an arbitrary index
// from the caller and rejects anything out of range.
//
// A Navigator is not safe for concurrent use; it is owned by the single
// goroutine running the view.
type Navigator struct {
	current int
	length  int
}

// New returns a Navigator positioned at index 0.
// A length below 1 returns model.ErrEmptyCollection.
func New(length int) (*Navigator, error) {
	if length < 1 {
		return nil, model.ErrEmptyCollection
	}
	return &Navigator{length: length}, nil
}

// Current returns the current index.
func (n *Navigator) Current() int {
	return n.current
}

// Len returns the collection length captured at construction.
func (n *Navigator) Len() int {
	return n.length
}

// Advance moves to the next index, staying put on the last one.
func (n *Navigator) Advance() {
	n.current = min(n.current+1, n.length-1)
}

// Retreat moves to the previous index, staying put on the first one.
func (n *Navigator) Retreat() {
	n.current = max(n.current-1, 0)
}

// Select jumps to index. Out-of-range values return an error matching
// model.ErrOutOfRange and leave the current index unchanged.
func (n *Navigator) Select(index int) error {
	if err := model.CheckIndex(index, n.length); err != nil {
		return fmt.Errorf("select: %w", err)
	}
	n.current = index
	return nil
}

// CanAdvance reports whether Advance would move.
func (n *Navigator) CanAdvance() bool {
	return n.current < n.length-1
}

// CanRetreat reports whether Retreat would move.
func (n *Navigator) CanRetreat() bool {
	return n.current > 0
}
