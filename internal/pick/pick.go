// Package pick provides the list-selection prompt used by the format
// commands. The Picker is an interface so commands can be driven by a
// terminal prompt in normal use and by a scripted implementation in tests.
package pick

import "context"

// Item is one selectable entry. Index is the position in the list the caller
// built; it is carried back on selection so the caller can dispatch to the
// matching element of its own slice.
type Item struct {
	Index  int
	Label  string
	Detail string // shown on request, e.g. the contributing package
}

// Picker presents items and returns the chosen one.
//
// A nil Item with a nil error means the user cancelled; cancellation is a
// normal outcome, not an error.
type Picker interface {
	Pick(ctx context.Context, prompt string, items []Item) (*Item, error)
}

// Scripted is a Picker that returns a fixed answer. Used by tests and by the
// --use flag path where the selection is known up front.
type Scripted struct {
	// Choice is the index to select, or -1 to cancel.
	Choice int
}

// Pick returns the item whose Index equals Choice, or nil for cancel.
func (s Scripted) Pick(_ context.Context, _ string, items []Item) (*Item, error) {
	if s.Choice < 0 {
		return nil, nil
	}
	for i := range items {
		if items[i].Index == s.Choice {
			return &items[i], nil
		}
	}
	return nil, nil
}
