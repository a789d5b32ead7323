package input

import (
	"slices"

	"github.com/Carmen-Shannon/oxy-storefront/common"
	"github.com/google/uuid"
)

// ListenerSet is an ordered registry of input listeners that fans device events out to them.
// It implements EventSource; hosts embed it and call the Dispatch methods from their
// platform callbacks. Listeners may be removed from inside a callback.
type ListenerSet struct {
	entries []listenerEntry
}

type listenerEntry struct {
	id       uuid.UUID
	listener common.InputListener
}

var _ EventSource = &ListenerSet{}

// NewListenerSet creates an empty listener set.
//
// Returns:
//   - *ListenerSet: the newly created set
func NewListenerSet() *ListenerSet {
	return &ListenerSet{}
}

func (s *ListenerSet) AddInputListener(l common.InputListener) uuid.UUID {
	id := uuid.New()
	s.entries = append(s.entries, listenerEntry{id: id, listener: l})
	return id
}

func (s *ListenerSet) RemoveInputListener(id uuid.UUID) {
	s.entries = slices.DeleteFunc(slices.Clone(s.entries), func(e listenerEntry) bool {
		return e.id == id
	})
}

// Len returns the number of registered listeners.
func (s *ListenerSet) Len() int {
	return len(s.entries)
}

// DispatchKeyDown delivers a key press to every listener.
func (s *ListenerSet) DispatchKeyDown(keyCode uint32) {
	for _, e := range s.entries {
		if e.listener.OnKeyDown != nil {
			e.listener.OnKeyDown(keyCode)
		}
	}
}

// DispatchKeyUp delivers a key release to every listener.
func (s *ListenerSet) DispatchKeyUp(keyCode uint32) {
	for _, e := range s.entries {
		if e.listener.OnKeyUp != nil {
			e.listener.OnKeyUp(keyCode)
		}
	}
}

// DispatchPointerDown delivers a primary-button press to every listener.
func (s *ListenerSet) DispatchPointerDown(x, y float32) {
	for _, e := range s.entries {
		if e.listener.OnPointerDown != nil {
			e.listener.OnPointerDown(x, y)
		}
	}
}

// DispatchPointerMove delivers a pointer move to every listener.
func (s *ListenerSet) DispatchPointerMove(x, y float32) {
	for _, e := range s.entries {
		if e.listener.OnPointerMove != nil {
			e.listener.OnPointerMove(x, y)
		}
	}
}

// DispatchPointerUp delivers a primary-button release to every listener.
func (s *ListenerSet) DispatchPointerUp(x, y float32) {
	for _, e := range s.entries {
		if e.listener.OnPointerUp != nil {
			e.listener.OnPointerUp(x, y)
		}
	}
}
