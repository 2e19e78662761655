package engine

import (
	"strings"
	"sync"
)

// Transcript is a sink that keeps every event and renders them as text.
type Transcript struct {
	mu     sync.Mutex
	events []Event
}

func NewTranscript() *Transcript {
	return &Transcript{events: make([]Event, 0, 64)}
}

func (t *Transcript) Notify(e Event) {
	t.mu.Lock()
	t.events = append(t.events, e)
	t.mu.Unlock()
}

// Events returns a copy of the recorded events.
func (t *Transcript) Events() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Event, len(t.events))
	copy(out, t.events)
	return out
}

// Kinds returns the kinds of the recorded events in order.
func (t *Transcript) Kinds() []EventKind {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]EventKind, len(t.events))
	for i, e := range t.events {
		out[i] = e.Kind
	}
	return out
}

// Summary returns the accumulated events as one line each.
func (t *Transcript) Summary() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	lines := make([]string, 0, len(t.events))
	for _, e := range t.events {
		if msg := Describe(e); msg != "" {
			lines = append(lines, msg)
		}
	}
	return strings.Join(lines, "\n")
}
