// Package observer illustrates the Observer pattern: a Subject keeps a list
// of attached observers and notifies each of them on every event. A
// detached observer receives no further notifications.
package observer

import (
	"fmt"
	"io"
)

// Observer receives notifications from a Subject.
type Observer[T any] interface {
	// Update is called once per published event.
	Update(event T)
}

// Subject maintains the attached observers and fans events out to them.
//
// Observers are compared by interface identity on Detach, so attach pointer
// receivers (or otherwise comparable values).
type Subject[T any] struct {
	observers []Observer[T]
}

// NewSubject returns a Subject with no observers attached.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{}
}

// Attach adds an observer. A nil observer is ignored.
func (s *Subject[T]) Attach(o Observer[T]) {
	if o == nil {
		return
	}
	s.observers = append(s.observers, o)
}

// Detach removes an observer. Detaching an observer that was never attached
// is a no-op.
func (s *Subject[T]) Detach(o Observer[T]) {
	for i, attached := range s.observers {
		if attached == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// Notify publishes event to every attached observer in attachment order.
func (s *Subject[T]) Notify(event T) {
	for _, o := range s.observers {
		o.Update(event)
	}
}

// Len returns the number of attached observers.
func (s *Subject[T]) Len() int { return len(s.observers) }

// PriceUpdate is the event type used by the demonstration.
type PriceUpdate struct {
	Symbol string
	Cents  int
}

// Display is a demonstration observer that writes each update to W.
type Display struct {
	Name string
	W    io.Writer
}

// Update implements Observer[PriceUpdate].
func (d *Display) Update(e PriceUpdate) {
	fmt.Fprintf(d.W, "[%s] %s at %d cents\n", d.Name, e.Symbol, e.Cents)
}

// Demo exercises a price ticker with two displays, detaching one mid-stream,
// and writes the transcript to w.
func Demo(w io.Writer) error {
	ticker := NewSubject[PriceUpdate]()

	lobby := &Display{Name: "lobby", W: w}
	desk := &Display{Name: "desk", W: w}
	ticker.Attach(lobby)
	ticker.Attach(desk)

	ticker.Notify(PriceUpdate{Symbol: "GOOG", Cents: 17255})

	ticker.Detach(lobby)
	if _, err := fmt.Fprintln(w, "lobby display detached"); err != nil {
		return err
	}

	ticker.Notify(PriceUpdate{Symbol: "GOOG", Cents: 17310})
	return nil
}
