// Package decorator illustrates the Decorator pattern: wrappers around a
// base Coffee accumulate cost and description additively, in attachment
// order, without the base knowing it is wrapped.
package decorator

import (
	"fmt"
	"io"
)

// Coffee is the contract shared by the base drink and every wrapper.
type Coffee interface {
	// Cost returns the accumulated price in cents.
	Cost() int

	// Description returns the accumulated description, comma separated in
	// attachment order.
	Description() string
}

// Espresso is the undecorated base drink.
type Espresso struct{}

// Cost implements Coffee.
func (Espresso) Cost() int { return 200 }

// Description implements Coffee.
func (Espresso) Description() string { return "espresso" }

type milk struct{ wrapped Coffee }

func (m milk) Cost() int           { return m.wrapped.Cost() + 50 }
func (m milk) Description() string { return m.wrapped.Description() + ", milk" }

type mocha struct{ wrapped Coffee }

func (m mocha) Cost() int           { return m.wrapped.Cost() + 75 }
func (m mocha) Description() string { return m.wrapped.Description() + ", mocha" }

type whip struct{ wrapped Coffee }

func (c whip) Cost() int           { return c.wrapped.Cost() + 60 }
func (c whip) Description() string { return c.wrapped.Description() + ", whip" }

// WithMilk wraps c, adding 50 cents and "milk" to the description.
func WithMilk(c Coffee) Coffee { return milk{wrapped: c} }

// WithMocha wraps c, adding 75 cents and "mocha" to the description.
func WithMocha(c Coffee) Coffee { return mocha{wrapped: c} }

// WithWhip wraps c, adding 60 cents and "whip" to the description.
func WithWhip(c Coffee) Coffee { return whip{wrapped: c} }

// Demo builds up a drink one wrapper at a time and writes each step to w.
func Demo(w io.Writer) error {
	var drink Coffee = Espresso{}

	steps := []struct {
		label string
		wrap  func(Coffee) Coffee
	}{
		{label: "base", wrap: nil},
		{label: "add milk", wrap: WithMilk},
		{label: "add mocha", wrap: WithMocha},
		{label: "add whip", wrap: WithWhip},
	}

	for _, step := range steps {
		if step.wrap != nil {
			drink = step.wrap(drink)
		}
		if _, err := fmt.Fprintf(w, "%s: %s costs %d cents\n", step.label, drink.Description(), drink.Cost()); err != nil {
			return err
		}
	}
	return nil
}
