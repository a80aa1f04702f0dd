// Package strategy illustrates the Strategy pattern: a Quoter computes
// shipping cost through whichever Pricer it currently holds, and the
// algorithm can be swapped at runtime without touching the caller.
package strategy

import (
	"errors"
	"fmt"
	"io"
)

// Order is the input every pricing strategy works from.
type Order struct {
	WeightGrams   int
	SubtotalCents int
}

// Pricer computes the shipping cost for an order.
type Pricer interface {
	// Price returns the shipping cost in cents.
	Price(order Order) int

	// Name identifies the strategy in transcripts.
	Name() string
}

// FlatRate charges the same amount for every order.
type FlatRate struct{ Cents int }

// Price implements Pricer.
func (f FlatRate) Price(Order) int { return f.Cents }

// Name implements Pricer.
func (FlatRate) Name() string { return "flat-rate" }

// PerKilo charges proportionally to weight, rounding up to whole kilos.
type PerKilo struct{ CentsPerKilo int }

// Price implements Pricer.
func (p PerKilo) Price(order Order) int {
	kilos := (order.WeightGrams + 999) / 1000
	return kilos * p.CentsPerKilo
}

// Name implements Pricer.
func (PerKilo) Name() string { return "per-kilo" }

// FreeOverThreshold waives shipping for large subtotals and falls back to a
// flat amount below the threshold.
type FreeOverThreshold struct {
	ThresholdCents int
	FallbackCents  int
}

// Price implements Pricer.
func (f FreeOverThreshold) Price(order Order) int {
	if order.SubtotalCents >= f.ThresholdCents {
		return 0
	}
	return f.FallbackCents
}

// Name implements Pricer.
func (FreeOverThreshold) Name() string { return "free-over-threshold" }

// ErrNoPricer is returned by Quote when no strategy has been wired.
var ErrNoPricer = errors.New("strategy: no pricer wired")

// Quoter prices orders through a swappable strategy.
type Quoter struct {
	pricer Pricer
}

// NewQuoter returns a Quoter using p.
func NewQuoter(p Pricer) *Quoter { return &Quoter{pricer: p} }

// Use swaps the pricing strategy. A nil pricer is ignored.
func (q *Quoter) Use(p Pricer) {
	if p == nil {
		return
	}
	q.pricer = p
}

// Quote returns the shipping cost for order under the current strategy.
func (q *Quoter) Quote(order Order) (int, error) {
	if q.pricer == nil {
		return 0, ErrNoPricer
	}
	return q.pricer.Price(order), nil
}

// Demo prices one order under each strategy, swapping them through a single
// Quoter, and writes the transcript to w.
func Demo(w io.Writer) error {
	order := Order{WeightGrams: 2400, SubtotalCents: 6000}
	quoter := NewQuoter(FlatRate{Cents: 499})

	strategies := []Pricer{
		FlatRate{Cents: 499},
		PerKilo{CentsPerKilo: 150},
		FreeOverThreshold{ThresholdCents: 5000, FallbackCents: 799},
	}

	for _, s := range strategies {
		quoter.Use(s)
		cost, err := quoter.Quote(order)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s: %d cents\n", s.Name(), cost); err != nil {
			return err
		}
	}
	return nil
}
