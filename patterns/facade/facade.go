// Package facade illustrates the Facade pattern: PlaceOrder is one simple
// entry point over the inventory, payment, and shipping subsystems, so the
// caller never orchestrates them directly.
package facade

import (
	"fmt"
	"io"
)

// Inventory tracks stock per SKU.
type Inventory struct {
	stock map[string]int
}

// NewInventory seeds the demonstration stock.
func NewInventory() *Inventory {
	return &Inventory{stock: map[string]int{
		"beans-1kg": 7,
		"mug":       2,
	}}
}

// Reserve takes qty units of sku out of stock. It reports false without
// mutating stock when not enough units are available.
func (i *Inventory) Reserve(sku string, qty int) bool {
	if i.stock[sku] < qty {
		return false
	}
	i.stock[sku] -= qty
	return true
}

// Payments charges orders and keeps a running total.
type Payments struct {
	nextTx     int
	totalCents int
}

// Charge charges the amount and returns a transaction id.
func (p *Payments) Charge(amountCents int) string {
	p.nextTx++
	p.totalCents += amountCents
	return fmt.Sprintf("tx-%04d", p.nextTx)
}

// TotalCharged returns the sum of every charged amount in cents.
func (p *Payments) TotalCharged() int { return p.totalCents }

// Shipping dispatches reserved goods.
type Shipping struct {
	nextParcel int
}

// Dispatch hands the goods to the carrier and returns a tracking code. The
// carrier side is not modeled, so the goods themselves are not inspected.
func (s *Shipping) Dispatch(_ string, _ int) string {
	s.nextParcel++
	return fmt.Sprintf("parcel-%04d", s.nextParcel)
}

// OrderFacade hides the subsystems behind one operation.
type OrderFacade struct {
	inventory *Inventory
	payments  *Payments
	shipping  *Shipping

	priceCents map[string]int
}

// New wires the subsystems with demonstration stock and prices.
func New() *OrderFacade {
	return &OrderFacade{
		inventory: NewInventory(),
		payments:  &Payments{},
		shipping:  &Shipping{},
		priceCents: map[string]int{
			"beans-1kg": 1800,
			"mug":       900,
		},
	}
}

// PlaceOrder reserves stock, charges the order, and dispatches it, writing a
// line per step to w. An unavailable SKU is reported on the transcript and
// ends the order without charging.
func (f *OrderFacade) PlaceOrder(w io.Writer, sku string, qty int) error {
	if !f.inventory.Reserve(sku, qty) {
		_, err := fmt.Fprintf(w, "order rejected: %q unavailable in quantity %d\n", sku, qty)
		return err
	}
	if _, err := fmt.Fprintf(w, "reserved %d x %s\n", qty, sku); err != nil {
		return err
	}

	total := f.priceCents[sku] * qty
	tx := f.payments.Charge(total)
	if _, err := fmt.Fprintf(w, "charged %d cents (%s)\n", total, tx); err != nil {
		return err
	}

	tracking := f.shipping.Dispatch(sku, qty)
	_, err := fmt.Fprintf(w, "dispatched as %s\n", tracking)
	return err
}

// Demo places one order that succeeds and one the inventory cannot satisfy,
// writing the transcript to w.
func Demo(w io.Writer) error {
	shop := New()

	if err := shop.PlaceOrder(w, "beans-1kg", 2); err != nil {
		return err
	}
	return shop.PlaceOrder(w, "mug", 5)
}
