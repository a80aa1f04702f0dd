// Package factory illustrates the Factory pattern: a tag selects which
// concrete PaymentMethod the caller receives, and an unrecognized tag is a
// typed error.
package factory

import (
	"fmt"
	"io"
	"strconv"
)

// Kind tags a payment method implementation.
type Kind string

// Known payment method kinds.
const (
	KindCard   Kind = "card"
	KindPayPal Kind = "paypal"
)

// PaymentMethod is the contract every factory product satisfies.
type PaymentMethod interface {
	// Pay charges the amount and returns a human-readable confirmation.
	Pay(amountCents int) string
}

// CardPayment charges a credit card.
type CardPayment struct{}

// Pay implements PaymentMethod.
func (CardPayment) Pay(amountCents int) string {
	return fmt.Sprintf("charged %d cents to card", amountCents)
}

// PayPalPayment charges a PayPal account.
type PayPalPayment struct{}

// Pay implements PaymentMethod.
func (PayPalPayment) Pay(amountCents int) string {
	return fmt.Sprintf("charged %d cents via paypal", amountCents)
}

// UnknownMethodError is returned when New receives an unrecognized kind.
type UnknownMethodError struct{ Kind Kind }

// Error implements the error interface.
func (e UnknownMethodError) Error() string {
	// Example: factory: unknown payment method "crypto"
	return "factory: unknown payment method " + strconv.Quote(string(e.Kind))
}

// New returns the payment method matching kind.
func New(kind Kind) (PaymentMethod, error) {
	switch kind {
	case KindCard:
		return CardPayment{}, nil
	case KindPayPal:
		return PayPalPayment{}, nil
	default:
		return nil, UnknownMethodError{Kind: kind}
	}
}

// Demo exercises the factory with both known kinds and one unknown kind,
// writing the transcript to w.
func Demo(w io.Writer) error {
	for _, kind := range []Kind{KindCard, KindPayPal} {
		method, err := New(kind)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, method.Pay(1250)); err != nil {
			return err
		}
	}

	// The unrecognized tag is part of the illustration, not a failure of it.
	if _, err := New(Kind("crypto")); err != nil {
		if _, werr := fmt.Fprintf(w, "rejected: %v\n", err); werr != nil {
			return werr
		}
	}
	return nil
}
