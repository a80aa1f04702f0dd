// Package adapter illustrates the Adapter pattern: checkout code talks to a
// ReceiptPrinter, and a legacy printer with an incompatible shape is made to
// fit behind an adapter instead of being rewritten.
package adapter

import (
	"fmt"
	"io"
	"strings"
)

// ReceiptPrinter is the contract modern checkout code expects.
type ReceiptPrinter interface {
	// Receipt renders a receipt for one purchase.
	Receipt(item string, totalCents int) string
}

// ThermalPrinter is the modern implementation, built for the contract.
type ThermalPrinter struct{}

// Receipt implements ReceiptPrinter.
func (ThermalPrinter) Receipt(item string, totalCents int) string {
	return fmt.Sprintf("RECEIPT %s %d cents", item, totalCents)
}

// LegacyPrinter predates the ReceiptPrinter contract. Its only operation
// takes pre-formatted lines and joins them into a document.
type LegacyPrinter struct{}

// FormatDocument joins lines into the legacy document format.
func (LegacyPrinter) FormatDocument(lines []string) string {
	return strings.Join(lines, " | ")
}

// LegacyAdapter makes a LegacyPrinter satisfy ReceiptPrinter by translating
// the call into the line-based shape the legacy printer understands.
type LegacyAdapter struct {
	Legacy LegacyPrinter
}

// Receipt implements ReceiptPrinter.
func (a LegacyAdapter) Receipt(item string, totalCents int) string {
	return a.Legacy.FormatDocument([]string{
		"** receipt **",
		"item: " + item,
		fmt.Sprintf("total: %d cents", totalCents),
	})
}

// Demo prints the same purchase through the modern printer and through the
// adapted legacy printer, writing both to w.
func Demo(w io.Writer) error {
	printers := []struct {
		label   string
		printer ReceiptPrinter
	}{
		{label: "thermal", printer: ThermalPrinter{}},
		{label: "legacy (adapted)", printer: LegacyAdapter{}},
	}

	for _, p := range printers {
		if _, err := fmt.Fprintf(w, "%s: %s\n", p.label, p.printer.Receipt("espresso beans", 1499)); err != nil {
			return err
		}
	}
	return nil
}
