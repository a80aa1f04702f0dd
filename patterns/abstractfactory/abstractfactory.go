// Package abstractfactory illustrates the Abstract Factory pattern: a
// WidgetFactory produces a whole family of related widgets, and the
// renderer works with whichever family it is handed without knowing the
// theme.
package abstractfactory

import (
	"fmt"
	"io"
)

// Button is one widget kind produced by every factory.
type Button interface {
	Paint() string
}

// Checkbox is the other widget kind produced by every factory.
type Checkbox interface {
	Paint() string
}

// WidgetFactory builds a consistent family of widgets.
type WidgetFactory interface {
	NewButton() Button
	NewCheckbox() Checkbox

	// Theme names the family in transcripts.
	Theme() string
}

type lightButton struct{}

func (lightButton) Paint() string { return "light button" }

type lightCheckbox struct{}

func (lightCheckbox) Paint() string { return "light checkbox" }

type darkButton struct{}

func (darkButton) Paint() string { return "dark button" }

type darkCheckbox struct{}

func (darkCheckbox) Paint() string { return "dark checkbox" }

// LightFactory builds the light-theme family.
type LightFactory struct{}

// NewButton implements WidgetFactory.
func (LightFactory) NewButton() Button { return lightButton{} }

// NewCheckbox implements WidgetFactory.
func (LightFactory) NewCheckbox() Checkbox { return lightCheckbox{} }

// Theme implements WidgetFactory.
func (LightFactory) Theme() string { return "light" }

// DarkFactory builds the dark-theme family.
type DarkFactory struct{}

// NewButton implements WidgetFactory.
func (DarkFactory) NewButton() Button { return darkButton{} }

// NewCheckbox implements WidgetFactory.
func (DarkFactory) NewCheckbox() Checkbox { return darkCheckbox{} }

// Theme implements WidgetFactory.
func (DarkFactory) Theme() string { return "dark" }

// Render paints one of each widget from the family f produces, writing the
// result to w. It never inspects which concrete family it received.
func Render(w io.Writer, f WidgetFactory) error {
	_, err := fmt.Fprintf(w, "%s theme: %s, %s\n", f.Theme(), f.NewButton().Paint(), f.NewCheckbox().Paint())
	return err
}

// Demo renders both widget families through the same code path, writing the
// transcript to w.
func Demo(w io.Writer) error {
	for _, f := range []WidgetFactory{LightFactory{}, DarkFactory{}} {
		if err := Render(w, f); err != nil {
			return err
		}
	}
	return nil
}
