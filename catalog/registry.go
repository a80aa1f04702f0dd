// Package catalog names the pattern demonstrations and runs them by name.
//
// A Registry maps a demo name to a Demo entry. Wiring happens once in the
// composition root (the CLI); after that the registry is read-only and
// side-effect free. Resolution failures are typed errors callers can assert
// on, and a panicking demo surfaces as ErrDemoPanic instead of crashing the
// runner.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// Runner executes one demonstration, writing its transcript to w.
type Runner func(w io.Writer) error

// Demo is one named catalog entry.
type Demo struct {
	// Name is the stable identifier used on the CLI (e.g. "decorator").
	Name string

	// Brief is a one-line description shown by `patterns list`.
	Brief string

	// Run produces the demonstration transcript.
	Run Runner
}

// ErrDemoPanic is returned when a demo panics while running.
var ErrDemoPanic = errors.New("catalog: panic during demo")

// ErrNilRunner is returned when a demo is registered without a Run function.
var ErrNilRunner = errors.New("catalog: nil demo runner")

// ErrEmptyName is returned when a demo is registered without a name.
var ErrEmptyName = errors.New("catalog: empty demo name")

// UnknownDemoError is returned when a demo name is not present.
type UnknownDemoError struct{ Name string }

// Error implements the error interface.
func (e UnknownDemoError) Error() string {
	// Example: catalog: unknown demo "decorator"
	return "catalog: unknown demo " + strconv.Quote(e.Name)
}

// DuplicateDemoError is returned when a demo name is registered twice.
type DuplicateDemoError struct{ Name string }

// Error implements the error interface.
func (e DuplicateDemoError) Error() string {
	// Example: catalog: duplicate demo "decorator"
	return "catalog: duplicate demo " + strconv.Quote(e.Name)
}

// Registry is a simple in-memory demo catalog.
type Registry struct {
	demos map[string]Demo
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{demos: map[string]Demo{}}
}

// Register stores a demo under its name.
//
// It fails if:
//   - d.Name is empty (ErrEmptyName)
//   - d.Run is nil (ErrNilRunner)
//   - the name already exists (DuplicateDemoError)
func (r *Registry) Register(d Demo) error {
	if d.Name == "" {
		return ErrEmptyName
	}
	if d.Run == nil {
		return ErrNilRunner
	}
	if _, exists := r.demos[d.Name]; exists {
		return DuplicateDemoError{Name: d.Name}
	}
	r.demos[d.Name] = d
	return nil
}

// MustRegister stores a demo and returns the registry for chaining.
// Useful in composition roots where a registration failure is a programming
// error and should fail fast.
func (r *Registry) MustRegister(d Demo) *Registry {
	if err := r.Register(d); err != nil {
		panic(err)
	}
	return r
}

// Resolve returns the demo registered under name.
func (r *Registry) Resolve(name string) (Demo, error) {
	d, ok := r.demos[name]
	if !ok {
		return Demo{}, UnknownDemoError{Name: name}
	}
	return d, nil
}

// Names returns all registered demo names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.demos))
	for name := range r.demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered demos.
func (r *Registry) Len() int { return len(r.demos) }

// Run resolves and executes one demo, converting panics into errors.
func (r *Registry) Run(name string, w io.Writer) (err error) {
	d, err := r.Resolve(name)
	if err != nil {
		return err
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w %q: %v", ErrDemoPanic, name, rec)
		}
	}()

	return d.Run(w)
}

// RunAll executes every registered demo in name order, separated by a
// header line. It stops at the first error.
func (r *Registry) RunAll(w io.Writer) error {
	for _, name := range r.Names() {
		if _, err := fmt.Fprintf(w, "=== %s ===\n", name); err != nil {
			return err
		}
		if err := r.Run(name, w); err != nil {
			return err
		}
	}
	return nil
}
