// Package odp is a catalog of classic object-oriented design patterns,
// each illustrated by a small, self-contained, runnable Go package.
//
// The catalog covers eight patterns:
//
//   - patterns/singleton: one lazily constructed instance, shared by all callers
//   - patterns/factory: a tag picks which concrete implementation you get
//   - patterns/observer: subjects notify attached observers of events
//   - patterns/strategy: swap an algorithm behind a stable contract
//   - patterns/decorator: wrap a value to layer behavior additively
//   - patterns/adapter: make an incompatible type satisfy the contract you want
//   - patterns/facade: one simple entry point over several subsystems
//   - patterns/abstractfactory: build whole families of related objects
//
// Every pattern package is independent: it defines its own contracts and
// implementations, exercises them in a Demo driver, and writes a
// human-readable transcript to an io.Writer. Nothing is shared between
// packages and nothing outlives a single Demo call.
//
// The catalog package names the demos and the cmd/patterns CLI lists and
// runs them:
//
//	go run ./cmd/patterns list
//	go run ./cmd/patterns run decorator
//
// Start with the README for the prose walkthrough of each pattern.
package odp
