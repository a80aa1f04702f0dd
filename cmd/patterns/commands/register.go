package commands

import (
	"github.com/sghaida/odp/catalog"
	"github.com/sghaida/odp/patterns/abstractfactory"
	"github.com/sghaida/odp/patterns/adapter"
	"github.com/sghaida/odp/patterns/decorator"
	"github.com/sghaida/odp/patterns/facade"
	"github.com/sghaida/odp/patterns/factory"
	"github.com/sghaida/odp/patterns/observer"
	"github.com/sghaida/odp/patterns/singleton"
	"github.com/sghaida/odp/patterns/strategy"
)

// defaultRegistry wires the eight pattern demos.
//
// This is the composition root: pattern packages stay free of init-time
// side effects and are registered here instead.
func defaultRegistry() *catalog.Registry {
	return catalog.NewRegistry().
		MustRegister(catalog.Demo{
			Name:  "singleton",
			Brief: "one lazily constructed instance, shared by all callers",
			Run:   singleton.Demo,
		}).
		MustRegister(catalog.Demo{
			Name:  "factory",
			Brief: "a tag picks which concrete implementation you get",
			Run:   factory.Demo,
		}).
		MustRegister(catalog.Demo{
			Name:  "observer",
			Brief: "subjects notify attached observers of events",
			Run:   observer.Demo,
		}).
		MustRegister(catalog.Demo{
			Name:  "strategy",
			Brief: "swap an algorithm behind a stable contract",
			Run:   strategy.Demo,
		}).
		MustRegister(catalog.Demo{
			Name:  "decorator",
			Brief: "wrap a value to layer behavior additively",
			Run:   decorator.Demo,
		}).
		MustRegister(catalog.Demo{
			Name:  "adapter",
			Brief: "make an incompatible type satisfy the contract you want",
			Run:   adapter.Demo,
		}).
		MustRegister(catalog.Demo{
			Name:  "facade",
			Brief: "one simple entry point over several subsystems",
			Run:   facade.Demo,
		}).
		MustRegister(catalog.Demo{
			Name:  "abstractfactory",
			Brief: "build whole families of related objects",
			Run:   abstractfactory.Demo,
		})
}
