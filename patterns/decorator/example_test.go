package decorator_test

import (
	"os"

	"github.com/sghaida/odp/patterns/decorator"
)

func ExampleWithMilk() {
	_ = decorator.Demo(os.Stdout)
	// Output:
	// base: espresso costs 200 cents
	// add milk: espresso, milk costs 250 cents
	// add mocha: espresso, milk, mocha costs 325 cents
	// add whip: espresso, milk, mocha, whip costs 385 cents
}
