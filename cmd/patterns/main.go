package main

import (
	"os"

	"github.com/sghaida/odp/cmd/patterns/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
