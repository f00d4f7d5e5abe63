package main

import (
	"os"

	"github.com/patkim97/folio/cmd/folio/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
