package main

import (
	"os"

	"bitkitcore/cmd/bitkit-lnurl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
