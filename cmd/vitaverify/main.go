package main

import (
	"os"

	"vitaverify/cmd/vitaverify/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
