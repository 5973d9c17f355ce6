package main

import (
	"os"

	"agekey/cmd/agekey/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
