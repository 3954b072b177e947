package main

import (
	"os"

	"github.com/okarum/beatdeck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
