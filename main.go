package main

import (
	"os"

	"github.com/quizmix/quizmix/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
