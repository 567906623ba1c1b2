package main

import (
	"os"

	"github.com/genvault/genvault/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
