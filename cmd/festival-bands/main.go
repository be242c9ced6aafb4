package main

import (
	"os"

	"github.com/handiism/festival-bands/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
