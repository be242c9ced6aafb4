package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/handiism/festival-bands/internal/config"
	"github.com/handiism/festival-bands/internal/tui"
)

func main() {
	configFlag := flag.String("config", "", "Path to config file")
	datasetFlag := flag.String("dataset", "", "Dataset URL or file path (overrides config)")
	flag.Parse()

	path := *configFlag
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}

	settings, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *datasetFlag != "" {
		settings.Dataset = *datasetFlag
	}

	if err := tui.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
