package main

import (
	"flag"
	"fmt"
	"os"

	"quat-trackball/internal/config"
	"quat-trackball/internal/demo"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file (default: built-in demo drags)")
	projection := flag.String("projection", "", "Trackball projection: sphere or hyperbolic")

	flag.Parse()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg.Resolve(config.Flags{Projection: *projection})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	m, err := cfg.Mapper()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	drags := make([]demo.Drag, len(cfg.Drags))
	for i, d := range cfg.Drags {
		drags[i].Start, drags[i].End = d.Points()
	}

	if _, err := demo.Rotate(os.Stdout, m, drags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
