package main

import (
	"flag"
	"fmt"
	"os"

	"quat-trackball/internal/config"
	"quat-trackball/internal/demo"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file (default: built-in demo keyframes)")
	steps := flag.Int("steps", 0, "Number of interpolation steps (default: 10)")
	path := flag.String("path", "both", "Which arc to print: both, short or long")

	flag.Parse()

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{Steps: *steps})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	q1, _ := cfg.Slerp.From.Quaternion()
	q2, _ := cfg.Slerp.To.Quaternion()

	var err error
	switch *path {
	case "both":
		err = demo.SlerpBoth(os.Stdout, q1, q2, cfg.Slerp.Steps)
	case "short":
		err = demo.Slerp(os.Stdout, q1, q2, true, cfg.Slerp.Steps)
	case "long":
		err = demo.Slerp(os.Stdout, q1, q2, false, cfg.Slerp.Steps)
	default:
		err = fmt.Errorf("-path: unknown value %q", *path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
