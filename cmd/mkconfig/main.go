//go:build !tinygo

// Command mkconfig writes a deskbuddy.yaml seeded with the built-in defaults
// (optionally overlaid with an existing file and .env) for editing.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"deskbuddy/buddy/config"
)

const defaultConfigPath = "deskbuddy.yaml"

func main() {
	var (
		outPath  string
		basePath string
		envPath  string
		force    bool
	)
	flag.StringVar(&outPath, "o", defaultConfigPath, "Output YAML path.")
	flag.StringVar(&basePath, "base", "", "Existing YAML to start from (default: built-in defaults).")
	flag.StringVar(&envPath, "env", "", "dotenv file whose DESKBUDDY_* values are folded in.")
	flag.BoolVar(&force, "force", false, "Overwrite an existing output file.")
	flag.Parse()

	if err := run(outPath, basePath, envPath, force); err != nil {
		fmt.Fprintln(os.Stderr, "mkconfig:", err)
		os.Exit(1)
	}
}

func run(outPath, basePath, envPath string, force bool) error {
	if !force {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("%s exists (use -force)", outPath)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	var envFiles []string
	if envPath != "" {
		envFiles = append(envFiles, envPath)
	}
	cfg, err := config.Load(basePath, envFiles...)
	if err != nil {
		return err
	}
	if err := config.Save(outPath, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d LEDs, UTC%+.1f, work %v, break %v)\n",
		outPath, cfg.NumLEDs, cfg.UTCOffset.Hours(), cfg.WorkDuration, cfg.BreakDuration)
	return nil
}
