//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"deskbuddy/app"
	"deskbuddy/buddy/config"
	"deskbuddy/hal"
	"deskbuddy/internal/buildinfo"
)

func main() {
	var (
		hc         hal.HeadlessConfig
		cycles     int
		configPath string
		envPath    string
		scale      int
		version    bool
	)
	flag.BoolVar(&hc.Enabled, "headless", false, "Run without a window.")
	flag.BoolVar(&hc.Stdin, "stdin", true, "In headless mode, read m/u/d (or 1/2/3) from stdin as button presses.")
	flag.IntVar(&cycles, "cycles", 0, "Stop after N loop cycles (0 = run forever).")
	flag.StringVar(&configPath, "config", "deskbuddy.yaml", "YAML config file; missing file means defaults.")
	flag.StringVar(&envPath, "env", ".env", "dotenv file with DESKBUDDY_* overrides.")
	flag.IntVar(&scale, "scale", 2, "Window scale factor.")
	flag.BoolVar(&version, "version", false, "Print build information and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	cfg, err := config.Load(configPath, envPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	opts := app.Options{MaxCycles: cycles, LogStatus: hc.Enabled}
	run := func(ctx context.Context, h hal.HAL) error {
		rt, err := app.New(h, cfg)
		if err != nil {
			return err
		}
		if err := rt.Boot(ctx); err != nil {
			return err
		}
		return rt.Run(ctx, opts)
	}

	if hc.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := hal.RunHeadless(ctx, cfg.HAL(), hc, run); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(cfg.HAL(), scale, run); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
