//go:build tinygo

package main

import (
	"context"
	"time"

	"deskbuddy/app"
	"deskbuddy/buddy/config"
	"deskbuddy/hal"
)

func main() {
	cfg := config.Default()
	h, err := hal.New(cfg.HAL())
	if err != nil {
		halt(err)
	}

	ctx := context.Background()
	rt, err := app.New(h, cfg)
	if err != nil {
		h.Logger().WriteLineString("app: " + err.Error())
		halt(err)
	}
	if err := rt.Boot(ctx); err != nil {
		h.Logger().WriteLineString("boot: " + err.Error())
	}
	_ = rt.Run(ctx, app.Options{})
	halt(nil)
}

// halt parks the core; there is nothing to return to.
func halt(err error) {
	if err != nil {
		println(err.Error())
	}
	for {
		time.Sleep(time.Hour)
	}
}
