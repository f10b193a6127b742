// Package timesync decides when the wall clock is corrected from the network
// and bounds how long each attempt may take.
package timesync

import (
	"context"
	"time"
)

const (
	DefaultInterval = time.Hour
	DefaultTimeout  = 10 * time.Second
)

// Syncer corrects the wall clock. hal.TimeSync satisfies it.
type Syncer interface {
	Sync(ctx context.Context) error
}

// Scheduler attempts a sync at boot and then once per Interval of monotonic
// time, whatever the previous outcome. It only ever touches the Syncer and
// its own bookkeeping.
type Scheduler struct {
	Interval time.Duration
	Timeout  time.Duration

	src       Syncer
	attempted bool
	last      time.Duration

	successes int
	failures  int
}

func New(src Syncer, interval, timeout time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Scheduler{Interval: interval, Timeout: timeout, src: src}
}

// Due reports whether an attempt should be made at monotonic instant mono.
func (s *Scheduler) Due(mono time.Duration) bool {
	if !s.attempted {
		return true
	}
	return mono-s.last > s.Interval
}

// Run performs one attempt, bounded by Timeout, and records it at mono.
func (s *Scheduler) Run(ctx context.Context, mono time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	err := s.src.Sync(ctx)
	s.attempted = true
	s.last = mono
	if err != nil {
		s.failures++
		return err
	}
	s.successes++
	return nil
}

// Stats returns the number of successful and failed attempts so far.
func (s *Scheduler) Stats() (successes, failures int) { return s.successes, s.failures }
