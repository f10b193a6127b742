package timesync

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeSyncer struct {
	err      error
	calls    int
	deadline time.Duration
}

func (f *fakeSyncer) Sync(ctx context.Context) error {
	f.calls++
	if dl, ok := ctx.Deadline(); ok {
		f.deadline = time.Until(dl)
	}
	return f.err
}

func TestDueAtBoot(t *testing.T) {
	s := New(&fakeSyncer{}, time.Hour, time.Second)
	if !s.Due(0) {
		t.Fatal("first attempt must be due immediately")
	}
}

func TestRetryAfterIntervalRegardlessOfOutcome(t *testing.T) {
	for _, fail := range []bool{false, true} {
		src := &fakeSyncer{}
		if fail {
			src.err = errors.New("no network")
		}
		s := New(src, time.Hour, time.Second)

		err := s.Run(context.Background(), 5*time.Second)
		if (err != nil) != fail {
			t.Fatalf("Run() err=%v; want failure=%v", err, fail)
		}

		tests := []struct {
			mono time.Duration
			want bool
		}{
			{5 * time.Second, false},
			{time.Minute, false},
			{time.Hour + 5*time.Second, false},
			{time.Hour + 6*time.Second, true},
		}
		for _, tt := range tests {
			if got := s.Due(tt.mono); got != tt.want {
				t.Fatalf("fail=%v: Due(%v)=%v; want %v", fail, tt.mono, got, tt.want)
			}
		}
	}
}

func TestRunCountsOutcomes(t *testing.T) {
	src := &fakeSyncer{}
	s := New(src, time.Hour, time.Second)

	if err := s.Run(context.Background(), 0); err != nil {
		t.Fatalf("Run: %v", err)
	}
	src.err = errors.New("timeout")
	if err := s.Run(context.Background(), 2*time.Hour); err == nil {
		t.Fatal("expected error")
	}

	ok, failed := s.Stats()
	if ok != 1 || failed != 1 || src.calls != 2 {
		t.Fatalf("Stats()=%d,%d calls=%d; want 1,1,2", ok, failed, src.calls)
	}
}

func TestRunBoundsAttempt(t *testing.T) {
	src := &fakeSyncer{}
	s := New(src, time.Hour, 3*time.Second)
	if err := s.Run(context.Background(), 0); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if src.deadline <= 0 || src.deadline > 3*time.Second {
		t.Fatalf("deadline=%v; want within (0, 3s]", src.deadline)
	}
}

func TestNewDefaults(t *testing.T) {
	s := New(&fakeSyncer{}, 0, 0)
	if s.Interval != DefaultInterval || s.Timeout != DefaultTimeout {
		t.Fatalf("New(0,0)=%v,%v; want %v,%v", s.Interval, s.Timeout, DefaultInterval, DefaultTimeout)
	}
}
