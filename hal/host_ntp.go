//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"

	"github.com/beevik/ntp"
)

const defaultNTPTimeout = 5 * time.Second

type ntpSync struct {
	server string
	clock  *hostClock
	query  func(host string, opt ntp.QueryOptions) (*ntp.Response, error)
}

func newNTPSync(server string, clock *hostClock) *ntpSync {
	return &ntpSync{server: server, clock: clock, query: ntp.QueryWithOptions}
}

// Sync queries the NTP server and, on success, moves the host clock by the
// measured offset. Nothing else is touched.
func (s *ntpSync) Sync(ctx context.Context) error {
	if s.server == "" {
		return fmt.Errorf("ntp: no server configured: %w", ErrNotImplemented)
	}
	timeout := defaultNTPTimeout
	if dl, ok := ctx.Deadline(); ok {
		timeout = time.Until(dl)
		if timeout <= 0 {
			return context.DeadlineExceeded
		}
	}

	type result struct {
		resp *ntp.Response
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		resp, err := s.query(s.server, ntp.QueryOptions{Timeout: timeout})
		ch <- result{resp: resp, err: err}
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case r := <-ch:
		if r.err != nil {
			return fmt.Errorf("ntp: query %s: %w", s.server, r.err)
		}
		if err := r.resp.Validate(); err != nil {
			return fmt.Errorf("ntp: %s: %w", s.server, err)
		}
		s.clock.adjust(r.resp.ClockOffset)
		return nil
	}
}
