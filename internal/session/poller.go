package session

import (
	"context"
	"log"
	"time"
)

const defaultPollInterval = 5 * time.Second

// StartPoller launches a background goroutine that reloads the session at a
// fixed cadence until the context is cancelled. It returns immediately.
// onReload, if non-nil, is invoked after each reload with the entry count.
// Reload errors are logged and the cycle continues; a polling miss is
// recoverable, not fatal.
func StartPoller(ctx context.Context, s *Session, interval time.Duration, onReload func(count int)) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			count, err := s.Reload()
			if err != nil {
				log.Printf("refresh failed: %v", err)
			}
			if onReload != nil {
				onReload(count)
			}
		}
	}()
}
