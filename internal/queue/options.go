package queue

import (
	"log/slog"
	"time"
)

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used for join, serve and history timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}
