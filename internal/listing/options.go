package listing

import (
	"time"

	"go.uber.org/zap"
)

type options struct {
	log     *zap.Logger
	now     func() time.Time
	refetch bool
}

// Option configures a Store.
type Option func(*options)

// WithLogger sets the logger used for swallowed payload errors.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithClock replaces time.Now for placeholder ids.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithRefetchAfterSave makes Sync reload the collection after applying a
// mutation.
func WithRefetchAfterSave(enabled bool) Option {
	return func(o *options) { o.refetch = enabled }
}
