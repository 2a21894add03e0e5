package services

import (
	"time"

	"github.com/dmitrijs2005/taskboard/internal/logging"
)

type options struct {
	now func() time.Time
	log logging.Logger
}

// Option customizes a store.
type Option func(*options)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.log = l }
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now, log: logging.Nop()}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
